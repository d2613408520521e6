package slot

import (
	"context"
	"testing"

	infraRepo "github.com/lumina-beauty/booking-api/internal/infra/repository"
	"github.com/lumina-beauty/booking-api/internal/models"
)

func TestAvailableSkipsFullSlots(t *testing.T) {
	repo := infraRepo.NewBookingMemoryRepository()
	svc := seedService(repo)

	repo.SeedSlot(models.Slot{
		ServiceID: svc.ID, Date: "2026-09-14",
		StartTime: "09:00", EndTime: "09:50",
		Capacity: 2, Remaining: 1,
	})
	repo.SeedSlot(models.Slot{
		ServiceID: svc.ID, Date: "2026-09-14",
		StartTime: "10:00", EndTime: "10:50",
		Capacity: 2, Remaining: 0, // full
	})
	repo.SeedSlot(models.Slot{
		ServiceID: svc.ID, Date: "2026-09-15", // other date
		StartTime: "09:00", EndTime: "09:50",
		Capacity: 2, Remaining: 2,
	})

	uc := NewListSlots(repo, nil)

	got, err := uc.Available(context.Background(), svc.ID, "2026-09-14")
	if err != nil {
		t.Fatalf("available: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("got %d slots, want 1", len(got))
	}
	if got[0].StartTime != "09:00" {
		t.Errorf("start = %s, want 09:00", got[0].StartTime)
	}
	if !got[0].Available {
		t.Error("listed slot must be flagged available")
	}
}

func TestForDayIncludesFullSlots(t *testing.T) {
	repo := infraRepo.NewBookingMemoryRepository()
	svc := seedService(repo)

	repo.SeedSlot(models.Slot{
		ServiceID: svc.ID, Date: "2026-09-14",
		StartTime: "10:00", EndTime: "10:50",
		Capacity: 2, Remaining: 0,
	})
	repo.SeedSlot(models.Slot{
		ServiceID: svc.ID, Date: "2026-09-14",
		StartTime: "09:00", EndTime: "09:50",
		Capacity: 2, Remaining: 1,
	})

	uc := NewListSlots(repo, nil)

	got, err := uc.ForDay(context.Background(), svc.ID, "2026-09-14")
	if err != nil {
		t.Fatalf("for day: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("got %d slots, want 2", len(got))
	}
	if got[0].StartTime != "09:00" || got[1].StartTime != "10:00" {
		t.Errorf("not ordered by start time: %s, %s", got[0].StartTime, got[1].StartTime)
	}
	if got[1].Available {
		t.Error("full slot flagged available")
	}
}

func TestInRangeValidatesBounds(t *testing.T) {
	repo := infraRepo.NewBookingMemoryRepository()
	uc := NewListSlots(repo, nil)

	if _, err := uc.InRange(context.Background(), "2026-09-20", "2026-09-10"); err == nil {
		t.Fatal("inverted range accepted")
	}
}
