package slot

import (
	"context"
	"testing"

	domain "github.com/lumina-beauty/booking-api/internal/domain/booking"
	"github.com/lumina-beauty/booking-api/internal/httperr"
	infraRepo "github.com/lumina-beauty/booking-api/internal/infra/repository"
	"github.com/lumina-beauty/booking-api/internal/models"
)

var testHours = domain.Hours{Open: "07:00", Close: "22:00"}

func seedService(repo *infraRepo.BookingMemoryRepository) models.Service {
	return repo.SeedService(models.Service{
		Name:         "Deep Tissue Massage",
		DurationMin:  50,
		Price:        120,
		MaxOccupancy: 2,
		Active:       true,
	})
}

func TestCreateSlotDerivesEndFromServiceDuration(t *testing.T) {
	repo := infraRepo.NewBookingMemoryRepository()
	svc := seedService(repo)
	ctx := context.Background()

	uc := NewCreateSlot(repo, testHours, nil, nil)

	slot, err := uc.Execute(ctx, CreateSlotInput{
		ServiceID: svc.ID,
		Date:      "2026-09-14",
		StartTime: "09:00",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if slot.EndTime != "09:50" {
		t.Errorf("end = %s, want 09:50", slot.EndTime)
	}
	if slot.Capacity != svc.MaxOccupancy {
		t.Errorf("capacity = %d, want service default %d", slot.Capacity, svc.MaxOccupancy)
	}
	if slot.Remaining != slot.Capacity {
		t.Errorf("remaining = %d, want %d (fully free)", slot.Remaining, slot.Capacity)
	}
}

func TestCreateSlotCapacityOverride(t *testing.T) {
	repo := infraRepo.NewBookingMemoryRepository()
	svc := seedService(repo)

	uc := NewCreateSlot(repo, testHours, nil, nil)

	slot, err := uc.Execute(context.Background(), CreateSlotInput{
		ServiceID: svc.ID,
		Date:      "2026-09-14",
		StartTime: "10:00",
		Capacity:  5,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if slot.Capacity != 5 || slot.Remaining != 5 {
		t.Errorf("capacity/remaining = %d/%d, want 5/5", slot.Capacity, slot.Remaining)
	}
}

func TestCreateSlotDuplicateKey(t *testing.T) {
	repo := infraRepo.NewBookingMemoryRepository()
	svc := seedService(repo)
	ctx := context.Background()

	uc := NewCreateSlot(repo, testHours, nil, nil)

	in := CreateSlotInput{
		ServiceID: svc.ID,
		Date:      "2026-09-14",
		StartTime: "11:00",
	}

	if _, err := uc.Execute(ctx, in); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := uc.Execute(ctx, in)
	if !httperr.IsBusiness(err, httperr.CodeDuplicateSlot) {
		t.Fatalf("want duplicate_slot, got %v", err)
	}
}

func TestCreateSlotOutOfHours(t *testing.T) {
	repo := infraRepo.NewBookingMemoryRepository()
	svc := seedService(repo)
	ctx := context.Background()

	uc := NewCreateSlot(repo, testHours, nil, nil)

	// starts before opening
	_, err := uc.Execute(ctx, CreateSlotInput{
		ServiceID: svc.ID, Date: "2026-09-14", StartTime: "06:30",
	})
	if !httperr.IsBusiness(err, httperr.CodeOutOfHours) {
		t.Fatalf("early start: want out_of_hours, got %v", err)
	}

	// 50min duration runs past closing
	_, err = uc.Execute(ctx, CreateSlotInput{
		ServiceID: svc.ID, Date: "2026-09-14", StartTime: "21:30",
	})
	if !httperr.IsBusiness(err, httperr.CodeOutOfHours) {
		t.Fatalf("late end: want out_of_hours, got %v", err)
	}
}

func TestCreateSlotRejectsInactiveService(t *testing.T) {
	repo := infraRepo.NewBookingMemoryRepository()
	svc := repo.SeedService(models.Service{
		Name:        "Retired Treatment",
		DurationMin: 30,
		Price:       40,
		Active:      false,
	})

	uc := NewCreateSlot(repo, testHours, nil, nil)

	_, err := uc.Execute(context.Background(), CreateSlotInput{
		ServiceID: svc.ID, Date: "2026-09-14", StartTime: "10:00",
	})
	if !httperr.IsBusiness(err, httperr.CodeInvalidInput) {
		t.Fatalf("want invalid_input, got %v", err)
	}
}

func TestCreateSlotRejectsMalformedInput(t *testing.T) {
	repo := infraRepo.NewBookingMemoryRepository()
	svc := seedService(repo)
	ctx := context.Background()

	uc := NewCreateSlot(repo, testHours, nil, nil)

	_, err := uc.Execute(ctx, CreateSlotInput{
		ServiceID: svc.ID, Date: "14/09/2026", StartTime: "10:00",
	})
	if !httperr.IsBusiness(err, httperr.CodeInvalidInput) {
		t.Fatalf("bad date: want invalid_input, got %v", err)
	}

	_, err = uc.Execute(ctx, CreateSlotInput{
		ServiceID: svc.ID, Date: "2026-09-14", StartTime: "10h00",
	})
	if !httperr.IsBusiness(err, httperr.CodeInvalidInput) {
		t.Fatalf("bad clock: want invalid_input, got %v", err)
	}
}
