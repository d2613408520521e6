package reservation

import (
	"context"
	"testing"

	"github.com/lumina-beauty/booking-api/internal/httperr"
	"github.com/lumina-beauty/booking-api/internal/models"
)

func (e *testEnv) editUC() *EditReservation {
	return NewEditReservation(e.repo, testHours, nil, nil)
}

func TestEditMovesReservationBetweenSlots(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	target := env.repo.SeedSlot(models.Slot{
		ServiceID: env.service.ID,
		Date:      "2026-09-11",
		StartTime: "15:00",
		EndTime:   "15:45",
		Capacity:  1,
		Remaining: 1,
	})

	res, err := env.createUC().Execute(ctx, CreateReservationInput{
		UserID: env.user.ID, SlotID: env.slot.ID, Notes: "keep me short",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	notes := "moved to friday"
	edited, err := env.editUC().Execute(ctx, res.ID, EditReservationInput{
		SlotID: &target.ID,
		Notes:  &notes,
	})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}

	if edited.SlotID == nil || *edited.SlotID != target.ID {
		t.Fatalf("slot id = %v, want %d", edited.SlotID, target.ID)
	}
	if edited.Date != target.Date || edited.StartTime != target.StartTime || edited.EndTime != target.EndTime {
		t.Errorf("denormalized window not refreshed: %s %s-%s",
			edited.Date, edited.StartTime, edited.EndTime)
	}
	if edited.Notes != notes {
		t.Errorf("notes = %q, want %q", edited.Notes, notes)
	}

	oldSlot, _ := env.repo.SlotByID(env.slot.ID)
	if oldSlot.Remaining != 1 {
		t.Errorf("old slot remaining = %d, want 1 after release", oldSlot.Remaining)
	}
	newSlot, _ := env.repo.SlotByID(target.ID)
	if newSlot.Remaining != 0 {
		t.Errorf("new slot remaining = %d, want 0", newSlot.Remaining)
	}
}

func TestEditOntoFullSlotChangesNothing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	full := env.repo.SeedSlot(models.Slot{
		ServiceID: env.service.ID,
		Date:      "2026-09-11",
		StartTime: "16:00",
		EndTime:   "16:45",
		Capacity:  1,
		Remaining: 0,
	})

	res, err := env.createUC().Execute(ctx, CreateReservationInput{
		UserID: env.user.ID, SlotID: env.slot.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = env.editUC().Execute(ctx, res.ID, EditReservationInput{
		SlotID: &full.ID,
	})
	if !httperr.IsBusiness(err, httperr.CodeNoCapacity) {
		t.Fatalf("want no_capacity, got %v", err)
	}

	// the failed swap rolls back: the old seat is still held
	oldSlot, _ := env.repo.SlotByID(env.slot.ID)
	if oldSlot.Remaining != 0 {
		t.Errorf("old slot remaining = %d, want 0 (seat kept)", oldSlot.Remaining)
	}

	stored, _ := env.repo.ReservationByID(res.ID)
	if stored.SlotID == nil || *stored.SlotID != env.slot.ID {
		t.Errorf("reservation moved despite the failure: slot id = %v", stored.SlotID)
	}
}

func TestEditNilNotesClears(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	res, err := env.createUC().Execute(ctx, CreateReservationInput{
		UserID: env.user.ID, SlotID: env.slot.ID, Notes: "allergic to lavender",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	edited, err := env.editUC().Execute(ctx, res.ID, EditReservationInput{})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if edited.Notes != "" {
		t.Errorf("notes = %q, want cleared", edited.Notes)
	}
}

func TestEditSameSlotDoesNotDoubleCount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	res, err := env.createUC().Execute(ctx, CreateReservationInput{
		UserID: env.user.ID, SlotID: env.slot.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	note := "just updating the note"
	if _, err := env.editUC().Execute(ctx, res.ID, EditReservationInput{
		SlotID: &env.slot.ID,
		Notes:  &note,
	}); err != nil {
		t.Fatalf("edit: %v", err)
	}

	slot, _ := env.repo.SlotByID(env.slot.ID)
	if slot.Remaining != 0 {
		t.Errorf("remaining = %d, want 0 (one seat, held once)", slot.Remaining)
	}
}

func TestEditTerminalReservation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	res, err := env.createUC().Execute(ctx, CreateReservationInput{
		UserID: env.user.ID, SlotID: env.slot.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	cancel := NewCancelReservation(env.repo, nil, nil)
	if err := cancel.Execute(ctx, res.ID, nil); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	target := env.repo.SeedSlot(models.Slot{
		ServiceID: env.service.ID,
		Date:      "2026-09-11",
		StartTime: "17:00",
		EndTime:   "17:45",
		Capacity:  1,
		Remaining: 1,
	})

	_, err = env.editUC().Execute(ctx, res.ID, EditReservationInput{
		SlotID: &target.ID,
	})
	if !httperr.IsBusiness(err, httperr.CodeInvalidState) {
		t.Fatalf("want invalid_state for a cancelled reservation, got %v", err)
	}
}
