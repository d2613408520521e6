package reservation

import (
	"context"
	"testing"

	"github.com/lumina-beauty/booking-api/internal/httperr"
	"github.com/lumina-beauty/booking-api/internal/models"
)

func TestCancelReleasesSeat(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	res, err := env.createUC().Execute(ctx, CreateReservationInput{
		UserID: env.user.ID, SlotID: env.slot.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	cancel := NewCancelReservation(env.repo, nil, nil)
	if err := cancel.Execute(ctx, res.ID, &env.user.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	stored, _ := env.repo.ReservationByID(res.ID)
	if stored.Status != "cancelled" {
		t.Errorf("status = %s, want cancelled", stored.Status)
	}
	if stored.CancelledAt == nil {
		t.Error("CancelledAt not stamped")
	}

	slot, _ := env.repo.SlotByID(env.slot.ID)
	if slot.Remaining != 1 {
		t.Errorf("remaining = %d, want 1 after release", slot.Remaining)
	}
}

func TestCancelTwiceReleasesOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	res, err := env.createUC().Execute(ctx, CreateReservationInput{
		UserID: env.user.ID, SlotID: env.slot.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	cancel := NewCancelReservation(env.repo, nil, nil)
	if err := cancel.Execute(ctx, res.ID, &env.user.ID); err != nil {
		t.Fatalf("first cancel: %v", err)
	}

	err = cancel.Execute(ctx, res.ID, &env.user.ID)
	if !httperr.IsBusiness(err, httperr.CodeInvalidState) {
		t.Fatalf("want invalid_state on second cancel, got %v", err)
	}

	slot, _ := env.repo.SlotByID(env.slot.ID)
	if slot.Remaining != 1 {
		t.Errorf("double cancel inflated the ledger, remaining = %d", slot.Remaining)
	}
}

func TestCancelRejectsForeignReservation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	res, err := env.createUC().Execute(ctx, CreateReservationInput{
		UserID: env.user.ID, SlotID: env.slot.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	other := env.repo.SeedUser(models.User{
		Name:   "Mallory",
		Email:  "mallory@example.com",
		Role:   models.RoleClient,
		Active: true,
	})

	cancel := NewCancelReservation(env.repo, nil, nil)
	err = cancel.Execute(ctx, res.ID, &other.ID)
	if !httperr.IsForbidden(err) {
		t.Fatalf("want forbidden, got %v", err)
	}

	slot, _ := env.repo.SlotByID(env.slot.ID)
	if slot.Remaining != 0 {
		t.Errorf("rejected cancel must not release, remaining = %d", slot.Remaining)
	}
}

func TestCancelAsAdminSkipsOwnership(t *testing.T) {
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
		t.Fatalf("admin cancel: %v", err)
	}

	slot, _ := env.repo.SlotByID(env.slot.ID)
	if slot.Remaining != 1 {
		t.Errorf("remaining = %d, want 1", slot.Remaining)
	}
}

func TestCreateCancelRoundTripFreesTheSeatForOthers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	create := env.createUC()
	cancel := NewCancelReservation(env.repo, nil, nil)

	res, err := create.Execute(ctx, CreateReservationInput{
		UserID: env.user.ID, SlotID: env.slot.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := cancel.Execute(ctx, res.ID, &env.user.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	bob := env.repo.SeedUser(models.User{
		Name:   "Bob",
		Email:  "bob@example.com",
		Role:   models.RoleClient,
		Active: true,
	})

	if _, err := create.Execute(ctx, CreateReservationInput{
		UserID: bob.ID, SlotID: env.slot.ID,
	}); err != nil {
		t.Fatalf("rebooking a freed seat: %v", err)
	}

	slot, _ := env.repo.SlotByID(env.slot.ID)
	if slot.Remaining != 0 {
		t.Errorf("remaining = %d, want 0", slot.Remaining)
	}
}
