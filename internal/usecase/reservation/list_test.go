package reservation

import (
	"context"
	"testing"

	"github.com/lumina-beauty/booking-api/internal/httperr"
	"github.com/lumina-beauty/booking-api/internal/models"
)

func TestGetReservationOwnership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	res, err := env.createUC().Execute(ctx, CreateReservationInput{
		UserID: env.user.ID, SlotID: env.slot.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	list := NewListReservations(env.repo)

	got, err := list.Get(ctx, res.ID, &env.user.ID)
	if err != nil {
		t.Fatalf("owner get: %v", err)
	}
	if got.ID != res.ID || got.UserName != env.user.Name {
		t.Errorf("got %+v", got)
	}

	other := env.repo.SeedUser(models.User{
		Name: "Eve", Email: "eve@example.com", Role: models.RoleClient, Active: true,
	})
	if _, err := list.Get(ctx, res.ID, &other.ID); !httperr.IsForbidden(err) {
		t.Fatalf("foreign get: want forbidden, got %v", err)
	}

	// nil acting user is the admin path
	if _, err := list.Get(ctx, res.ID, nil); err != nil {
		t.Fatalf("admin get: %v", err)
	}
}

func TestListForUserNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	later := env.repo.SeedSlot(models.Slot{
		ServiceID: env.service.ID,
		Date:      "2026-09-11",
		StartTime: "09:00",
		EndTime:   "09:45",
		Capacity:  1,
		Remaining: 1,
	})

	create := env.createUC()
	if _, err := create.Execute(ctx, CreateReservationInput{
		UserID: env.user.ID, SlotID: env.slot.ID,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := create.Execute(ctx, CreateReservationInput{
		UserID: env.user.ID, SlotID: later.ID,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	list := NewListReservations(env.repo)
	items, err := list.ForUser(ctx, env.user.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Date != "2026-09-11" || items[1].Date != "2026-09-10" {
		t.Errorf("not newest first: %s, %s", items[0].Date, items[1].Date)
	}
}
