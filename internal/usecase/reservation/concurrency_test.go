package reservation

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/lumina-beauty/booking-api/internal/httperr"
	infraRepo "github.com/lumina-beauty/booking-api/internal/infra/repository"
	"github.com/lumina-beauty/booking-api/internal/models"
)

// Twenty clients race for three seats: exactly three bookings succeed, the
// rest fail with no_capacity, and the ledger ends at zero without ever going
// negative.
func TestConcurrentCreatesNeverOversell(t *testing.T) {
	const clients = 20
	const seats = 3

	repo := infraRepo.NewBookingMemoryRepository()

	service := repo.SeedService(models.Service{
		Name:         "Yoga Class",
		DurationMin:  60,
		Price:        30,
		MaxOccupancy: seats,
		Active:       true,
	})

	slot := repo.SeedSlot(models.Slot{
		ServiceID: service.ID,
		Date:      "2026-09-12",
		StartTime: "09:00",
		EndTime:   "10:00",
		Capacity:  seats,
		Remaining: seats,
	})

	var userIDs [clients]uint
	for i := 0; i < clients; i++ {
		u := repo.SeedUser(models.User{
			Name:   fmt.Sprintf("Client %d", i),
			Email:  fmt.Sprintf("client%d@example.com", i),
			Role:   models.RoleClient,
			Active: true,
		})
		userIDs[i] = u.ID
	}

	uc := NewCreateReservation(repo, testHours, nil, nil)

	var wg sync.WaitGroup
	errs := make([]error, clients)

	for i := 0; i < clients; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), CreateReservationInput{
				UserID: userIDs[i],
				SlotID: slot.ID,
			})
		}(i)
	}
	wg.Wait()

	won := 0
	for i, err := range errs {
		switch {
		case err == nil:
			won++
		case httperr.IsBusiness(err, httperr.CodeNoCapacity):
			// expected loser
		default:
			t.Errorf("client %d: unexpected error %v", i, err)
		}
	}

	if won != seats {
		t.Fatalf("%d bookings succeeded, want exactly %d", won, seats)
	}

	final, _ := repo.SlotByID(slot.ID)
	if final.Remaining != 0 {
		t.Fatalf("remaining = %d, want 0", final.Remaining)
	}
}
