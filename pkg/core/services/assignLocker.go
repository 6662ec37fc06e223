package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/lockerdesk/pkg/core/model"
	"github.com/jakechorley/lockerdesk/pkg/core/store"
)

// ErrNothingToAssign means there is no available locker or no unassigned
// person, so no assignment request was made.
var ErrNothingToAssign = errors.New("no available lockers or unassigned people")

// AssignLocker pairs the first available locker with the first unassigned
// person, in store order, and asks the server to confirm the assignment.
// The store is mutated only after the server acknowledges: the locker is
// marked occupied and an allocation record dated now is appended. On any
// failure the store is left untouched.
//
// Selection is greedy with no matching policy beyond list order; the
// operator can re-run it until one side is exhausted.
func AssignLocker(ctx context.Context, gateway Gateway, st *store.Store, logger *zap.Logger, now time.Time) (*model.Allocation, error) {
	available := st.AvailableLockers()
	unassigned := st.UnassignedPeople()
	if len(available) == 0 || len(unassigned) == 0 {
		logger.Info("Nothing to assign",
			zap.Int("available_lockers", len(available)),
			zap.Int("unassigned_people", len(unassigned)))
		return nil, ErrNothingToAssign
	}

	locker := available[0]
	person := unassigned[0]

	logger.Info("Requesting assignment",
		zap.Int64("locker_id", locker.ID),
		zap.Int64("person_id", person.ID),
		zap.String("person_name", person.Name))

	if err := gateway.CreateAssignment(ctx, locker.ID, person.ID); err != nil {
		return nil, fmt.Errorf("failed to assign locker %d to person %d: %w", locker.ID, person.ID, err)
	}

	if err := st.MarkAssigned(locker.ID, person.ID); err != nil {
		return nil, fmt.Errorf("assignment confirmed but not recorded: %w", err)
	}

	allocation := &model.Allocation{
		ID:            uuid.New().String(),
		Locker:        locker,
		Person:        person,
		DateAllocated: model.DateOf(now),
	}
	st.AppendAllocation(allocation)

	logger.Info("Assignment recorded",
		zap.Int64("locker_id", locker.ID),
		zap.Int64("person_id", person.ID),
		zap.String("date_allocated", allocation.DateAllocated.String()))

	return allocation, nil
}
