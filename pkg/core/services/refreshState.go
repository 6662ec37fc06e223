package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/lockerdesk/pkg/core/store"
)

// RefreshResult reports how many entities a refresh pulled down.
type RefreshResult struct {
	LockerCount int
	PersonCount int
}

// RefreshState rebuilds the session store from the server's locker and
// people lists. Both fetches must succeed before either list is replaced,
// so a failed refresh leaves the store exactly as it was.
func RefreshState(ctx context.Context, gateway Gateway, st *store.Store, logger *zap.Logger) (*RefreshResult, error) {
	logger.Debug("Fetching lockers")
	lockers, err := gateway.ListLockers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lockers: %w", err)
	}

	logger.Debug("Fetching people")
	people, err := gateway.ListPeople(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch people: %w", err)
	}

	st.ReplaceLockers(lockers)
	st.ReplacePeople(people)

	logger.Info("State refreshed",
		zap.Int("lockers", len(lockers)),
		zap.Int("people", len(people)))

	return &RefreshResult{LockerCount: len(lockers), PersonCount: len(people)}, nil
}
