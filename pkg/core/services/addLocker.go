package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/lockerdesk/pkg/core/model"
	"github.com/jakechorley/lockerdesk/pkg/core/store"
)

// AddLocker registers a new locker with the server and mirrors it into the
// store. The store is only touched once the server has returned the
// created locker.
func AddLocker(ctx context.Context, gateway Gateway, st *store.Store, logger *zap.Logger, area, typ string) (*model.Locker, error) {
	if area == "" {
		return nil, fmt.Errorf("area is required")
	}
	if typ == "" {
		return nil, fmt.Errorf("type is required")
	}

	logger.Info("Adding locker", zap.String("area", area), zap.String("type", typ))

	created, err := gateway.CreateLocker(ctx, area, typ)
	if err != nil {
		return nil, fmt.Errorf("failed to add locker: %w", err)
	}

	entry := st.UpsertLocker(*created)
	logger.Info("Locker added", zap.Int64("locker_id", entry.ID))
	return entry, nil
}
