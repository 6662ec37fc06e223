package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jakechorley/lockerdesk/pkg/clients/lockerapi"
	"github.com/jakechorley/lockerdesk/pkg/core/model"
	"github.com/jakechorley/lockerdesk/pkg/core/store"
)

// AddPerson registers a new person with the server and mirrors the created
// record into the store. An unset end date defaults to today.
func AddPerson(ctx context.Context, gateway Gateway, st *store.Store, logger *zap.Logger, now time.Time, draft lockerapi.PersonDraft) (*model.Person, error) {
	if draft.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if draft.EndDate.IsZero() {
		draft.EndDate = model.DateOf(now)
	}

	logger.Info("Adding person",
		zap.String("name", draft.Name),
		zap.String("rota", draft.Rota),
		zap.String("end_date", draft.EndDate.String()))

	created, err := gateway.CreatePerson(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("failed to add person: %w", err)
	}

	entry := st.UpsertPerson(*created)
	logger.Info("Person added", zap.Int64("person_id", entry.ID))
	return entry, nil
}
