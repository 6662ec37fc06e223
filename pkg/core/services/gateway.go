package services

import (
	"context"

	"github.com/jakechorley/lockerdesk/pkg/clients/lockerapi"
	"github.com/jakechorley/lockerdesk/pkg/core/model"
)

// Gateway is the slice of the locker API the services need. Implemented by
// lockerapi.Client; mocked in tests.
type Gateway interface {
	ListLockers(ctx context.Context) ([]model.Locker, error)
	ListPeople(ctx context.Context) ([]model.Person, error)
	CreateLocker(ctx context.Context, area, typ string) (*model.Locker, error)
	CreatePerson(ctx context.Context, draft lockerapi.PersonDraft) (*model.Person, error)
	CreateAssignment(ctx context.Context, lockerID, personID int64) error
}
