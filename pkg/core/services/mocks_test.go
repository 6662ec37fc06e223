package services

import (
	"context"

	"github.com/jakechorley/lockerdesk/pkg/clients/lockerapi"
	"github.com/jakechorley/lockerdesk/pkg/core/model"
)

// mockGateway implements Gateway for testing and records every call.
type mockGateway struct {
	lockers []model.Locker
	people  []model.Person

	listLockersErr error
	listPeopleErr  error

	createdLocker   *model.Locker
	createLockerErr error

	createdPerson   *model.Person
	createPersonErr error

	assignErr error

	assignCalls []assignCall
	callCount   int
}

type assignCall struct {
	lockerID int64
	personID int64
}

func (m *mockGateway) ListLockers(ctx context.Context) ([]model.Locker, error) {
	m.callCount++
	if m.listLockersErr != nil {
		return nil, m.listLockersErr
	}
	return m.lockers, nil
}

func (m *mockGateway) ListPeople(ctx context.Context) ([]model.Person, error) {
	m.callCount++
	if m.listPeopleErr != nil {
		return nil, m.listPeopleErr
	}
	return m.people, nil
}

func (m *mockGateway) CreateLocker(ctx context.Context, area, typ string) (*model.Locker, error) {
	m.callCount++
	if m.createLockerErr != nil {
		return nil, m.createLockerErr
	}
	return m.createdLocker, nil
}

func (m *mockGateway) CreatePerson(ctx context.Context, draft lockerapi.PersonDraft) (*model.Person, error) {
	m.callCount++
	if m.createPersonErr != nil {
		return nil, m.createPersonErr
	}
	if m.createdPerson != nil {
		return m.createdPerson, nil
	}
	// Echo the draft back with a server-assigned id, as the API does.
	return &model.Person{
		ID:        42,
		Name:      draft.Name,
		StartDate: draft.StartDate,
		EndDate:   draft.EndDate,
		Email:     draft.Email,
		Rota:      draft.Rota,
	}, nil
}

func (m *mockGateway) CreateAssignment(ctx context.Context, lockerID, personID int64) error {
	m.callCount++
	m.assignCalls = append(m.assignCalls, assignCall{lockerID: lockerID, personID: personID})
	return m.assignErr
}
