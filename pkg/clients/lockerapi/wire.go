package lockerapi

import "github.com/jakechorley/lockerdesk/pkg/core/model"

// Wire payloads for the /api endpoints. Responses are validated before
// conversion so a malformed server response fails the action instead of
// leaking empty fields into the cache.

type lockerPayload struct {
	ID      int64       `json:"id" validate:"required"`
	Area    string      `json:"area" validate:"required"`
	Type    string      `json:"type" validate:"required"`
	UserID  *int64      `json:"userId,omitempty"`
	EndDate *model.Date `json:"endDate,omitempty"`
}

func (p lockerPayload) toModel() model.Locker {
	return model.Locker{
		ID:      p.ID,
		Area:    p.Area,
		Type:    p.Type,
		UserID:  p.UserID,
		EndDate: p.EndDate,
	}
}

type personPayload struct {
	ID        int64      `json:"id" validate:"required"`
	Name      string     `json:"name" validate:"required"`
	StartDate model.Date `json:"startDate" validate:"required"`
	EndDate   model.Date `json:"endDate" validate:"required"`
	Email     string     `json:"email" validate:"required"`
	Rota      string     `json:"rota" validate:"required"`
}

func (p personPayload) toModel() model.Person {
	return model.Person{
		ID:        p.ID,
		Name:      p.Name,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Email:     p.Email,
		Rota:      p.Rota,
	}
}

type createLockerRequest struct {
	Area string `json:"area"`
	Type string `json:"type"`
}

type createPersonRequest struct {
	Name      string     `json:"name"`
	StartDate model.Date `json:"startDate"`
	EndDate   model.Date `json:"endDate"`
	Email     string     `json:"email"`
	Rota      string     `json:"rota"`
}

type createAssignmentRequest struct {
	LockerID int64 `json:"locker_id"`
	PersonID int64 `json:"person_id"`
}
