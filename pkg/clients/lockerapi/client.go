// Package lockerapi is the client for the locker administration HTTP API.
// The contract is narrow: send JSON, get JSON back on HTTP 200, treat any
// other status as a terminal failure carrying the status code and raw body.
package lockerapi

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/jakechorley/lockerdesk/pkg/core/model"
)

const (
	lockersPath = "/api/lockers"
	peoplePath  = "/api/people"
	assignPath  = "/api/assign"
)

// APIError is the single failure kind the API surface produces: a non-200
// response with its status code and raw body.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api request failed with status %d: %s", e.StatusCode, e.Body)
}

// Client talks to the locker API. It applies no retries and no timeout;
// a failure is terminal for the triggering user action.
type Client struct {
	http     *resty.Client
	validate *validator.Validate
	logger   *zap.Logger
}

// New creates a client for the API at baseURL.
func New(baseURL string, logger *zap.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		http:     httpClient,
		validate: validator.New(),
		logger:   logger,
	}
}

// PersonDraft carries the operator-entered fields for a new person. The
// server assigns the id.
type PersonDraft struct {
	Name      string
	StartDate model.Date
	EndDate   model.Date
	Email     string
	Rota      string
}

// ListLockers fetches every locker known to the server, in server order.
func (c *Client) ListLockers(ctx context.Context) ([]model.Locker, error) {
	body, err := c.do(ctx, resty.MethodGet, lockersPath, nil)
	if err != nil {
		return nil, err
	}

	var payloads []lockerPayload
	if err := json.Unmarshal(body, &payloads); err != nil {
		return nil, fmt.Errorf("malformed locker list response: %w", err)
	}

	lockers := make([]model.Locker, 0, len(payloads))
	for i, p := range payloads {
		if err := c.validate.Struct(p); err != nil {
			return nil, fmt.Errorf("malformed locker at index %d: %w", i, err)
		}
		lockers = append(lockers, p.toModel())
	}

	c.logger.Debug("Fetched lockers", zap.Int("count", len(lockers)))
	return lockers, nil
}

// ListPeople fetches every person known to the server, in server order.
func (c *Client) ListPeople(ctx context.Context) ([]model.Person, error) {
	body, err := c.do(ctx, resty.MethodGet, peoplePath, nil)
	if err != nil {
		return nil, err
	}

	var payloads []personPayload
	if err := json.Unmarshal(body, &payloads); err != nil {
		return nil, fmt.Errorf("malformed people list response: %w", err)
	}

	people := make([]model.Person, 0, len(payloads))
	for i, p := range payloads {
		if err := c.validate.Struct(p); err != nil {
			return nil, fmt.Errorf("malformed person at index %d: %w", i, err)
		}
		people = append(people, p.toModel())
	}

	c.logger.Debug("Fetched people", zap.Int("count", len(people)))
	return people, nil
}

// CreateLocker registers a new locker; the server assigns its id and
// returns it unoccupied.
func (c *Client) CreateLocker(ctx context.Context, area, typ string) (*model.Locker, error) {
	req := createLockerRequest{Area: area, Type: typ}
	body, err := c.do(ctx, resty.MethodPost, lockersPath, req)
	if err != nil {
		return nil, err
	}

	var payload lockerPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("malformed create locker response: %w", err)
	}
	if err := c.validate.Struct(payload); err != nil {
		return nil, fmt.Errorf("malformed create locker response: %w", err)
	}

	locker := payload.toModel()
	c.logger.Debug("Created locker", zap.Int64("locker_id", locker.ID), zap.String("area", locker.Area))
	return &locker, nil
}

// CreatePerson registers a new person; the server assigns the id.
func (c *Client) CreatePerson(ctx context.Context, draft PersonDraft) (*model.Person, error) {
	req := createPersonRequest{
		Name:      draft.Name,
		StartDate: draft.StartDate,
		EndDate:   draft.EndDate,
		Email:     draft.Email,
		Rota:      draft.Rota,
	}
	body, err := c.do(ctx, resty.MethodPost, peoplePath, req)
	if err != nil {
		return nil, err
	}

	var payload personPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("malformed create person response: %w", err)
	}
	if err := c.validate.Struct(payload); err != nil {
		return nil, fmt.Errorf("malformed create person response: %w", err)
	}

	person := payload.toModel()
	c.logger.Debug("Created person", zap.Int64("person_id", person.ID), zap.String("name", person.Name))
	return &person, nil
}

// CreateAssignment asks the server to assign the locker to the person.
// The 200 ack body is implementation-defined and ignored.
func (c *Client) CreateAssignment(ctx context.Context, lockerID, personID int64) error {
	req := createAssignmentRequest{LockerID: lockerID, PersonID: personID}
	if _, err := c.do(ctx, resty.MethodPost, assignPath, req); err != nil {
		return err
	}
	c.logger.Debug("Assignment confirmed", zap.Int64("locker_id", lockerID), zap.Int64("person_id", personID))
	return nil
}

// do issues a single request and returns the raw body of a 200 response.
// Any transport error or non-200 status is terminal.
func (c *Client) do(ctx context.Context, method, path string, reqBody any) ([]byte, error) {
	r := c.http.R().SetContext(ctx)
	if reqBody != nil {
		r.SetBody(reqBody)
	}

	resp, err := r.Execute(method, path)
	if err != nil {
		c.logger.Error("Request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}

	if resp.StatusCode() != 200 {
		apiErr := &APIError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
		c.logger.Warn("Request rejected",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", apiErr.StatusCode))
		return nil, apiErr
	}

	return resp.Body(), nil
}
