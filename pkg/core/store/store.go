// Package store holds the session cache of lockers, people and allocations.
// It is rebuilt from server responses and mutated only after the server has
// confirmed a write; it never persists anything.
package store

import (
	"fmt"

	"github.com/jakechorley/lockerdesk/pkg/core/model"
)

// Store caches entities by id while preserving the server's list order for
// rendering. It is not safe for concurrent use; all mutation happens from
// the single command-handling context.
type Store struct {
	lockers   map[int64]*model.Locker
	lockerIDs []int64

	people    map[int64]*model.Person
	personIDs []int64

	allocations []*model.Allocation
}

// New constructs an empty session store.
func New() *Store {
	return &Store{
		lockers: make(map[int64]*model.Locker),
		people:  make(map[int64]*model.Person),
	}
}

// ReplaceLockers discards all cached lockers and installs the given list.
// Call only with a complete, successfully fetched server list.
func (s *Store) ReplaceLockers(list []model.Locker) {
	s.lockers = make(map[int64]*model.Locker, len(list))
	s.lockerIDs = s.lockerIDs[:0]
	for _, l := range list {
		s.UpsertLocker(l)
	}
}

// ReplacePeople discards all cached people and installs the given list.
func (s *Store) ReplacePeople(list []model.Person) {
	s.people = make(map[int64]*model.Person, len(list))
	s.personIDs = s.personIDs[:0]
	for _, p := range list {
		s.UpsertPerson(p)
	}
}

// UpsertLocker adds a locker or overwrites the cached entry with the same
// id, keeping its position in the iteration order. New lockers go to the
// tail. The returned pointer is the store's own entry.
func (s *Store) UpsertLocker(l model.Locker) *model.Locker {
	if existing, ok := s.lockers[l.ID]; ok {
		*existing = l
		return existing
	}
	entry := &l
	s.lockers[l.ID] = entry
	s.lockerIDs = append(s.lockerIDs, l.ID)
	return entry
}

// UpsertPerson adds a person or overwrites the cached entry with the same id.
func (s *Store) UpsertPerson(p model.Person) *model.Person {
	if existing, ok := s.people[p.ID]; ok {
		*existing = p
		return existing
	}
	entry := &p
	s.people[p.ID] = entry
	s.personIDs = append(s.personIDs, p.ID)
	return entry
}

// MarkAssigned records a server-confirmed assignment on the cached locker.
// It must only be called after the server has acknowledged the assignment.
func (s *Store) MarkAssigned(lockerID, personID int64) error {
	l, ok := s.lockers[lockerID]
	if !ok {
		return fmt.Errorf("locker %d not in store", lockerID)
	}
	if _, ok := s.people[personID]; !ok {
		return fmt.Errorf("person %d not in store", personID)
	}
	l.UserID = &personID
	return nil
}

// AppendAllocation records a confirmed assignment for the session.
func (s *Store) AppendAllocation(a *model.Allocation) {
	s.allocations = append(s.allocations, a)
}

// Locker returns the cached locker with the given id.
func (s *Store) Locker(id int64) (*model.Locker, bool) {
	l, ok := s.lockers[id]
	return l, ok
}

// Person returns the cached person with the given id.
func (s *Store) Person(id int64) (*model.Person, bool) {
	p, ok := s.people[id]
	return p, ok
}

// Lockers returns all cached lockers in server list order.
func (s *Store) Lockers() []*model.Locker {
	out := make([]*model.Locker, 0, len(s.lockerIDs))
	for _, id := range s.lockerIDs {
		out = append(out, s.lockers[id])
	}
	return out
}

// People returns all cached people in server list order.
func (s *Store) People() []*model.Person {
	out := make([]*model.Person, 0, len(s.personIDs))
	for _, id := range s.personIDs {
		out = append(out, s.people[id])
	}
	return out
}

// Allocations returns the session's confirmed assignments, oldest first.
func (s *Store) Allocations() []*model.Allocation {
	return s.allocations
}

// AvailableLockers returns the unoccupied lockers in store order.
func (s *Store) AvailableLockers() []*model.Locker {
	var out []*model.Locker
	for _, id := range s.lockerIDs {
		if l := s.lockers[id]; !l.Assigned() {
			out = append(out, l)
		}
	}
	return out
}

// UnassignedPeople returns the people no locker is assigned to, in store
// order. Occupancy is read from the lockers' UserID fields; the locker
// list is the single source of truth for who holds a locker.
func (s *Store) UnassignedPeople() []*model.Person {
	assigned := make(map[int64]bool, len(s.lockerIDs))
	for _, l := range s.lockers {
		if l.UserID != nil {
			assigned[*l.UserID] = true
		}
	}
	var out []*model.Person
	for _, id := range s.personIDs {
		if !assigned[id] {
			out = append(out, s.people[id])
		}
	}
	return out
}
