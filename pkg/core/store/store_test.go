package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/lockerdesk/pkg/core/model"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestReplaceLockersSupersedesPreviousContents(t *testing.T) {
	s := New()
	s.ReplaceLockers([]model.Locker{
		{ID: 1, Area: "gym", Type: "small"},
		{ID: 2, Area: "gym", Type: "large"},
	})
	require.Len(t, s.Lockers(), 2)

	s.ReplaceLockers([]model.Locker{
		{ID: 2, Area: "gym", Type: "large"},
		{ID: 3, Area: "pool", Type: "small"},
	})

	lockers := s.Lockers()
	require.Len(t, lockers, 2)
	assert.Equal(t, int64(2), lockers[0].ID)
	assert.Equal(t, int64(3), lockers[1].ID)

	_, ok := s.Locker(1)
	assert.False(t, ok, "entry from the previous list must not survive")
}

func TestIterationFollowsServerListOrder(t *testing.T) {
	s := New()
	s.ReplaceLockers([]model.Locker{
		{ID: 7, Area: "pool", Type: "small"},
		{ID: 3, Area: "gym", Type: "large"},
		{ID: 5, Area: "gym", Type: "small"},
	})

	var ids []int64
	for _, l := range s.Lockers() {
		ids = append(ids, l.ID)
	}
	assert.Equal(t, []int64{7, 3, 5}, ids, "store must not re-sort")
}

func TestUpsertLockerOverwritesInPlace(t *testing.T) {
	s := New()
	s.ReplaceLockers([]model.Locker{
		{ID: 1, Area: "gym", Type: "small"},
		{ID: 2, Area: "gym", Type: "large"},
	})

	before, _ := s.Locker(1)
	s.UpsertLocker(model.Locker{ID: 1, Area: "gym", Type: "medium"})

	after, ok := s.Locker(1)
	require.True(t, ok)
	assert.Equal(t, "medium", after.Type)
	assert.Same(t, before, after, "upsert must update the existing entry, not replace the pointer")
	assert.Equal(t, int64(1), s.Lockers()[0].ID, "position must be preserved")

	s.UpsertLocker(model.Locker{ID: 9, Area: "pool", Type: "small"})
	lockers := s.Lockers()
	assert.Equal(t, int64(9), lockers[len(lockers)-1].ID, "new entries append at the tail")
}

func TestMarkAssigned(t *testing.T) {
	s := New()
	s.ReplaceLockers([]model.Locker{{ID: 1, Area: "gym", Type: "small"}})
	s.ReplacePeople([]model.Person{{ID: 9, Name: "Alex", Rota: "R1"}})

	require.NoError(t, s.MarkAssigned(1, 9))

	l, _ := s.Locker(1)
	require.NotNil(t, l.UserID)
	assert.Equal(t, int64(9), *l.UserID)
	assert.Empty(t, s.AvailableLockers())
	assert.Empty(t, s.UnassignedPeople())
}

func TestMarkAssignedUnknownEntities(t *testing.T) {
	s := New()
	s.ReplaceLockers([]model.Locker{{ID: 1, Area: "gym", Type: "small"}})
	s.ReplacePeople([]model.Person{{ID: 9, Name: "Alex"}})

	assert.Error(t, s.MarkAssigned(99, 9))
	assert.Error(t, s.MarkAssigned(1, 99))

	l, _ := s.Locker(1)
	assert.Nil(t, l.UserID, "failed mark must not mutate the locker")
}

func TestUnassignedPeopleScansLockerOccupancy(t *testing.T) {
	s := New()
	s.ReplaceLockers([]model.Locker{
		{ID: 1, Area: "gym", Type: "small", UserID: int64Ptr(9)},
		{ID: 2, Area: "gym", Type: "small"},
	})
	s.ReplacePeople([]model.Person{
		{ID: 9, Name: "Alex", Rota: "R1"},
		{ID: 10, Name: "Sam", Rota: "R2"},
	})

	unassigned := s.UnassignedPeople()
	require.Len(t, unassigned, 1)
	assert.Equal(t, int64(10), unassigned[0].ID)

	available := s.AvailableLockers()
	require.Len(t, available, 1)
	assert.Equal(t, int64(2), available[0].ID)
}

func TestAllocationsSharePointersWithEntries(t *testing.T) {
	s := New()
	s.ReplaceLockers([]model.Locker{{ID: 1, Area: "gym", Type: "small"}})
	s.ReplacePeople([]model.Person{{ID: 9, Name: "Alex"}})

	l, _ := s.Locker(1)
	p, _ := s.Person(9)
	s.AppendAllocation(&model.Allocation{ID: "a", Locker: l, Person: p, DateAllocated: model.DateOf(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))})
	require.NoError(t, s.MarkAssigned(1, 9))

	allocs := s.Allocations()
	require.Len(t, allocs, 1)
	require.NotNil(t, allocs[0].Locker.UserID)
	assert.Equal(t, int64(9), *allocs[0].Locker.UserID, "allocation sees the store's entry, not a copy")
}
