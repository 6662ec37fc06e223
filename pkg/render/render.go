// Package render projects store state into display lists for the terminal.
// Rendering is a pure function of the store's current contents (plus the
// clock, for locker status), so re-rendering with unchanged state yields
// identical lines.
package render

import (
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/jakechorley/lockerdesk/pkg/core/model"
	"github.com/jakechorley/lockerdesk/pkg/core/store"
)

var statusColors = map[model.Status]*color.Color{
	model.StatusAvailable: color.New(color.FgGreen),
	model.StatusExpiring:  color.New(color.FgYellow),
	model.StatusExpired:   color.New(color.FgRed),
}

// Lockers renders the locker list in store order, one line per locker,
// colored by classification at the given instant. A non-empty area limits
// the list to that area.
func Lockers(st *store.Store, now time.Time, area string) []string {
	var lines []string
	for _, l := range st.Lockers() {
		if area != "" && l.Area != area {
			continue
		}
		status := model.Classify(*l, now)
		line := fmt.Sprintf("Locker %d: %s - %s [%s]", l.ID, l.Area, l.Type, status)
		lines = append(lines, statusColors[status].Sprint(line))
	}
	return lines
}

// People renders the people list in store order.
func People(st *store.Store) []string {
	var lines []string
	for _, p := range st.People() {
		lines = append(lines, fmt.Sprintf("Person %d: %s (%s)", p.ID, p.Name, p.Rota))
	}
	return lines
}

// Allocations renders the session's confirmed assignments, oldest first.
func Allocations(st *store.Store) []string {
	var lines []string
	for _, a := range st.Allocations() {
		lines = append(lines, fmt.Sprintf("Locker %d -> %s (Assigned on %s)",
			a.Locker.ID, a.Person.Name, a.DateAllocated))
	}
	return lines
}
