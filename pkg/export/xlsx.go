// Package export writes the session's three lists to an xlsx workbook so
// an operator can hand the current state to whoever asks for it.
package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jakechorley/lockerdesk/pkg/core/model"
	"github.com/jakechorley/lockerdesk/pkg/core/store"
)

var lockerHeader = []string{"ID", "Area", "Type", "Status", "Assigned To", "End Date"}
var personHeader = []string{"ID", "Name", "Start Date", "End Date", "Email", "Rota"}
var allocationHeader = []string{"Locker ID", "Person ID", "Person Name", "Date Allocated"}

// Workbook builds a workbook with Lockers, People and Allocations sheets
// from the store's current contents. Locker status is classified at now.
func Workbook(st *store.Store, now time.Time) (*excelize.File, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	var lockerRows [][]any
	for _, l := range st.Lockers() {
		assignedTo := ""
		if l.UserID != nil {
			assignedTo = fmt.Sprintf("%d", *l.UserID)
		}
		endDate := ""
		if l.EndDate != nil {
			endDate = l.EndDate.String()
		}
		lockerRows = append(lockerRows, []any{l.ID, l.Area, l.Type, string(model.Classify(*l, now)), assignedTo, endDate})
	}

	var personRows [][]any
	for _, p := range st.People() {
		personRows = append(personRows, []any{p.ID, p.Name, p.StartDate.String(), p.EndDate.String(), p.Email, p.Rota})
	}

	var allocationRows [][]any
	for _, a := range st.Allocations() {
		allocationRows = append(allocationRows, []any{a.Locker.ID, a.Person.ID, a.Person.Name, a.DateAllocated.String()})
	}

	sheets := []struct {
		name   string
		header []string
		rows   [][]any
	}{
		{"Lockers", lockerHeader, lockerRows},
		{"People", personHeader, personRows},
		{"Allocations", allocationHeader, allocationRows},
	}

	for i, sheet := range sheets {
		index, err := f.NewSheet(sheet.name)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create sheet %s: %w", sheet.name, err)
		}
		if i == 0 {
			f.SetActiveSheet(index)
		}
		if err := writeSheet(f, sheet.name, sheet.header, sheet.rows, headerStyle); err != nil {
			f.Close()
			return nil, err
		}
	}
	f.DeleteSheet("Sheet1")

	return f, nil
}

// WriteFile builds the workbook and saves it at path.
func WriteFile(st *store.Store, now time.Time, path string) error {
	f, err := Workbook(st, now)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]any, headerStyle int) error {
	for col, title := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to locate header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	endCell, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return fmt.Errorf("failed to locate header range: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", endCell, headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return fmt.Errorf("failed to locate cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to write row %d of %s: %w", r+1, sheet, err)
			}
		}
	}
	return nil
}
