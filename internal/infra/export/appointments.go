package export

import (
	"io"
	"time"

	"weekend-booking/internal/pkg/errs"
	"weekend-booking/internal/usecase/queries"

	"github.com/xuri/excelize/v2"
)

const (
	SheetAppointments = "Appointments"
	ContentType       = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	timestampLayout = "2006-01-02 15:04"
)

// AppointmentColumns is the header row, in listing order.
var AppointmentColumns = []string{
	"ID", "Name", "Email", "Phone", "Date", "Time Slot", "Status", "Message", "Created At", "Updated At",
}

var columnWidths = []float64{38, 24, 30, 18, 30, 16, 12, 40, 18, 18}

// WriteAppointments renders items as a single-sheet workbook. Timestamps are
// shown in loc.
func WriteAppointments(w io.Writer, items []*queries.AppointmentView, loc *time.Location) error {
	if loc == nil {
		loc = time.UTC
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetAppointments); err != nil {
		return errs.Wrap(err, "rename sheet")
	}

	header := make([]interface{}, len(AppointmentColumns))
	for i, col := range AppointmentColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(SheetAppointments, "A1", &header); err != nil {
		return errs.Wrap(err, "write header")
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errs.Wrap(err, "create header style")
	}
	last, _ := excelize.CoordinatesToCellName(len(AppointmentColumns), 1)
	if err := f.SetCellStyle(SheetAppointments, "A1", last, bold); err != nil {
		return errs.Wrap(err, "style header")
	}

	for i, width := range columnWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(SheetAppointments, col, col, width)
	}

	for i, a := range items {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			a.ID.String(),
			a.Name,
			a.Email,
			a.Phone,
			a.DisplayDate,
			a.TimeSlot,
			a.Status,
			a.Message,
			a.CreatedAt.In(loc).Format(timestampLayout),
			a.UpdatedAt.In(loc).Format(timestampLayout),
		}
		if err := f.SetSheetRow(SheetAppointments, cell, &row); err != nil {
			return errs.Wrapf(err, "write row %d", i+2)
		}
	}

	if err := f.SetPanes(SheetAppointments, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return errs.Wrap(err, "freeze header")
	}

	if err := f.Write(w); err != nil {
		return errs.Wrap(err, "write workbook")
	}
	return nil
}
