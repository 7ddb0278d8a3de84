package exchange

import (
	"context"
	"fmt"
	"strings"
	"time"

	"aircontrol/internal/domain"

	"github.com/xuri/excelize/v2"
)

const scheduleSheet = "Графік ТО"

// ScheduleWorkbook renders the maintenance schedule of all non-archived
// contracts as one spreadsheet, one row per period.
func (s *Service) ScheduleWorkbook(ctx context.Context) ([]byte, error) {
	contracts, err := s.contracts.GetAll(ctx, false)
	if err != nil {
		return nil, err
	}
	engineers, err := s.engineers.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(engineers))
	for _, e := range engineers {
		names[e.ID] = e.Name
	}

	file := excelize.NewFile()
	file.SetSheetName("Sheet1", scheduleSheet)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(scheduleSheet, cell, value)
	}

	now := s.now()
	set("A1", "Графік технічного обслуговування")
	set("A2", "Сформовано")
	set("B2", now.Format("02.01.2006 15:04"))
	set("A3", "Договорів")
	set("B3", len(contracts))

	tableRow := 5
	headers := []string{
		"Договір",
		"Об'єкт",
		"Контрагент",
		"Період",
		"Початок",
		"Завершення",
		"Підрозділ",
		"Інженери",
		"Статус",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, tableRow)
		set(cell, header)
	}

	row := tableRow + 1
	for _, c := range contracts {
		for _, p := range c.MaintenancePeriods {
			set(fmt.Sprintf("A%d", row), c.ContractNumber)
			set(fmt.Sprintf("B%d", row), c.ObjectName)
			set(fmt.Sprintf("C%d", row), c.Counterparty)
			set(fmt.Sprintf("D%d", row), p.Name)
			set(fmt.Sprintf("E%d", row), domain.FormatDateUA(p.StartDate))
			set(fmt.Sprintf("F%d", row), domain.FormatDateUA(p.EndDate))
			set(fmt.Sprintf("G%d", row), string(p.Subdivision))
			set(fmt.Sprintf("H%d", row), engineerNames(p.AssignedEngineerIDs, names))
			set(fmt.Sprintf("I%d", row), string(p.Status))
			row++
		}
	}

	_ = file.SetColWidth(scheduleSheet, "A", "A", 16)
	_ = file.SetColWidth(scheduleSheet, "B", "C", 32)
	_ = file.SetColWidth(scheduleSheet, "D", "D", 12)
	_ = file.SetColWidth(scheduleSheet, "E", "F", 14)
	_ = file.SetColWidth(scheduleSheet, "G", "G", 12)
	_ = file.SetColWidth(scheduleSheet, "H", "H", 40)
	_ = file.SetColWidth(scheduleSheet, "I", "I", 14)

	if style, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		start, _ := excelize.CoordinatesToCellName(1, tableRow)
		end, _ := excelize.CoordinatesToCellName(len(headers), tableRow)
		_ = file.SetCellStyle(scheduleSheet, start, end, style)
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func engineerNames(ids []string, names map[string]string) string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := names[id]; ok {
			out = append(out, name)
		} else {
			out = append(out, id)
		}
	}
	return strings.Join(out, ", ")
}

// ScheduleFileName builds the attachment name for a schedule export.
func ScheduleFileName(now time.Time) string {
	return fmt.Sprintf("aircontrol_schedule_%s.xlsx", now.Format("2006-01-02"))
}
