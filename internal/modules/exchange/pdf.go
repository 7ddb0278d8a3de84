package exchange

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"aircontrol/internal/domain"

	"github.com/jung-kurt/gofpdf"
)

// ActGenerator renders the completion act for a finished maintenance
// period. Cyrillic output needs a UTF-8 TTF font, the path comes from
// configuration.
type ActGenerator struct {
	fontName string
	fontPath string
}

func NewActGenerator(fontPath string) *ActGenerator {
	return &ActGenerator{fontName: "ActFont", fontPath: fontPath}
}

// PeriodAct renders the act for a Done period of the contract.
func (s *Service) PeriodAct(ctx context.Context, gen *ActGenerator, contractID, periodID string) ([]byte, error) {
	c, err := s.contracts.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	p := c.Period(periodID)
	if p == nil {
		return nil, ErrPeriodNotFound
	}
	if p.Status != domain.PeriodDone {
		return nil, ErrNotDone
	}

	engineers, err := s.engineers.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(engineers))
	for _, e := range engineers {
		names[e.ID] = e.Name
	}

	return gen.render(c, p, names)
}

func (g *ActGenerator) render(c *domain.ServiceContract, p *domain.MaintenancePeriod, names map[string]string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.AddUTF8Font(g.fontName, "", g.fontPath)
	pdf.AddUTF8Font(g.fontName, "B", g.fontPath)
	if pdf.Err() {
		return nil, fmt.Errorf("loading act font from %s: %v", g.fontPath, pdf.Error())
	}

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, "АКТ виконаних робіт", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Договір № %s", c.ContractNumber), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("%s, %s", c.ObjectName, c.Address), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Замовник", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.MultiCell(0, 5, c.Counterparty, "", "L", false)
	if c.ContactPerson != "" {
		pdf.MultiCell(0, 5, fmt.Sprintf("Контактна особа: %s %s", c.ContactPerson, c.ContactPhone), "", "L", false)
	}
	pdf.Ln(2)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Період робіт", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("%s: з %s по %s (%s)",
		p.Name, safeDate(p.StartDate), safeDate(p.EndDate), p.Subdivision), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Виконавці", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	roster := make([]string, 0, len(p.AssignedEngineerIDs))
	for _, id := range p.AssignedEngineerIDs {
		if name, ok := names[id]; ok {
			roster = append(roster, name)
		} else {
			roster = append(roster, id)
		}
	}
	pdf.MultiCell(0, 5, strings.Join(roster, ", "), "", "L", false)
	pdf.Ln(2)

	covered := coveredEquipment(c, p)
	if len(covered) > 0 {
		pdf.SetFont(g.fontName, "B", 12)
		pdf.CellFormat(0, 8, "Обслуговане обладнання", "", 1, "L", false, 0, "")

		headers := []string{"Найменування", "Модель", "Серійний номер"}
		widths := []float64{80, 55, 45}
		drawRow(pdf, g.fontName, headers, widths, true)
		for _, eq := range covered {
			drawRow(pdf, g.fontName, []string{eq.Name, eq.Model, safeValue(eq.SerialNumber)}, widths, false)
		}
		pdf.Ln(2)
	}

	if c.WorkDescription != "" {
		pdf.SetFont(g.fontName, "B", 12)
		pdf.CellFormat(0, 8, "Опис робіт", "", 1, "L", false, 0, "")
		pdf.SetFont(g.fontName, "", 10)
		pdf.MultiCell(0, 5, c.WorkDescription, "", "L", false)
		pdf.Ln(2)
	}

	pdf.Ln(4)
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, "Замовник: ______________________", "", 1, "L", false, 0, "")
	pdf.Ln(2)
	pdf.CellFormat(0, 6, "Виконавець: ______________________", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func coveredEquipment(c *domain.ServiceContract, p *domain.MaintenancePeriod) []domain.Equipment {
	ids := make(map[string]struct{}, len(p.EquipmentIDs))
	for _, id := range p.EquipmentIDs {
		ids[id] = struct{}{}
	}

	var out []domain.Equipment
	for _, eq := range c.Equipment {
		if _, ok := ids[eq.ID]; ok {
			out = append(out, eq)
		}
	}
	return out
}

func drawRow(pdf *gofpdf.Fpdf, fontName string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 10)
	for i, col := range cols {
		pdf.CellFormat(widths[i], 8, col, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "—"
	}
	return value
}

func safeDate(t *time.Time) string {
	if t == nil {
		return "—"
	}
	return t.Format("02.01.2006")
}
