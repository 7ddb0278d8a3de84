package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"aircontrol/internal/domain"
	"aircontrol/internal/llm"

	"github.com/rs/zerolog"
)

var monthRefRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

type Service struct {
	oracle llm.Client
	log    zerolog.Logger
}

func NewService(oracle llm.Client, log zerolog.Logger) *Service {
	return &Service{oracle: oracle, log: log}
}

// Reschedule asks the oracle for alternative start dates for one period.
// The oracle's output is untrusted: suggestions with unparseable dates or
// a foreign period id are dropped, dates outside the period window are
// kept but flagged.
func (s *Service) Reschedule(ctx context.Context, req RescheduleRequest) (*RescheduleResponse, error) {
	target, _ := json.MarshalIndent(req.PeriodToReschedule, "", "  ")
	others, _ := json.MarshalIndent(req.OtherScheduledPeriods, "", "  ")

	history := req.ServiceHistory
	if history == "" {
		history = "[]"
	}
	availability := req.EngineerAvailability
	if availability == "" {
		availability = "[]"
	}

	prompt := fmt.Sprintf(`You are an assistant that analyzes maintenance schedules and suggests optimal rescheduling for a specific task.

The maintenance period to reschedule (JSON):
%s

Other currently scheduled maintenance periods (JSON):
%s

Service history for the objects (JSON):
%s

Availability of service engineers (JSON):
%s

Propose a few optimal alternative start dates for the given maintenance period. Avoid conflicts with the other tasks and keep engineer load balanced.

Respond with a JSON object of the form:
{"suggestions": [{"newDate": "YYYY-MM-DD", "reason": "<why this date>", "originalPeriodId": "<id of periodToReschedule>"}]}`,
		target, others, history, availability)

	resp, err := s.oracle.Generate(ctx, llm.GenerateRequest{UserPrompt: prompt})
	if err != nil {
		return nil, err
	}

	parsed, err := llm.ExtractJSON[RescheduleResponse](resp.Text, nil)
	if err != nil {
		return nil, err
	}

	winStart, _ := domain.ParseFlexibleDate(req.PeriodToReschedule.StartDate)
	winEnd, _ := domain.ParseFlexibleDate(req.PeriodToReschedule.EndDate)

	kept := make([]Suggestion, 0, len(parsed.Suggestions))
	for _, sug := range parsed.Suggestions {
		d, err := domain.ParseFlexibleDate(sug.NewDate)
		if err != nil || d == nil {
			s.log.Warn().Str("newDate", sug.NewDate).Msg("dropping suggestion with unparseable date")
			continue
		}
		if sug.OriginalPeriodID != req.PeriodToReschedule.ID {
			s.log.Warn().Str("periodId", sug.OriginalPeriodID).Msg("dropping suggestion for foreign period")
			continue
		}
		sug.NewDate = domain.FormatDate(d)
		sug.OutsideWindow = (winStart != nil && d.Before(*winStart)) || (winEnd != nil && d.After(*winEnd))
		kept = append(kept, sug)
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("%w: %w", llm.ErrInvalidOutput, ErrNoUsableOutput)
	}

	return &RescheduleResponse{Suggestions: kept}, nil
}

// PlanMonth asks the oracle for one or two dates per period, spread across
// the referenced month. Dates the oracle places outside a period's own
// window are kept but flagged, unparseable dates are dropped.
func (s *Service) PlanMonth(ctx context.Context, req PlanMonthRequest) (*PlanMonthResponse, error) {
	if len(req.Periods) == 0 {
		return nil, ErrNoPeriods
	}
	if req.MonthRef != "" && !monthRefRe.MatchString(req.MonthRef) {
		return nil, ErrBadMonthRef
	}

	payload, _ := json.MarshalIndent(req.Periods, "", "  ")

	var b strings.Builder
	b.WriteString("У тебе є список періодів ТО. Для кожного періоду доступні поля:\n")
	b.WriteString("- id, name, startDate, endDate, subdivision, assignedEngineerIds, equipmentDetails, contractName, address\n\n")
	b.WriteString("Завдання:\n")
	if req.MonthRef != "" {
		fmt.Fprintf(&b, "1) Розподілити всі періоди рівномірно по місяцю %s.\n", req.MonthRef)
	} else {
		b.WriteString("1) Розподілити всі періоди рівномірно по місяцю сьогоднішньої дати.\n")
	}
	b.WriteString("2) Для кожного періоду запропонувати 1 конкретну дату (формат DD.MM.YYYY), яка входить у період [startDate - endDate].\n")
	b.WriteString("3) Мінімізувати накладання дат (бажано не більше 2 робіт в один день).\n")
	b.WriteString("4) Якщо період має тільки одну можливу дату - використати її.\n")
	b.WriteString("5) Повернути JSON масив об'єктів у наступному форматі:\n")
	b.WriteString(`[{"id": "<id періоду>", "name": "<назва>", "suggestedDates": ["DD.MM.YYYY"], "reason": "<коротке пояснення вибору>"}]`)
	b.WriteString("\n\nДані періодів:\n")
	b.Write(payload)

	resp, err := s.oracle.Generate(ctx, llm.GenerateRequest{UserPrompt: b.String()})
	if err != nil {
		return nil, err
	}

	items, err := llm.ExtractJSONArray[[]PlanItem](resp.Text, nil)
	if err != nil {
		return nil, err
	}

	windows := make(map[string][2]*time.Time, len(req.Periods))
	for _, p := range req.Periods {
		start, _ := domain.ParseFlexibleDate(p.StartDate)
		end, _ := domain.ParseFlexibleDate(p.EndDate)
		windows[p.ID] = [2]*time.Time{start, end}
	}

	kept := make([]PlanItem, 0, len(items))
	for _, item := range items {
		w, known := windows[item.ID]
		if !known {
			s.log.Warn().Str("periodId", item.ID).Msg("dropping plan item for unknown period")
			continue
		}

		dates := make([]string, 0, len(item.SuggestedDates))
		var outside []string
		for _, raw := range item.SuggestedDates {
			d, err := domain.ParseFlexibleDate(raw)
			if err != nil || d == nil {
				s.log.Warn().Str("periodId", item.ID).Str("date", raw).Msg("dropping unparseable suggested date")
				continue
			}
			ua := domain.FormatDateUA(d)
			dates = append(dates, ua)
			if (w[0] != nil && d.Before(*w[0])) || (w[1] != nil && d.After(*w[1])) {
				outside = append(outside, ua)
			}
		}
		if len(dates) == 0 {
			continue
		}

		item.SuggestedDates = dates
		item.OutsideWindow = outside
		kept = append(kept, item)
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("%w: %w", llm.ErrInvalidOutput, ErrNoUsableOutput)
	}

	return &PlanMonthResponse{OK: true, Data: kept, Raw: resp.Text}, nil
}
