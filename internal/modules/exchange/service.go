package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"aircontrol/internal/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Service struct {
	contracts ContractRepository
	engineers EngineerRepository
	models    EquipmentModelRepository
	log       zerolog.Logger
	now       func() time.Time
}

func NewService(contracts ContractRepository, engineers EngineerRepository, models EquipmentModelRepository, log zerolog.Logger) *Service {
	return &Service{
		contracts: contracts,
		engineers: engineers,
		models:    models,
		log:       log,
		now:       time.Now,
	}
}

// Export returns the payload for one export kind: contracts, engineers,
// models, or all.
func (s *Service) Export(ctx context.Context, kind string) (any, error) {
	switch kind {
	case "contracts":
		return s.contracts.GetAll(ctx, true)
	case "engineers":
		return s.engineers.GetAll(ctx)
	case "models":
		return s.models.GetAll(ctx)
	case "all", "":
		contracts, err := s.contracts.GetAll(ctx, true)
		if err != nil {
			return nil, err
		}
		engineers, err := s.engineers.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		models, err := s.models.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		return ExportBundle{Contracts: contracts, Engineers: engineers, EquipmentModels: models}, nil
	default:
		return nil, ErrUnknownKind
	}
}

// Import accepts either a bare array (shape sniffed from the first
// element) or a keyed {contracts, engineers, equipmentModels} object.
// Imports are additive: entries matching an existing contract number,
// engineer email, or model name (case-insensitive) are skipped, ids are
// regenerated, dates normalized.
func (s *Service) Import(ctx context.Context, raw []byte) (*ImportResult, error) {
	bundle, err := sniffPayload(raw)
	if err != nil {
		return nil, err
	}
	if len(bundle.Contracts) == 0 && len(bundle.Engineers) == 0 && len(bundle.EquipmentModels) == 0 {
		return nil, ErrBadPayload
	}

	result := &ImportResult{}

	if len(bundle.EquipmentModels) > 0 {
		if err := s.importModels(ctx, bundle.EquipmentModels, result); err != nil {
			return nil, err
		}
	}
	if len(bundle.Engineers) > 0 {
		if err := s.importEngineers(ctx, bundle.Engineers, result); err != nil {
			return nil, err
		}
	}
	if len(bundle.Contracts) > 0 {
		if err := s.importContracts(ctx, bundle.Contracts, result); err != nil {
			return nil, err
		}
	}

	s.log.Info().
		Int("contracts", result.ContractsAdded).
		Int("engineers", result.EngineersAdded).
		Int("models", result.ModelsAdded).
		Int("skipped", result.Skipped).
		Msg("import finished")
	return result, nil
}

// sniffPayload mirrors the file picker behavior: a keyed object is taken
// as-is, an array is classified by its first element's fields.
func sniffPayload(raw []byte) (*importBundle, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return nil, ErrBadPayload
	}

	if strings.HasPrefix(trimmed, "{") {
		var bundle importBundle
		if err := json.Unmarshal(raw, &bundle); err != nil {
			return nil, ErrBadPayload
		}
		return &bundle, nil
	}

	if !strings.HasPrefix(trimmed, "[") {
		return nil, ErrBadPayload
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, ErrBadPayload
	}
	if len(items) == 0 {
		return nil, ErrBadPayload
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(items[0], &probe); err != nil {
		return nil, ErrBadPayload
	}

	bundle := &importBundle{}
	switch {
	case hasKey(probe, "contractNumber"):
		if err := json.Unmarshal(raw, &bundle.Contracts); err != nil {
			return nil, ErrBadPayload
		}
	case hasKey(probe, "email") && hasKey(probe, "name"):
		if err := json.Unmarshal(raw, &bundle.Engineers); err != nil {
			return nil, ErrBadPayload
		}
	case hasKey(probe, "category") && hasKey(probe, "name"):
		if err := json.Unmarshal(raw, &bundle.EquipmentModels); err != nil {
			return nil, ErrBadPayload
		}
	default:
		return nil, ErrBadPayload
	}
	return bundle, nil
}

func hasKey(m map[string]json.RawMessage, key string) bool {
	_, ok := m[key]
	return ok
}

func (s *Service) importModels(ctx context.Context, models []importModel, result *ImportResult) error {
	existing, err := s.models.GetAll(ctx)
	if err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(existing))
	for _, m := range existing {
		seen[strings.ToLower(m.Name)] = struct{}{}
	}

	for _, in := range models {
		name := strings.TrimSpace(in.Name)
		key := strings.ToLower(name)
		if name == "" {
			result.Skipped++
			continue
		}
		if _, dup := seen[key]; dup {
			result.Skipped++
			continue
		}

		if err := s.models.Create(ctx, &domain.EquipmentModel{
			ID:       uuid.NewString(),
			Name:     name,
			Category: strings.TrimSpace(in.Category),
		}); err != nil {
			return err
		}
		seen[key] = struct{}{}
		result.ModelsAdded++
	}
	return nil
}

func (s *Service) importEngineers(ctx context.Context, engineers []importEngineer, result *ImportResult) error {
	existing, err := s.engineers.GetAll(ctx)
	if err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(existing))
	for _, e := range existing {
		seen[strings.ToLower(e.Email)] = struct{}{}
	}

	for _, in := range engineers {
		email := strings.TrimSpace(in.Email)
		key := strings.ToLower(email)
		if !domain.ValidEmail(email) || strings.TrimSpace(in.Name) == "" {
			result.Skipped++
			continue
		}
		if _, dup := seen[key]; dup {
			result.Skipped++
			continue
		}

		if err := s.engineers.Create(ctx, &domain.ServiceEngineer{
			ID:    uuid.NewString(),
			Name:  strings.TrimSpace(in.Name),
			Email: email,
			Phone: in.Phone,
		}); err != nil {
			return err
		}
		seen[key] = struct{}{}
		result.EngineersAdded++
	}
	return nil
}

func (s *Service) importContracts(ctx context.Context, contracts []importContract, result *ImportResult) error {
	existing, err := s.contracts.GetAll(ctx, true)
	if err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(existing))
	for _, c := range existing {
		seen[strings.ToLower(c.ContractNumber)] = struct{}{}
	}

	now := s.now()
	for _, in := range contracts {
		number := strings.TrimSpace(in.ContractNumber)
		key := strings.ToLower(number)
		if number == "" {
			result.Skipped++
			continue
		}
		if _, dup := seen[key]; dup {
			result.Skipped++
			continue
		}

		c := buildContract(in, now)
		if err := s.contracts.Create(ctx, c); err != nil {
			return err
		}
		seen[key] = struct{}{}
		result.ContractsAdded++
	}
	return nil
}

// buildContract rebuilds a contract from an import record with fresh ids.
// Period equipment references are remapped to the regenerated equipment
// ids; engineer rosters carry over verbatim and may dangle, imported
// engineers get new ids too.
func buildContract(in importContract, now time.Time) *domain.ServiceContract {
	c := &domain.ServiceContract{
		ID:                uuid.NewString(),
		ContractNumber:    strings.TrimSpace(in.ContractNumber),
		ObjectName:        in.ObjectName,
		Counterparty:      in.Counterparty,
		Address:           in.Address,
		Coordinates:       in.Coordinates,
		ContactPerson:     in.ContactPerson,
		ContactPhone:      in.ContactPhone,
		ContractStartDate: in.ContractStartDate.t,
		ContractEndDate:   in.ContractEndDate.t,
		ServiceType:       domain.ServiceType(in.ServiceType),
		WorkDescription:   in.WorkDescription,
		Archived:          in.Archived,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if c.ServiceType == "" {
		c.ServiceType = domain.ServiceQuarterly
	}

	equipmentIDs := make(map[string]string, len(in.Equipment))
	for _, eq := range in.Equipment {
		newID := uuid.NewString()
		if eq.ID != "" {
			equipmentIDs[eq.ID] = newID
		}

		out := domain.Equipment{
			ID:           newID,
			Name:         eq.Name,
			Model:        eq.Model,
			SerialNumber: eq.SerialNumber,
			GroupNumber:  eq.GroupNumber,
		}
		for _, r := range eq.Reports {
			parts := make([]domain.PartUsed, 0, len(r.PartsUsed))
			for _, p := range r.PartsUsed {
				parts = append(parts, domain.PartUsed{Name: p.Name, Quantity: p.Quantity})
			}
			out.Reports = append(out.Reports, domain.ServiceReport{
				ID:              uuid.NewString(),
				ReportDate:      r.ReportDate.t,
				EngineerID:      r.EngineerID,
				WorkDescription: r.WorkDescription,
				PartsUsed:       parts,
			})
		}
		c.Equipment = append(c.Equipment, out)
	}

	for i, p := range in.MaintenancePeriods {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			name = defaultPeriodName(i + 1)
		}
		sub := domain.Subdivision(p.Subdivision)
		if !sub.Valid() {
			sub = domain.SubdivisionClimate
		}
		status := domain.PeriodStatus(p.Status)
		if status != domain.PeriodDone {
			status = domain.PeriodScheduled
		}

		var equipment []string
		for _, oldID := range p.EquipmentIDs {
			if newID, ok := equipmentIDs[oldID]; ok {
				equipment = append(equipment, newID)
			}
		}

		c.MaintenancePeriods = append(c.MaintenancePeriods, domain.MaintenancePeriod{
			ID:                  uuid.NewString(),
			Name:                name,
			StartDate:           p.StartDate.t,
			EndDate:             p.EndDate.t,
			Subdivision:         sub,
			AssignedEngineerIDs: append([]string{}, p.AssignedEngineerIDs...),
			EquipmentIDs:        equipment,
			Status:              status,
		})
	}

	if len(c.MaintenancePeriods) == 0 {
		c.MaintenancePeriods = append(c.MaintenancePeriods, domain.MaintenancePeriod{
			ID:                  uuid.NewString(),
			Name:                defaultPeriodName(1),
			Subdivision:         domain.SubdivisionClimate,
			AssignedEngineerIDs: []string{},
			EquipmentIDs:        []string{},
			Status:              domain.PeriodScheduled,
		})
	}

	c.Recalc(now)
	return c
}

func defaultPeriodName(index int) string {
	return fmt.Sprintf("ТО %d", index)
}
