package contracts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aircontrol/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	contracts ContractRepository
	engineers EngineerRepository
	publisher ChangePublisher
	now       func() time.Time
}

func NewService(contracts ContractRepository, engineers EngineerRepository, publisher ChangePublisher) *Service {
	return &Service{
		contracts: contracts,
		engineers: engineers,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *Service) notifyChanged(contractID string) {
	if s.publisher != nil {
		s.publisher.ContractChanged(contractID)
	}
}

func (s *Service) List(ctx context.Context, includeArchived bool) ([]ContractView, error) {
	all, err := s.contracts.GetAll(ctx, includeArchived)
	if err != nil {
		return nil, err
	}

	now := s.now()
	views := make([]ContractView, 0, len(all))
	for _, c := range all {
		views = append(views, ContractView{
			ServiceContract: c,
			DisplayStatus:   c.DisplayStatus(now),
		})
	}
	return views, nil
}

func (s *Service) Get(ctx context.Context, id string) (*ContractView, error) {
	c, err := s.contracts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ContractView{ServiceContract: *c, DisplayStatus: c.DisplayStatus(s.now())}, nil
}

func (s *Service) Create(ctx context.Context, req CreateContractRequest) (*domain.ServiceContract, error) {
	taken, err := s.contracts.ExistsByNumber(ctx, req.ContractNumber)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrContractNumberTaken
	}

	startDate, err := domain.ParseFlexibleDate(req.ContractStartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	endDate, err := domain.ParseFlexibleDate(req.ContractEndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	serviceType := domain.ServiceType(req.ServiceType)
	if serviceType == "" {
		serviceType = domain.ServiceQuarterly
	}

	c := &domain.ServiceContract{
		ID:                uuid.NewString(),
		ContractNumber:    req.ContractNumber,
		ObjectName:        req.ObjectName,
		Counterparty:      req.Counterparty,
		Address:           req.Address,
		Coordinates:       req.Coordinates,
		ContactPerson:     req.ContactPerson,
		ContactPhone:      req.ContactPhone,
		ContractStartDate: startDate,
		ContractEndDate:   endDate,
		ServiceType:       serviceType,
		WorkDescription:   req.WorkDescription,
	}

	for _, e := range req.Equipment {
		c.Equipment = append(c.Equipment, domain.Equipment{
			ID:           uuid.NewString(),
			Name:         e.Name,
			Model:        e.Model,
			SerialNumber: e.SerialNumber,
			GroupNumber:  e.GroupNumber,
		})
	}

	for i, p := range req.Periods {
		period, err := s.buildPeriod(p, i+1, c)
		if err != nil {
			return nil, err
		}
		c.MaintenancePeriods = append(c.MaintenancePeriods, period)
	}

	// A contract always carries at least one period.
	if len(c.MaintenancePeriods) == 0 {
		c.MaintenancePeriods = append(c.MaintenancePeriods, defaultPeriod(1))
	}

	c.Recalc(s.now())

	if err := s.contracts.Create(ctx, c); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrContractNumberTaken
		}
		return nil, err
	}

	s.notifyChanged(c.ID)
	return c, nil
}

func (s *Service) buildPeriod(in PeriodInput, index int, c *domain.ServiceContract) (domain.MaintenancePeriod, error) {
	start, err := domain.ParseFlexibleDate(in.StartDate)
	if err != nil {
		return domain.MaintenancePeriod{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	end, err := domain.ParseFlexibleDate(in.EndDate)
	if err != nil {
		return domain.MaintenancePeriod{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if start != nil && end != nil && start.After(*end) {
		return domain.MaintenancePeriod{}, ErrDatesOutOfOrder
	}

	subdivision := domain.Subdivision(in.Subdivision)
	if in.Subdivision == "" {
		subdivision = domain.SubdivisionClimate
	} else if !subdivision.Valid() {
		return domain.MaintenancePeriod{}, fmt.Errorf("%w: unknown subdivision %q", ErrValidation, in.Subdivision)
	}

	name := in.Name
	if name == "" {
		name = fmt.Sprintf("ТО %d", index)
	}

	for _, eqID := range in.EquipmentIDs {
		if !c.HasEquipment(eqID) {
			return domain.MaintenancePeriod{}, ErrEquipmentNotFound
		}
	}

	return domain.MaintenancePeriod{
		ID:                  uuid.NewString(),
		Name:                name,
		StartDate:           start,
		EndDate:             end,
		Subdivision:         subdivision,
		AssignedEngineerIDs: append([]string{}, in.AssignedEngineerIDs...),
		EquipmentIDs:        append([]string{}, in.EquipmentIDs...),
		Status:              domain.PeriodScheduled,
	}, nil
}

func defaultPeriod(index int) domain.MaintenancePeriod {
	return domain.MaintenancePeriod{
		ID:                  uuid.NewString(),
		Name:                fmt.Sprintf("ТО %d", index),
		Subdivision:         domain.SubdivisionClimate,
		AssignedEngineerIDs: []string{},
		EquipmentIDs:        []string{},
		Status:              domain.PeriodScheduled,
	}
}

func (s *Service) UpdateFields(ctx context.Context, id string, req UpdateContractRequest) (*domain.ServiceContract, error) {
	c, err := s.contracts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ObjectName != nil {
		c.ObjectName = *req.ObjectName
	}
	if req.Counterparty != nil {
		c.Counterparty = *req.Counterparty
	}
	if req.Address != nil {
		c.Address = *req.Address
	}
	if req.Coordinates != nil {
		c.Coordinates = *req.Coordinates
	}
	if req.ContactPerson != nil {
		c.ContactPerson = *req.ContactPerson
	}
	if req.ContactPhone != nil {
		c.ContactPhone = *req.ContactPhone
	}
	if req.ContractStartDate != nil {
		d, err := domain.ParseFlexibleDate(*req.ContractStartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		c.ContractStartDate = d
	}
	if req.ContractEndDate != nil {
		d, err := domain.ParseFlexibleDate(*req.ContractEndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		c.ContractEndDate = d
	}
	if req.ServiceType != nil {
		c.ServiceType = domain.ServiceType(*req.ServiceType)
	}
	if req.WorkDescription != nil {
		c.WorkDescription = *req.WorkDescription
	}

	return s.persist(ctx, c)
}

// persist recomputes the aggregate status, writes the row and broadcasts
// the change. Every mutation funnels through here so the stored status can
// never drift from the derivation rules.
func (s *Service) persist(ctx context.Context, c *domain.ServiceContract) (*domain.ServiceContract, error) {
	c.Recalc(s.now())
	c.UpdatedAt = s.now()
	if err := s.contracts.Update(ctx, c); err != nil {
		return nil, err
	}
	s.notifyChanged(c.ID)
	return c, nil
}

func (s *Service) AddPeriod(ctx context.Context, contractID string) (*domain.ServiceContract, error) {
	c, err := s.contracts.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}

	c.MaintenancePeriods = append(c.MaintenancePeriods, defaultPeriod(len(c.MaintenancePeriods)+1))
	return s.persist(ctx, c)
}

func (s *Service) RemovePeriod(ctx context.Context, contractID, periodID string) (*domain.ServiceContract, error) {
	c, err := s.contracts.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}

	if len(c.MaintenancePeriods) <= 1 {
		return nil, ErrLastPeriod
	}
	if c.Period(periodID) == nil {
		return nil, ErrPeriodNotFound
	}

	kept := c.MaintenancePeriods[:0]
	for _, p := range c.MaintenancePeriods {
		if p.ID != periodID {
			kept = append(kept, p)
		}
	}
	c.MaintenancePeriods = kept

	return s.persist(ctx, c)
}

func (s *Service) EditPeriodDates(ctx context.Context, contractID, periodID string, req EditDatesRequest) (*domain.ServiceContract, error) {
	start, err := domain.ParseFlexibleDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	end, err := domain.ParseFlexibleDate(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if start == nil || end == nil {
		return nil, ErrDatesRequired
	}
	if start.After(*end) {
		return nil, ErrDatesOutOfOrder
	}

	c, err := s.contracts.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	p := c.Period(periodID)
	if p == nil {
		return nil, ErrPeriodNotFound
	}

	p.StartDate = start
	p.EndDate = end

	return s.persist(ctx, c)
}

// ToggleEngineer flips membership of the engineer in the period roster.
func (s *Service) ToggleEngineer(ctx context.Context, contractID, periodID, engineerID string) (*domain.ServiceContract, error) {
	if _, err := s.engineers.GetByID(ctx, engineerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEngineerNotFound
		}
		return nil, err
	}

	c, err := s.contracts.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	p := c.Period(periodID)
	if p == nil {
		return nil, ErrPeriodNotFound
	}

	found := false
	kept := p.AssignedEngineerIDs[:0]
	for _, id := range p.AssignedEngineerIDs {
		if id == engineerID {
			found = true
			continue
		}
		kept = append(kept, id)
	}
	p.AssignedEngineerIDs = kept
	if !found {
		p.AssignedEngineerIDs = append(p.AssignedEngineerIDs, engineerID)
	}

	return s.persist(ctx, c)
}

// ToggleEquipment flips membership of contract-owned equipment in a period.
func (s *Service) ToggleEquipment(ctx context.Context, contractID, periodID, equipmentID string) (*domain.ServiceContract, error) {
	c, err := s.contracts.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if !c.HasEquipment(equipmentID) {
		return nil, ErrEquipmentNotFound
	}
	p := c.Period(periodID)
	if p == nil {
		return nil, ErrPeriodNotFound
	}

	found := false
	kept := p.EquipmentIDs[:0]
	for _, id := range p.EquipmentIDs {
		if id == equipmentID {
			found = true
			continue
		}
		kept = append(kept, id)
	}
	p.EquipmentIDs = kept
	if !found {
		p.EquipmentIDs = append(p.EquipmentIDs, equipmentID)
	}

	return s.persist(ctx, c)
}

// FinalizePeriod closes a period: the actual dates replace the planned ones
// and the final roster replaces the assignment list.
func (s *Service) FinalizePeriod(ctx context.Context, contractID, periodID string, req FinalizeRequest) (*domain.ServiceContract, error) {
	start, err := domain.ParseFlexibleDate(req.ActualStartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	end, err := domain.ParseFlexibleDate(req.ActualEndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if start == nil || end == nil {
		return nil, ErrDatesRequired
	}
	if start.After(*end) {
		return nil, ErrDatesOutOfOrder
	}
	if len(req.EngineerIDs) == 0 {
		return nil, ErrEngineersRequired
	}

	c, err := s.contracts.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	p := c.Period(periodID)
	if p == nil {
		return nil, ErrPeriodNotFound
	}

	p.Status = domain.PeriodDone
	p.StartDate = start
	p.EndDate = end
	p.AssignedEngineerIDs = append([]string{}, req.EngineerIDs...)

	return s.persist(ctx, c)
}

// UnfinalizePeriod reverts a period to the scheduled state, used when a
// completed checkbox is unticked.
func (s *Service) UnfinalizePeriod(ctx context.Context, contractID, periodID string) (*domain.ServiceContract, error) {
	c, err := s.contracts.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	p := c.Period(periodID)
	if p == nil {
		return nil, ErrPeriodNotFound
	}

	p.Status = domain.PeriodScheduled
	return s.persist(ctx, c)
}

// Archive hides a contract from the working views. An active contract with
// a future end date stays visible until its work is done or it expires.
func (s *Service) Archive(ctx context.Context, contractID string) (*domain.ServiceContract, error) {
	c, err := s.contracts.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}

	if c.Status != domain.ContractDone && c.ContractEndDate != nil {
		if !domain.Day(*c.ContractEndDate).Before(domain.Day(s.now())) {
			return nil, ErrArchiveActive
		}
	}

	c.Archived = true
	c.UpdatedAt = s.now()
	if err := s.contracts.Update(ctx, c); err != nil {
		return nil, err
	}
	s.notifyChanged(c.ID)
	return c, nil
}

func (s *Service) Restore(ctx context.Context, contractID string) (*domain.ServiceContract, error) {
	c, err := s.contracts.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}

	c.Archived = false
	c.UpdatedAt = s.now()
	if err := s.contracts.Update(ctx, c); err != nil {
		return nil, err
	}
	s.notifyChanged(c.ID)
	return c, nil
}

func (s *Service) AddEquipment(ctx context.Context, contractID string, req EquipmentInput) (*domain.ServiceContract, error) {
	c, err := s.contracts.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}

	c.Equipment = append(c.Equipment, domain.Equipment{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Model:        req.Model,
		SerialNumber: req.SerialNumber,
		GroupNumber:  req.GroupNumber,
	})

	return s.persist(ctx, c)
}

func (s *Service) UpdateEquipment(ctx context.Context, contractID, equipmentID string, req EquipmentInput) (*domain.ServiceContract, error) {
	c, err := s.contracts.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}

	for i := range c.Equipment {
		if c.Equipment[i].ID == equipmentID {
			c.Equipment[i].Name = req.Name
			c.Equipment[i].Model = req.Model
			c.Equipment[i].SerialNumber = req.SerialNumber
			c.Equipment[i].GroupNumber = req.GroupNumber
			return s.persist(ctx, c)
		}
	}
	return nil, ErrEquipmentNotFound
}

func (s *Service) AddReport(ctx context.Context, contractID, equipmentID string, req ReportInput) (*domain.ServiceContract, error) {
	report, err := s.buildReport(ctx, req)
	if err != nil {
		return nil, err
	}

	c, err := s.contracts.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}

	for i := range c.Equipment {
		if c.Equipment[i].ID == equipmentID {
			report.ID = uuid.NewString()
			c.Equipment[i].Reports = append(c.Equipment[i].Reports, *report)
			return s.persist(ctx, c)
		}
	}
	return nil, ErrEquipmentNotFound
}

// UpdateReport edits a report in place by id. Reports are never removed.
func (s *Service) UpdateReport(ctx context.Context, contractID, equipmentID, reportID string, req ReportInput) (*domain.ServiceContract, error) {
	report, err := s.buildReport(ctx, req)
	if err != nil {
		return nil, err
	}

	c, err := s.contracts.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}

	for i := range c.Equipment {
		if c.Equipment[i].ID != equipmentID {
			continue
		}
		for j := range c.Equipment[i].Reports {
			if c.Equipment[i].Reports[j].ID == reportID {
				report.ID = reportID
				c.Equipment[i].Reports[j] = *report
				return s.persist(ctx, c)
			}
		}
		return nil, ErrReportNotFound
	}
	return nil, ErrEquipmentNotFound
}

func (s *Service) buildReport(ctx context.Context, req ReportInput) (*domain.ServiceReport, error) {
	date, err := domain.ParseFlexibleDate(req.ReportDate)
	if err != nil || date == nil {
		return nil, fmt.Errorf("%w: report date is required", ErrValidation)
	}

	if _, err := s.engineers.GetByID(ctx, req.EngineerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEngineerNotFound
		}
		return nil, err
	}

	for _, part := range req.PartsUsed {
		if part.Name == "" || part.Quantity <= 0 {
			return nil, fmt.Errorf("%w: part entries need a name and a positive quantity", ErrValidation)
		}
	}

	return &domain.ServiceReport{
		ReportDate:      date,
		EngineerID:      req.EngineerID,
		WorkDescription: req.WorkDescription,
		PartsUsed:       req.PartsUsed,
	}, nil
}
