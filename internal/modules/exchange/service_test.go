package exchange

import (
	"bytes"
	"context"
	"testing"
	"time"

	"aircontrol/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type memContracts struct {
	existing []domain.ServiceContract
	created  []*domain.ServiceContract
}

func (m *memContracts) Create(_ context.Context, c *domain.ServiceContract) error {
	m.created = append(m.created, c)
	return nil
}

func (m *memContracts) GetAll(_ context.Context, _ bool) ([]domain.ServiceContract, error) {
	return m.existing, nil
}

func (m *memContracts) GetByID(_ context.Context, id string) (*domain.ServiceContract, error) {
	for i := range m.existing {
		if m.existing[i].ID == id {
			return &m.existing[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type memEngineers struct {
	existing []domain.ServiceEngineer
	created  []*domain.ServiceEngineer
}

func (m *memEngineers) Create(_ context.Context, e *domain.ServiceEngineer) error {
	m.created = append(m.created, e)
	return nil
}

func (m *memEngineers) GetAll(_ context.Context) ([]domain.ServiceEngineer, error) {
	return m.existing, nil
}

type memModels struct {
	existing []domain.EquipmentModel
	created  []*domain.EquipmentModel
}

func (m *memModels) Create(_ context.Context, mod *domain.EquipmentModel) error {
	m.created = append(m.created, mod)
	return nil
}

func (m *memModels) GetAll(_ context.Context) ([]domain.EquipmentModel, error) {
	return m.existing, nil
}

func newTestService(contracts *memContracts, engineers *memEngineers, models *memModels) *Service {
	svc := NewService(contracts, engineers, models, zerolog.Nop())
	svc.now = func() time.Time { return time.Date(2025, 6, 5, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestImportSniffsContractArray(t *testing.T) {
	contracts := &memContracts{}
	svc := newTestService(contracts, &memEngineers{}, &memModels{})

	payload := `[
	  {
	    "id": "old-id",
	    "contractNumber": "Д-7/2025",
	    "objectName": "ЦОД Київ",
	    "counterparty": "ТОВ Енергія",
	    "address": "вул. Зелена, 1",
	    "contractEndDate": "2026-03-01",
	    "maintenancePeriods": [
	      {"id": "old-p", "name": "ТО 1", "startDate": "10.06.2025", "endDate": 1750118400000, "subdivision": "ДБЖ", "status": "Заплановано", "assignedEngineerIds": [], "equipmentIds": ["old-eq"]}
	    ],
	    "equipment": [
	      {"id": "old-eq", "name": "UPS", "model": "Eaton 93PM", "serialNumber": "SN1"}
	    ]
	  }
	]`

	result, err := svc.Import(context.Background(), []byte(payload))
	require.NoError(t, err)
	assert.Equal(t, 1, result.ContractsAdded)
	require.Len(t, contracts.created, 1)

	c := contracts.created[0]
	assert.NotEqual(t, "old-id", c.ID)
	require.Len(t, c.MaintenancePeriods, 1)
	p := c.MaintenancePeriods[0]
	assert.NotEqual(t, "old-p", p.ID)
	assert.Equal(t, "2025-06-10", domain.FormatDate(p.StartDate))
	// Epoch millis end date lands on 2025-06-17.
	assert.Equal(t, "2025-06-17", domain.FormatDate(p.EndDate))
	// Equipment reference is remapped to the regenerated id.
	require.Len(t, c.Equipment, 1)
	require.Len(t, p.EquipmentIDs, 1)
	assert.Equal(t, c.Equipment[0].ID, p.EquipmentIDs[0])
	assert.NotEqual(t, "old-eq", p.EquipmentIDs[0])
	// Derivation runs at import, end date in 2026 with a scheduled period.
	assert.Equal(t, domain.ContractScheduled, c.Status)
}

func TestImportSkipsExistingContractNumbers(t *testing.T) {
	contracts := &memContracts{existing: []domain.ServiceContract{{ID: "c1", ContractNumber: "Д-7/2025"}}}
	svc := newTestService(contracts, &memEngineers{}, &memModels{})

	payload := `[
	  {"contractNumber": "д-7/2025", "objectName": "дубль"},
	  {"contractNumber": "Д-8/2025", "objectName": "новий"}
	]`

	result, err := svc.Import(context.Background(), []byte(payload))
	require.NoError(t, err)
	assert.Equal(t, 1, result.ContractsAdded)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, contracts.created, 1)
	assert.Equal(t, "Д-8/2025", contracts.created[0].ContractNumber)
	// A contract saves with at least one period even when the file has none.
	assert.Len(t, contracts.created[0].MaintenancePeriods, 1)
}

func TestImportSniffsEngineerArray(t *testing.T) {
	engineers := &memEngineers{existing: []domain.ServiceEngineer{{ID: "e1", Email: "p.koval@example.com"}}}
	svc := newTestService(&memContracts{}, engineers, &memModels{})

	payload := `[
	  {"id": "x", "name": "Петро Коваль", "email": "P.Koval@example.com"},
	  {"id": "y", "name": "Іван Шевчук", "email": "i.shevchuk@example.com", "phone": "+380501234567"},
	  {"id": "z", "name": "", "email": "broken@example.com"}
	]`

	result, err := svc.Import(context.Background(), []byte(payload))
	require.NoError(t, err)
	assert.Equal(t, 1, result.EngineersAdded)
	assert.Equal(t, 2, result.Skipped)
	require.Len(t, engineers.created, 1)
	assert.Equal(t, "Іван Шевчук", engineers.created[0].Name)
	assert.NotEqual(t, "y", engineers.created[0].ID)
}

func TestImportSniffsModelArrayAndKeyedObject(t *testing.T) {
	models := &memModels{existing: []domain.EquipmentModel{{ID: "m1", Name: "Daikin VRV"}}}
	svc := newTestService(&memContracts{}, &memEngineers{}, models)

	result, err := svc.Import(context.Background(), []byte(`[
	  {"name": "daikin vrv", "category": "Кондиціонер"},
	  {"name": "FG Wilson P150", "category": "ДГУ"}
	]`))
	require.NoError(t, err)
	assert.Equal(t, 1, result.ModelsAdded)
	assert.Equal(t, 1, result.Skipped)

	keyed := &memModels{}
	svc2 := newTestService(&memContracts{}, &memEngineers{}, keyed)
	result, err = svc2.Import(context.Background(), []byte(`{"equipmentModels": [{"name": "APC Galaxy", "category": "ДБЖ"}]}`))
	require.NoError(t, err)
	assert.Equal(t, 1, result.ModelsAdded)
}

func TestImportRejectsUnrecognizedPayload(t *testing.T) {
	svc := newTestService(&memContracts{}, &memEngineers{}, &memModels{})

	for _, payload := range []string{"", "[]", `[{"foo": 1}]`, `{"other": true}`, "not json"} {
		_, err := svc.Import(context.Background(), []byte(payload))
		assert.ErrorIs(t, err, ErrBadPayload, "payload: %s", payload)
	}
}

func TestImportToleratesBadDates(t *testing.T) {
	contracts := &memContracts{}
	svc := newTestService(contracts, &memEngineers{}, &memModels{})

	payload := `[{"contractNumber": "Д-9/2025", "contractEndDate": "колись", "maintenancePeriods": [{"name": "ТО 1", "startDate": "31.02.2025", "subdivision": "КОНД", "status": "Заплановано"}]}]`

	result, err := svc.Import(context.Background(), []byte(payload))
	require.NoError(t, err)
	assert.Equal(t, 1, result.ContractsAdded)
	c := contracts.created[0]
	assert.Nil(t, c.ContractEndDate)
	assert.Nil(t, c.MaintenancePeriods[0].StartDate)
}

func TestExportAllBundlesCollections(t *testing.T) {
	svc := newTestService(
		&memContracts{existing: []domain.ServiceContract{{ID: "c1"}}},
		&memEngineers{existing: []domain.ServiceEngineer{{ID: "e1"}}},
		&memModels{existing: []domain.EquipmentModel{{ID: "m1"}}},
	)

	payload, err := svc.Export(context.Background(), "all")
	require.NoError(t, err)
	bundle, ok := payload.(ExportBundle)
	require.True(t, ok)
	assert.Len(t, bundle.Contracts, 1)
	assert.Len(t, bundle.Engineers, 1)
	assert.Len(t, bundle.EquipmentModels, 1)

	_, err = svc.Export(context.Background(), "nonsense")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestScheduleWorkbookRows(t *testing.T) {
	start := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	svc := newTestService(
		&memContracts{existing: []domain.ServiceContract{
			{
				ID:             "c1",
				ContractNumber: "Д-1/2025",
				ObjectName:     "ЦОД Київ",
				Counterparty:   "ТОВ Енергія",
				MaintenancePeriods: []domain.MaintenancePeriod{
					{ID: "p1", Name: "ТО 1", StartDate: &start, Subdivision: domain.SubdivisionClimate, Status: domain.PeriodScheduled, AssignedEngineerIDs: []string{"e1"}},
				},
			},
		}},
		&memEngineers{existing: []domain.ServiceEngineer{{ID: "e1", Name: "Петро Коваль"}}},
		&memModels{},
	)

	data, err := svc.ScheduleWorkbook(context.Background())
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer file.Close()

	got, err := file.GetCellValue(scheduleSheet, "A6")
	require.NoError(t, err)
	assert.Equal(t, "Д-1/2025", got)

	got, err = file.GetCellValue(scheduleSheet, "E6")
	require.NoError(t, err)
	assert.Equal(t, "10.06.2025", got)

	got, err = file.GetCellValue(scheduleSheet, "H6")
	require.NoError(t, err)
	assert.Equal(t, "Петро Коваль", got)
}
