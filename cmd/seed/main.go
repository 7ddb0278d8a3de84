package main

import (
	"context"
	"log"
	"os"
	"time"

	"aircontrol/internal/config"
	"aircontrol/internal/database"
	"aircontrol/internal/domain"
	"aircontrol/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config: ", err)
	}

	db, err := database.Connect(cfg.DB.DSN)
	if err != nil {
		log.Fatal("DB connection failed: ", err)
	}

	contractRepo := repository.NewContractRepository(db)
	engineerRepo := repository.NewEngineerRepository(db)
	modelRepo := repository.NewEquipmentModelRepository(db)
	userRepo := repository.NewUserRepository(db)
	reminderRepo := repository.NewReminderRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	log.Println("Running AutoMigrate...")
	for _, m := range []func() error{
		contractRepo.Migrate,
		engineerRepo.Migrate,
		modelRepo.Migrate,
		userRepo.Migrate,
		reminderRepo.Migrate,
		settingsRepo.Migrate,
	} {
		if err := m(); err != nil {
			log.Fatal("AutoMigrate failed: ", err)
		}
	}

	ctx := context.Background()

	seedAdmin(ctx, userRepo)
	seedEquipmentModels(ctx, modelRepo)
	seedEngineers(ctx, engineerRepo)
	seedDemoContract(ctx, contractRepo)

	log.Println("Seed finished")
}

func seedAdmin(ctx context.Context, users *repository.UserRepository) {
	email := "admin@aircontrol.ua"
	if _, err := users.GetByEmail(ctx, email); err == nil {
		log.Println("Admin already exists, skipping")
		return
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin12345"
	}
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	admin := domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		DisplayName:  "Адміністратор",
	}
	if err := users.Create(ctx, &admin); err != nil {
		log.Fatal("creating admin: ", err)
	}
	log.Printf("Admin created: %s / %s", email, password)
}

func seedEquipmentModels(ctx context.Context, models *repository.EquipmentModelRepository) {
	log.Println("Creating equipment models...")

	catalog := []domain.EquipmentModel{
		{Name: "Liebert", Category: "Кондиціонер"},
		{Name: "Liebert HPC", Category: "Кондиціонер"},
		{Name: "Daikin VRV", Category: "Кондиціонер"},
		{Name: "ITA", Category: "ДБЖ"},
		{Name: "ITA2", Category: "ДБЖ"},
		{Name: "APM", Category: "ДБЖ"},
		{Name: "NXS", Category: "ДБЖ"},
		{Name: "APS", Category: "ДБЖ"},
		{Name: "Cummins", Category: "ДГУ"},
		{Name: "Dalgakiran", Category: "ДГУ"},
		{Name: "Baduin", Category: "ДГУ"},
		{Name: "Dalgakiran DJ 7000 DG-EC", Category: "ДГУ"},
	}

	for _, m := range catalog {
		exists, err := models.ExistsByName(ctx, m.Name)
		if err != nil {
			log.Fatal("checking model: ", err)
		}
		if exists {
			continue
		}
		m.ID = uuid.NewString()
		if err := models.Create(ctx, &m); err != nil {
			log.Fatal("creating model: ", err)
		}
	}
}

func seedEngineers(ctx context.Context, engineers *repository.EngineerRepository) {
	log.Println("Creating engineers...")

	people := []domain.ServiceEngineer{
		{Name: "Петро Коваль", Email: "p.koval@aircontrol.ua", Phone: "+380501234567"},
		{Name: "Іван Шевчук", Email: "i.shevchuk@aircontrol.ua", Phone: "+380671234567"},
		{Name: "Олена Бондар", Email: "o.bondar@aircontrol.ua"},
	}

	for _, e := range people {
		exists, err := engineers.ExistsByEmail(ctx, e.Email)
		if err != nil {
			log.Fatal("checking engineer: ", err)
		}
		if exists {
			continue
		}
		e.ID = uuid.NewString()
		if err := engineers.Create(ctx, &e); err != nil {
			log.Fatal("creating engineer: ", err)
		}
	}
}

func seedDemoContract(ctx context.Context, contracts *repository.ContractRepository) {
	exists, err := contracts.ExistsByNumber(ctx, "Д-1/2025")
	if err != nil {
		log.Fatal("checking contract: ", err)
	}
	if exists {
		log.Println("Demo contract already exists, skipping")
		return
	}
	log.Println("Creating demo contract...")

	now := time.Now()
	start := time.Date(now.Year(), 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(now.Year()+1, 1, 9, 0, 0, 0, 0, time.UTC)
	q2 := time.Date(now.Year(), 4, 15, 0, 0, 0, 0, time.UTC)
	q2end := q2.AddDate(0, 0, 2)
	q3 := time.Date(now.Year(), 7, 15, 0, 0, 0, 0, time.UTC)
	q3end := q3.AddDate(0, 0, 2)

	upsID := uuid.NewString()
	condID := uuid.NewString()

	c := domain.ServiceContract{
		ID:                uuid.NewString(),
		ContractNumber:    "Д-1/2025",
		ObjectName:        "ЦОД Київ",
		Counterparty:      "ТОВ Енергія",
		Address:           "м. Київ, вул. Зелена, 1",
		ContactPerson:     "Сергій Мельник",
		ContactPhone:      "+380441234567",
		ContractStartDate: &start,
		ContractEndDate:   &end,
		ServiceType:       domain.ServiceQuarterly,
		WorkDescription:   "Щоквартальне ТО систем кондиціонування та безперебійного живлення",
		Equipment: []domain.Equipment{
			{ID: condID, Name: "Кондиціонер", Model: "Liebert HPC", SerialNumber: "LB-2019-044"},
			{ID: upsID, Name: "ДБЖ", Model: "ITA2", SerialNumber: "ITA-2021-118"},
		},
		MaintenancePeriods: []domain.MaintenancePeriod{
			{
				ID:                  uuid.NewString(),
				Name:                "ТО 1",
				StartDate:           &q2,
				EndDate:             &q2end,
				Subdivision:         domain.SubdivisionClimate,
				AssignedEngineerIDs: []string{},
				EquipmentIDs:        []string{condID},
				Status:              domain.PeriodScheduled,
			},
			{
				ID:                  uuid.NewString(),
				Name:                "ТО 2",
				StartDate:           &q3,
				EndDate:             &q3end,
				Subdivision:         domain.SubdivisionUPS,
				AssignedEngineerIDs: []string{},
				EquipmentIDs:        []string{upsID},
				Status:              domain.PeriodScheduled,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	c.Recalc(now)

	if err := contracts.Create(ctx, &c); err != nil {
		log.Fatal("creating contract: ", err)
	}
}
