package main

import (
	"flag"

	"github.com/condo/backend/internal/infrastructure/config"
	"github.com/condo/backend/internal/infrastructure/logger"
	"github.com/condo/backend/internal/infrastructure/persistence"
	"github.com/condo/backend/internal/infrastructure/persistence/models"
	"github.com/condo/backend/internal/infrastructure/scheduler"
	"go.uber.org/zap"
)

// migrate brings the database schema up to date. AutoMigrate covers tables
// and single-column indexes declared on the models; the composite uniqueness
// constraints that span condominium scope are created explicitly below.
func main() {
	var logLevel string
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	log.Info("Running schema migration",
		zap.String("database", cfg.Database.DBName),
		zap.String("host", cfg.Database.Host),
	)

	if err := db.DB.AutoMigrate(
		&models.CondominiumModel{},
		&models.UnidadeModel{},
		&models.UserModel{},
		&models.BoletoModel{},
		&models.AcordoModel{},
		&models.ParcelaModel{},
		&models.EspacoComumModel{},
		&models.ReservaModel{},
		&models.VisitaModel{},
		&models.EncomendaModel{},
		&models.OcorrenciaModel{},
		&models.ComentarioModel{},
		&models.AvisoModel{},
		&models.EnqueteModel{},
		&models.VotoModel{},
		&models.OutboxEntryModel{},
		&scheduler.SchedulerJobRecord{},
	); err != nil {
		log.Fatal("AutoMigrate failed", zap.Error(err))
	}

	// Uniqueness is scoped to the condominium, so these cannot be expressed
	// as single-column index tags on the models.
	compositeIndexes := []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_boletos_condo_number ON boletos (condominium_id, boleto_number)",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_acordos_condo_number ON acordos (condominium_id, acordo_number)",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_unidades_condo_bloco_numero ON unidades (condominium_id, bloco, numero)",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_users_condo_email ON users (condominium_id, email)",
	}
	for _, stmt := range compositeIndexes {
		if err := db.DB.Exec(stmt).Error; err != nil {
			log.Fatal("Failed to create index", zap.String("stmt", stmt), zap.Error(err))
		}
	}

	log.Info("Schema migration completed successfully")
}
