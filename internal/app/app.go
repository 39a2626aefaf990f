// Package app wires configuration, logging, persistence and the application
// services into a ready-to-use object graph.
package app

import (
	"fmt"

	appointmentapp "github.com/contactapp/backend/internal/application/appointment"
	contactapp "github.com/contactapp/backend/internal/application/contact"
	projectapp "github.com/contactapp/backend/internal/application/project"
	taskapp "github.com/contactapp/backend/internal/application/task"
	"github.com/contactapp/backend/internal/domain/appointment"
	"github.com/contactapp/backend/internal/domain/contact"
	"github.com/contactapp/backend/internal/domain/project"
	"github.com/contactapp/backend/internal/domain/shared"
	"github.com/contactapp/backend/internal/domain/task"
	"github.com/contactapp/backend/internal/infrastructure/config"
	"github.com/contactapp/backend/internal/infrastructure/logger"
	"github.com/contactapp/backend/internal/infrastructure/persistence"
	"github.com/contactapp/backend/internal/infrastructure/persistence/memstore"
	"go.uber.org/zap"
)

// App holds the assembled services and the resources backing them.
type App struct {
	Config *config.Config
	Logger *zap.Logger

	Contacts     *contactapp.Service
	Tasks        *taskapp.Service
	Appointments *appointmentapp.Service
	Projects     *projectapp.Service

	db *persistence.Database
}

// New builds the application from configuration. The store backend decides
// whether the services run on the in-memory stores or on PostgreSQL.
func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		return nil, err
	}

	a := &App{Config: cfg, Logger: log}
	clock := shared.SystemClock()

	switch cfg.Store.Backend {
	case config.BackendMemory:
		contacts := memstore.New[*contact.Contact]()
		tasks := memstore.New[*task.Task]()
		appointments := memstore.New[*appointment.Appointment]()
		projects := memstore.New[*project.Project]()

		a.Contacts = contactapp.NewService(contacts, contacts, log)
		a.Tasks = taskapp.NewService(tasks, tasks, clock, log)
		a.Appointments = appointmentapp.NewService(appointments, appointments, log)
		a.Projects = projectapp.NewService(projects, projects, nil, log)

	case config.BackendPostgres:
		gormLogger := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
		db, err := persistence.NewDatabase(&cfg.Database, gormLogger)
		if err != nil {
			return nil, err
		}
		if err := persistence.RegisterTracing(db.DB, cfg.Telemetry, log); err != nil {
			db.Close()
			return nil, err
		}
		if err := db.AutoMigrate(); err != nil {
			db.Close()
			return nil, err
		}
		a.db = db

		contacts := persistence.NewGormContactStore(db.DB)
		tasks := persistence.NewGormTaskStore(db.DB, clock)
		appointments := persistence.NewGormAppointmentStore(db.DB, clock)
		projects := persistence.NewGormProjectStore(db.DB)
		links := persistence.NewGormProjectLinkStore(db.DB)

		a.Contacts = contactapp.NewService(contacts, contacts, log)
		a.Tasks = taskapp.NewService(tasks, tasks, clock, log)
		a.Appointments = appointmentapp.NewService(appointments, appointments, log)
		a.Projects = projectapp.NewService(projects, projects, links, log)

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}

	log.Info("application ready",
		zap.String("env", cfg.App.Env),
		zap.String("store_backend", cfg.Store.Backend),
	)
	return a, nil
}

// Close releases the resources held by the application.
func (a *App) Close() error {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			return err
		}
	}
	_ = a.Logger.Sync()
	return nil
}
