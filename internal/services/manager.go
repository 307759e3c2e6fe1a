package services

import (
	"log/slog"

	"github.com/acadegrade/result-service/internal/cache"
	"github.com/acadegrade/result-service/internal/events"
	"github.com/acadegrade/result-service/internal/mailer"
	"github.com/acadegrade/result-service/internal/repositories"
	"github.com/acadegrade/result-service/internal/validator"
)

// ServiceManager bundles the service set for handler wiring.
type ServiceManager interface {
	Owner() OwnerService
	Sheet() SheetService
	Course() CourseService
	Export() ExportService
	Contact() ContactService
}

type serviceManager struct {
	owner   OwnerService
	sheet   SheetService
	course  CourseService
	export  ExportService
	contact ContactService
}

// ManagerConfig carries the shared dependencies for service construction.
type ManagerConfig struct {
	Repo             repositories.Repository
	Logger           *slog.Logger
	Validator        *validator.Validator
	Cache            cache.CacheService
	Publisher        events.EventPublisher
	Mailer           mailer.Mailer
	ContactRecipient string
}

func NewServiceManager(cfg ManagerConfig) ServiceManager {
	owner := NewOwnerService(cfg.Repo, cfg.Logger, cfg.Validator, cfg.Cache, cfg.Publisher)
	return &serviceManager{
		owner:   owner,
		sheet:   NewSheetService(cfg.Repo, owner, cfg.Logger, cfg.Validator, cfg.Publisher),
		course:  NewCourseService(cfg.Repo, cfg.Logger, cfg.Validator),
		export:  NewExportService(cfg.Repo, cfg.Logger, cfg.Publisher),
		contact: NewContactService(cfg.Repo, cfg.Logger, cfg.Validator, cfg.Mailer, cfg.ContactRecipient, cfg.Publisher),
	}
}

func (m *serviceManager) Owner() OwnerService     { return m.owner }
func (m *serviceManager) Sheet() SheetService     { return m.sheet }
func (m *serviceManager) Course() CourseService   { return m.course }
func (m *serviceManager) Export() ExportService   { return m.export }
func (m *serviceManager) Contact() ContactService { return m.contact }
