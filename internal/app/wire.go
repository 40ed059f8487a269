//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	filestoreGateway "yardbook/internal/gateway/http/filestore"
	mailerGateway "yardbook/internal/gateway/http/mailer"
	"yardbook/internal/handlers/rest/availability_post"
	"yardbook/internal/handlers/rest/booking_get"
	"yardbook/internal/handlers/rest/booking_post"
	"yardbook/internal/handlers/rest/booking_put"
	"yardbook/internal/handlers/rest/bookings_get"
	"yardbook/internal/handlers/rest/product_type_post"
	"yardbook/internal/handlers/rest/product_types_get"
	"yardbook/internal/handlers/rest/reservation_reject_post"
	"yardbook/internal/handlers/rest/schedule_get"
	"yardbook/internal/handlers/rest/schedule_post"
	"yardbook/internal/handlers/rest/supplier_rule_delete"
	"yardbook/internal/handlers/rest/supplier_rule_post"
	"yardbook/internal/handlers/rest/supplier_rule_put"
	"yardbook/internal/handlers/rest/supplier_rules_get"
	"yardbook/internal/handlers/tasks/capacity_restoration"
	"yardbook/internal/pkg/config"
	"yardbook/internal/pkg/factory/booking_handle"
	"yardbook/internal/pkg/factory/reservation_window"
	"yardbook/internal/pkg/ruletoken"

	bookingRepo "yardbook/internal/repository/booking"
	productTypeRepo "yardbook/internal/repository/producttype"
	scheduleRepo "yardbook/internal/repository/schedule"
	supplierRepo "yardbook/internal/repository/supplier"
	supplierRuleRepo "yardbook/internal/repository/supplierrule"
	availabilityService "yardbook/internal/service/availability"
	bookingService "yardbook/internal/service/booking"
	notificationService "yardbook/internal/service/notification"
	productTypeService "yardbook/internal/service/producttype"
	restorationService "yardbook/internal/service/restoration"
	scheduleService "yardbook/internal/service/schedule"
	supplierRuleService "yardbook/internal/service/supplierrule"

	"yardbook/pkg/background"
	"yardbook/pkg/logger"
	"yardbook/pkg/querier"
	"yardbook/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	RestorationInterval time.Duration
)

type Application struct {
	ServiceAvailability ServiceAvailability
	ServiceBooking      ServiceBooking
	ServiceSupplierRule ServiceSupplierRule
	ServiceSchedule     ServiceSchedule
	ServiceProductType  ServiceProductType
	ServiceRestoration  ServiceRestoration
	BackgroundWorkers   *background.Worker
}

type ServiceAvailability interface {
	availability_post.Service
}

type ServiceBooking interface {
	booking_post.Service
	booking_get.Service
	booking_put.Service
	bookings_get.Service
}

type ServiceSupplierRule interface {
	supplier_rule_post.Service
	supplier_rule_put.Service
	supplier_rule_delete.Service
	supplier_rules_get.Service
}

type ServiceSchedule interface {
	schedule_post.Service
	schedule_get.Service
}

type ServiceProductType interface {
	product_type_post.Service
	product_types_get.Service
}

type ServiceRestoration interface {
	reservation_reject_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideRestorationInterval,
		provideAvailabilityConfig,

		provideScheduleRepository,
		provideSupplierRuleRepository,
		provideBookingRepository,
		provideProductTypeRepository,
		provideSupplierRepository,

		provideMailGateway,
		provideFileStoreGateway,
		provideTokenSealer,
		reservation_window.New,

		provideServiceSchedule,
		provideServiceSupplierRule,
		provideServiceAvailability,
		provideServiceBooking,
		provideServiceProductType,
		provideServiceRestoration,

		provideCapacityRestorationTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceAvailability), new(*availabilityService.Availability)),
		wire.Bind(new(ServiceBooking), new(*bookingService.Booking)),
		wire.Bind(new(ServiceSupplierRule), new(*supplierRuleService.SupplierRules)),
		wire.Bind(new(ServiceSchedule), new(*scheduleService.Schedule)),
		wire.Bind(new(ServiceProductType), new(*productTypeService.ProductTypes)),
		wire.Bind(new(ServiceRestoration), new(*restorationService.Restoration)),

		wire.Bind(new(scheduleService.Repository), new(*scheduleRepo.Repository)),
		wire.Bind(new(supplierRuleService.Repository), new(*supplierRuleRepo.Repository)),
		wire.Bind(new(supplierRuleService.ScheduleService), new(*scheduleService.Schedule)),
		wire.Bind(new(availabilityService.ScheduleService), new(*scheduleService.Schedule)),
		wire.Bind(new(availabilityService.RuleRepository), new(*supplierRuleRepo.Repository)),
		wire.Bind(new(availabilityService.DemandRepository), new(*bookingRepo.Repository)),
		wire.Bind(new(availabilityService.SupplierDirectory), new(*supplierRepo.Repository)),
		wire.Bind(new(bookingService.Repository), new(*bookingRepo.Repository)),
		wire.Bind(new(bookingService.ScheduleService), new(*scheduleService.Schedule)),
		wire.Bind(new(bookingService.FileStore), new(*filestoreGateway.FileStoreGateway)),
		wire.Bind(new(productTypeService.Repository), new(*productTypeRepo.Repository)),
		wire.Bind(new(restorationService.Repository), new(*supplierRuleRepo.Repository)),
		wire.Bind(new(restorationService.Mailer), new(*mailerGateway.MailGateway)),
		wire.Bind(new(restorationService.TokenSealer), new(*ruletoken.Sealer)),
		wire.Bind(new(restorationService.WindowFactory), new(*reservation_window.WindowFactory)),

		wire.Bind(new(scheduleService.TxManager), new(*tx.Manager)),
		wire.Bind(new(supplierRuleService.TxManager), new(*tx.Manager)),
		wire.Bind(new(bookingService.TxManager), new(*tx.Manager)),
		wire.Bind(new(restorationService.TxManager), new(*tx.Manager)),

		wire.Bind(new(capacity_restoration.Service), new(*restorationService.Restoration)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	NotificationService *notificationService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-booking-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideScheduleRepository,
		provideBookingRepository,
		provideSupplierRepository,

		provideMailGateway,
		provideFileStoreGateway,

		provideServiceSchedule,
		provideServiceBooking,
		provideNotifier,
		provideStatusHandlerFactory,
		provideNotificationService,

		wire.Bind(new(scheduleService.Repository), new(*scheduleRepo.Repository)),
		wire.Bind(new(bookingService.Repository), new(*bookingRepo.Repository)),
		wire.Bind(new(bookingService.ScheduleService), new(*scheduleService.Schedule)),
		wire.Bind(new(bookingService.FileStore), new(*filestoreGateway.FileStoreGateway)),
		wire.Bind(new(notificationService.BookingService), new(*bookingService.Booking)),
		wire.Bind(new(notificationService.SupplierDirectory), new(*supplierRepo.Repository)),
		wire.Bind(new(notificationService.Mailer), new(*mailerGateway.MailGateway)),
		wire.Bind(new(notificationService.HandlerFactory), new(*booking_handle.StatusHandlerFactory)),

		wire.Bind(new(scheduleService.TxManager), new(*tx.Manager)),
		wire.Bind(new(bookingService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideScheduleRepository(querier *querier.Querier) *scheduleRepo.Repository {
	return scheduleRepo.New(querier)
}

func provideSupplierRuleRepository(querier *querier.Querier) *supplierRuleRepo.Repository {
	return supplierRuleRepo.New(querier)
}

func provideBookingRepository(querier *querier.Querier) *bookingRepo.Repository {
	return bookingRepo.New(querier)
}

func provideProductTypeRepository(querier *querier.Querier) *productTypeRepo.Repository {
	return productTypeRepo.New(querier)
}

func provideSupplierRepository(querier *querier.Querier) *supplierRepo.Repository {
	return supplierRepo.New(querier)
}

func provideMailGateway(cfg *config.Config) *mailerGateway.MailGateway {
	return mailerGateway.New(cfg.Mailer.BaseURL, cfg.Mailer.Timeout)
}

func provideFileStoreGateway(cfg *config.Config) *filestoreGateway.FileStoreGateway {
	return filestoreGateway.New(cfg.FileStore.BaseURL, cfg.FileStore.Bucket, cfg.FileStore.Timeout)
}

func provideTokenSealer(cfg *config.Config) (*ruletoken.Sealer, error) {
	return ruletoken.New(cfg.RuleToken.Secret)
}

func provideAvailabilityConfig(cfg *config.Config) availabilityService.Config {
	return availabilityService.Config{
		DaysToCheck:         cfg.Availability.DaysToCheck,
		SingleBookingPerDay: cfg.Availability.SingleBookingPerDay,
	}
}

func provideServiceSchedule(
	repository scheduleService.Repository,
	txManager scheduleService.TxManager,
) *scheduleService.Schedule {
	return scheduleService.New(repository, txManager)
}

func provideServiceSupplierRule(
	repository supplierRuleService.Repository,
	schedule supplierRuleService.ScheduleService,
	txManager supplierRuleService.TxManager,
) *supplierRuleService.SupplierRules {
	return supplierRuleService.New(repository, schedule, txManager)
}

func provideServiceAvailability(
	schedule availabilityService.ScheduleService,
	rules availabilityService.RuleRepository,
	demand availabilityService.DemandRepository,
	suppliers availabilityService.SupplierDirectory,
	cfg availabilityService.Config,
) *availabilityService.Availability {
	return availabilityService.New(schedule, rules, demand, suppliers, cfg)
}

func provideServiceBooking(
	repository bookingService.Repository,
	schedule bookingService.ScheduleService,
	fileStore bookingService.FileStore,
	txManager bookingService.TxManager,
) *bookingService.Booking {
	return bookingService.New(repository, schedule, fileStore, txManager)
}

func provideServiceProductType(repository productTypeService.Repository) *productTypeService.ProductTypes {
	return productTypeService.New(repository)
}

func provideServiceRestoration(
	repository restorationService.Repository,
	mailer restorationService.Mailer,
	sealer restorationService.TokenSealer,
	windowFactory restorationService.WindowFactory,
	txManager restorationService.TxManager,
	log logger.Logger,
) *restorationService.Restoration {
	return restorationService.New(repository, mailer, sealer, windowFactory, txManager, log)
}

func provideNotifier(
	booking notificationService.BookingService,
	suppliers notificationService.SupplierDirectory,
	mailer notificationService.Mailer,
) *notificationService.Notifier {
	return notificationService.NewNotifier(booking, suppliers, mailer)
}

func provideStatusHandlerFactory(notifier *notificationService.Notifier) *booking_handle.StatusHandlerFactory {
	return booking_handle.NewStatusHandlerFactory(notifier)
}

func provideNotificationService(
	booking notificationService.BookingService,
	handlerFactory notificationService.HandlerFactory,
) *notificationService.Service {
	return notificationService.New(booking, handlerFactory)
}

func provideRestorationInterval(cfg *config.Config) RestorationInterval {
	return RestorationInterval(cfg.Tasks.CapacityRestorationInterval)
}

func provideCapacityRestorationTask(
	log logger.Logger,
	restoration capacity_restoration.Service,
	interval RestorationInterval,
) *capacity_restoration.CapacityRestoration {
	return capacity_restoration.NewCapacityRestoration(log, restoration, time.Duration(interval))
}

func provideTaskList(
	capacityRestorationTask *capacity_restoration.CapacityRestoration,
) []background.Task {
	return []background.Task{
		capacityRestorationTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
