//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	notificationGateway "cargoflash/internal/gateway/kafka/notification"
	deliveries_get "cargoflash/internal/handlers/rest/deliveries_get"
	delivery_advance_post "cargoflash/internal/handlers/rest/delivery_advance_post"
	delivery_delete "cargoflash/internal/handlers/rest/delivery_delete"
	delivery_duplicate_post "cargoflash/internal/handlers/rest/delivery_duplicate_post"
	delivery_get "cargoflash/internal/handlers/rest/delivery_get"
	delivery_post "cargoflash/internal/handlers/rest/delivery_post"
	delivery_status_put "cargoflash/internal/handlers/rest/delivery_status_put"
	simulation_run_post "cargoflash/internal/handlers/rest/simulation_run_post"
	status_counts_get "cargoflash/internal/handlers/rest/status_counts_get"
	tracking_get "cargoflash/internal/handlers/rest/tracking_get"
	"cargoflash/internal/handlers/tasks/event_sweep"
	"cargoflash/internal/pkg/config"
	"cargoflash/internal/pkg/factory/event_plan"
	"cargoflash/internal/pkg/factory/tracking_code"

	deliveryRepo "cargoflash/internal/repository/delivery"
	eventRepo "cargoflash/internal/repository/event"
	historyRepo "cargoflash/internal/repository/history"
	deliveryService "cargoflash/internal/service/delivery"
	simulationService "cargoflash/internal/service/simulation"

	"cargoflash/pkg/background"
	"cargoflash/pkg/logger"
	"cargoflash/pkg/querier"
	"cargoflash/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	SweepInterval time.Duration
	SweepLimit    int
)

type Application struct {
	ServiceDelivery   ServiceDelivery
	ServiceSimulation ServiceSimulation
	Notifier          *notificationGateway.Producer
	BackgroundWorkers *background.Worker
}

type ServiceDelivery interface {
	tracking_get.Service
	delivery_post.Service
	delivery_get.Service
	deliveries_get.Service
	delivery_delete.Service
	delivery_duplicate_post.Service
	delivery_status_put.Service
	status_counts_get.Service
}

type ServiceSimulation interface {
	delivery_advance_post.Service
	simulation_run_post.Service
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
		provideSweepInterval,
		provideSweepLimit,

		provideDeliveryRepository,
		provideEventRepository,
		provideHistoryRepository,

		tracking_code.New,
		provideEventPlanFactory,
		provideNotificationProducer,

		provideServiceDelivery,
		provideServiceSimulation,

		provideEventSweepTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServiceSimulation), new(*simulationService.Simulation)),

		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(deliveryService.EventRepository), new(*eventRepo.Repository)),
		wire.Bind(new(deliveryService.HistoryRepository), new(*historyRepo.Repository)),
		wire.Bind(new(deliveryService.CodeFactory), new(*tracking_code.CodeFactory)),
		wire.Bind(new(deliveryService.PlanFactory), new(*event_plan.PlanFactory)),

		wire.Bind(new(simulationService.DeliveryRepository), new(*deliveryRepo.Repository)),
		wire.Bind(new(simulationService.EventRepository), new(*eventRepo.Repository)),
		wire.Bind(new(simulationService.HistoryRepository), new(*historyRepo.Repository)),
		wire.Bind(new(simulationService.NotificationDispatcher), new(*notificationGateway.Producer)),

		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),
		wire.Bind(new(simulationService.TxManager), new(*tx.Manager)),

		wire.Bind(new(event_sweep.Service), new(*simulationService.Simulation)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	DeliveryService *deliveryService.Delivery
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-delivery-created)
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

		provideDeliveryRepository,
		provideEventRepository,
		provideHistoryRepository,

		tracking_code.New,
		provideEventPlanFactory,

		provideServiceDelivery,

		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(deliveryService.EventRepository), new(*eventRepo.Repository)),
		wire.Bind(new(deliveryService.HistoryRepository), new(*historyRepo.Repository)),
		wire.Bind(new(deliveryService.CodeFactory), new(*tracking_code.CodeFactory)),
		wire.Bind(new(deliveryService.PlanFactory), new(*event_plan.PlanFactory)),

		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),

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

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideEventRepository(querier *querier.Querier) *eventRepo.Repository {
	return eventRepo.New(querier)
}

func provideHistoryRepository(querier *querier.Querier) *historyRepo.Repository {
	return historyRepo.New(querier)
}

func provideEventPlanFactory(cfg *config.Config) *event_plan.PlanFactory {
	return event_plan.New(cfg.Simulation)
}

func provideNotificationProducer(log logger.Logger, cfg *config.Config) (*notificationGateway.Producer, error) {
	return notificationGateway.New(log, cfg.Kafka.Brokers, cfg.Kafka.NotificationsTopic)
}

func provideServiceDelivery(
	repository deliveryService.Repository,
	events deliveryService.EventRepository,
	history deliveryService.HistoryRepository,
	codeFactory deliveryService.CodeFactory,
	planFactory deliveryService.PlanFactory,
	txManager deliveryService.TxManager,
) *deliveryService.Delivery {
	return deliveryService.New(
		repository,
		events,
		history,
		codeFactory,
		planFactory,
		txManager,
	)
}

func provideServiceSimulation(
	log logger.Logger,
	deliveries simulationService.DeliveryRepository,
	events simulationService.EventRepository,
	history simulationService.HistoryRepository,
	notifier simulationService.NotificationDispatcher,
	txManager simulationService.TxManager,
) *simulationService.Simulation {
	return simulationService.New(
		log,
		deliveries,
		events,
		history,
		notifier,
		txManager,
	)
}

func provideSweepInterval(cfg *config.Config) SweepInterval {
	return SweepInterval(cfg.Tasks.EventSweepInterval)
}

func provideSweepLimit(cfg *config.Config) SweepLimit {
	return SweepLimit(cfg.Simulation.SweepBatchLimit)
}

func provideEventSweepTask(
	log logger.Logger,
	simulationService event_sweep.Service,
	interval SweepInterval,
	limit SweepLimit,
) *event_sweep.EventSweep {
	return event_sweep.NewEventSweep(log, simulationService, time.Duration(interval), int(limit))
}

func provideTaskList(
	eventSweepTask *event_sweep.EventSweep,
) []background.Task {
	return []background.Task{
		eventSweepTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
