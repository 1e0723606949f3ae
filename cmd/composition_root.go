package cmd

import (
	"log/slog"
	"os"

	"orders/internal/adapters/out/eventbus"
	"orders/internal/adapters/out/inmemory"
	"orders/internal/adapters/out/postgres"
	"orders/internal/adapters/out/pricing"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/ports"
	"orders/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot owns the process-wide singletons (unit of work factory,
// pricing table, event bus, job manager) and builds each use case handler
// on demand.
type CompositionRoot struct {
	uowFactory ports.UnitOfWorkFactory
	pricing    ports.PricingService
	eventBus   ports.EventBus
	jobManager *jobs.JobManager
	logger     *slog.Logger
}

// NewCompositionRoot wires the application from configuration. Storage mode
// selects the persistence adapter; kafka is used only when a host is
// configured, otherwise events go to the in-memory collector.
func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	var uowFactory ports.UnitOfWorkFactory
	if config.Storage == StorageMemory {
		uowFactory = inmemory.NewUnitOfWorkFactory(inmemory.NewOrderRepository())
	} else {
		uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
	}

	pricingService, err := pricing.NewStaticPricingService()
	if err != nil {
		return CompositionRoot{}, err
	}

	root := CompositionRoot{
		uowFactory: uowFactory,
		pricing:    pricingService,
		eventBus:   eventbus.NewInMemoryEventBus(),
		logger:     logger,
	}

	if config.KafkaHost != "" {
		kafkaBus := eventbus.NewKafkaEventBus(config.KafkaHost, config.KafkaOrderEventsTopic, logger)
		root.eventBus = kafkaBus
		root.jobManager = jobs.NewJobManager(kafkaBus, logger)
	}

	return root, nil
}

// Logger returns the process logger.
func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

// JobManager returns the background job manager, nil when no broker is
// configured.
func (c *CompositionRoot) JobManager() *jobs.JobManager {
	return c.jobManager
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncCommandUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.eventBus, c.logger)
}

func (c *CompositionRoot) CreateAddItemToOrderCommandHandler() commands.AddItemToOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncCommandUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddItemToOrderCommandHandler(f, c.pricing, c.eventBus, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	var f queries.OrderUoWFactory = FuncQueryUoWFactory(func() queries.OrderUoW {
		return c.uowFactory.Create()
	})
	return queries.NewGetOrderQueryHandler(f)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	var f queries.OrderUoWFactory = FuncQueryUoWFactory(func() queries.OrderUoW {
		return c.uowFactory.Create()
	})
	return queries.NewListOrdersQueryHandler(f)
}

type FuncCommandUoWFactory func() commands.OrderUoW

func (f FuncCommandUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncQueryUoWFactory func() queries.OrderUoW

func (f FuncQueryUoWFactory) Create() queries.OrderUoW {
	return f()
}
