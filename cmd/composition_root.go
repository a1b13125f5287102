package cmd

import (
	"context"
	"log/slog"

	maitredhttp "maitred/internal/adapters/in/http"
	"maitred/internal/adapters/out/groq"
	"maitred/internal/adapters/out/postgres"
	"maitred/internal/adapters/out/postgres/cartrepo"
	"maitred/internal/adapters/out/postgres/catalogrepo"
	"maitred/internal/adapters/out/postgres/orderrepo"
	"maitred/internal/core/application/usecases/commands"
	"maitred/internal/core/application/usecases/queries"
	"maitred/internal/core/domain/model/catalog"
	"maitred/internal/core/domain/services"
	"maitred/internal/core/domain/services/intents"
	"maitred/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	cache       *catalog.Cache
	catalogRepo *catalogrepo.GormCatalogRepository
	groqClient  *groq.Client

	aliasTable *services.AliasTable
	phrasebook *services.Phrasebook
	registry   *intents.Registry

	logger *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	groqClient, err := groq.NewClient(groq.Config{
		APIKey:    configs.GroqAPIKey,
		BaseURL:   configs.GroqBaseURL,
		ChatModel: configs.GroqChatModel,
		STTModel:  configs.GroqSTTModel,
	})
	if err != nil {
		return CompositionRoot{}, err
	}

	aliasTable, err := services.DefaultAliasTable()
	if err != nil {
		return CompositionRoot{}, err
	}
	phrasebook, err := services.DefaultPhrasebook()
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		cache:       catalog.NewCache(),
		catalogRepo: catalogrepo.NewGormCatalogRepository(gormDB),
		groqClient:  groqClient,
		aliasTable:  aliasTable,
		phrasebook:  phrasebook,
		registry:    intents.DefaultRegistry(),
		logger:      logger,
	}, nil
}

// MigrateDatabase creates or updates the schema for every persisted model.
func (c *CompositionRoot) MigrateDatabase() error {
	return c.gormDB.AutoMigrate(
		&catalogrepo.DinnerDTO{},
		&catalogrepo.StyleDTO{},
		&catalogrepo.MenuItemDTO{},
		&cartrepo.CartDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
	)
}

// SeedCatalog upserts the standing menu and warms the in-memory cache.
func (c *CompositionRoot) SeedCatalog(ctx context.Context) error {
	dinners, styles, menuItems, err := defaultCatalog()
	if err != nil {
		return err
	}

	if err := c.catalogRepo.Seed(ctx, dinners, styles, menuItems); err != nil {
		return err
	}

	return c.cache.Load(ctx, c.catalogRepo)
}

func (c *CompositionRoot) CreateProcessTurnCommandHandler() commands.ProcessTurnCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessTurnCommandHandler(
		c.groqClient,
		c.groqClient,
		c.cache,
		c.aliasTable,
		c.phrasebook,
		c.registry,
		f,
		c.logger,
	)
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateAcceptOrdersCommandHandler() commands.AcceptOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOrdersCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *maitredhttp.Server {
	return maitredhttp.NewServer(
		c.CreateProcessTurnCommandHandler(),
		c.CreateCheckoutCommandHandler(),
		c.CreateGetActiveOrdersQueryHandler(),
		c.CreateGetMenuQueryHandler(),
		c.cache,
		c.catalogRepo,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateAcceptOrdersCommandHandler(),
		c.cache,
		c.catalogRepo,
		c.logger,
	)
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
