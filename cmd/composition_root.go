package cmd

import (
	"log/slog"

	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/notifier"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/servicerepo"
	"marketplace/internal/adapters/out/postgres/userrepo"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/ports"
	"marketplace/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	catalog    ports.ServiceCatalog
	roles      ports.RoleProvider
	notifier   ports.Notifier
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    servicerepo.NewGormServiceCatalog(gormDB),
		roles:      userrepo.NewGormRoleProvider(gormDB),
		notifier:   notifier.NewSystemMessageNotifier(gormDB, logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.catalog)
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeliverOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateAcceptDeliveryCommandHandler() commands.AcceptDeliveryCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptDeliveryCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateRequestRevisionCommandHandler() commands.RequestRevisionCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestRevisionCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.roles, c.notifier)
}

func (c *CompositionRoot) CreateProposeCustomOrderCommandHandler() commands.ProposeCustomOrderCommandHandler {
	var f commands.CustomOrderUoWFactory = FuncCustomOrderUoWFactory(func() commands.CustomOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProposeCustomOrderCommandHandler(f, c.roles)
}

func (c *CompositionRoot) CreateAcceptCustomOrderCommandHandler() commands.AcceptCustomOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptCustomOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRejectCustomOrderCommandHandler() commands.RejectCustomOrderCommandHandler {
	var f commands.CustomOrderUoWFactory = FuncCustomOrderUoWFactory(func() commands.CustomOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectCustomOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersForParticipantQueryHandler() queries.GetOrdersForParticipantQueryHandler {
	return queries.NewGetOrdersForParticipantQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomOrdersQueryHandler() queries.GetCustomOrdersQueryHandler {
	return queries.NewGetCustomOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverdueOrdersQueryHandler() queries.GetOverdueOrdersQueryHandler {
	return queries.NewGetOverdueOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return jobs.NewJobManager(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateDeliverOrderCommandHandler(),
		c.CreateAcceptDeliveryCommandHandler(),
		c.CreateRequestRevisionCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateProposeCustomOrderCommandHandler(),
		c.CreateAcceptCustomOrderCommandHandler(),
		c.CreateRejectCustomOrderCommandHandler(),
		c.CreateGetOrdersForParticipantQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetCustomOrdersQueryHandler(),
		c.CreateGetAllOrdersQueryHandler(),
		c.CreateGetOverdueOrdersQueryHandler(),
		c.roles,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCustomOrderUoWFactory func() commands.CustomOrderUoW

func (f FuncCustomOrderUoWFactory) Create() commands.CustomOrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
