package cmd

import (
	"eshop/internal/adapters/out/postgres"
	"eshop/internal/core/application/usecases/commands"
	"eshop/internal/core/application/usecases/queries"
	"eshop/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.ShipmentNotifier
	catalog    ports.ProductCatalog
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, notifier ports.ShipmentNotifier, catalog ports.ProductCatalog) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier,
		catalog:    catalog,
	}
}

func (c *CompositionRoot) ProductCatalog() ports.ProductCatalog {
	return c.catalog
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateCompleteShippingCommandHandler() commands.CompleteShippingCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteShippingCommandHandler(f)
}

func (c *CompositionRoot) CreateFailShippingCommandHandler() commands.FailShippingCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFailShippingCommandHandler(f)
}

func (c *CompositionRoot) CreateFailOverdueShipmentsCommandHandler() commands.FailOverdueShipmentsCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFailOverdueShipmentsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetShipmentStatusQueryHandler() queries.GetShipmentStatusQueryHandler {
	return queries.NewGetShipmentStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShippingTypesQueryHandler() queries.GetShippingTypesQueryHandler {
	return queries.NewGetShippingTypesQueryHandler()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}
