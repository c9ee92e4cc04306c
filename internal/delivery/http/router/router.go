// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"shopkeeper/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	InventoryHandler    *handler.InventoryHandler
	VendorHandler       *handler.VendorHandler
	OrderHandler        *handler.OrderHandler
	CustomerSaleHandler *handler.CustomerSaleHandler
	PricingHandler      *handler.PricingHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	inventoryHandler    *handler.InventoryHandler
	vendorHandler       *handler.VendorHandler
	orderHandler        *handler.OrderHandler
	customerSaleHandler *handler.CustomerSaleHandler
	pricingHandler      *handler.PricingHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		inventoryHandler:    params.InventoryHandler,
		vendorHandler:       params.VendorHandler,
		orderHandler:        params.OrderHandler,
		customerSaleHandler: params.CustomerSaleHandler,
		pricingHandler:      params.PricingHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	inventory := api.Group("/inventory")
	{
		inventory.GET("", r.inventoryHandler.ListInventory)
		inventory.POST("", r.inventoryHandler.CreateInventory)
		inventory.PUT("/:id", r.inventoryHandler.UpdateInventory)
		inventory.DELETE("/:id", r.inventoryHandler.DeleteInventory)
	}

	vendors := api.Group("/vendors")
	{
		vendors.GET("", r.vendorHandler.ListVendors)
		vendors.POST("", r.vendorHandler.CreateVendor)
		vendors.PUT("/:id", r.vendorHandler.UpdateVendor)
		vendors.DELETE("/:id", r.vendorHandler.DeleteVendor)
	}

	orders := api.Group("/orders")
	{
		orders.GET("", r.orderHandler.ListOrders)
		orders.POST("", r.orderHandler.CreateOrder)
		orders.PUT("/:id", r.orderHandler.UpdateOrder)
		orders.DELETE("/:id", r.orderHandler.DeleteOrder)
	}

	sales := api.Group("/customer_sales")
	{
		sales.GET("", r.customerSaleHandler.ListCustomerSales)
		sales.POST("", r.customerSaleHandler.CreateCustomerSale)
		sales.PUT("/:id", r.customerSaleHandler.UpdateCustomerSale)
		sales.DELETE("/:id", r.customerSaleHandler.DeleteCustomerSale)
	}

	pricing := api.Group("/pricing")
	{
		pricing.GET("", r.pricingHandler.ListPricing)
		pricing.POST("", r.pricingHandler.CreatePricing)
		pricing.PUT("/:id", r.pricingHandler.UpdatePricing)
		pricing.DELETE("/:id", r.pricingHandler.DeletePricing)
	}
}
