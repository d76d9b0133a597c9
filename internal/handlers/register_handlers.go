package handlers

import (
	"log/slog"

	"github.com/gestorerp/gestor_backend/internal/core/domain"
	portssvc "github.com/gestorerp/gestor_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using
// interfaces.
func RegisterRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidators()

	// Liveness probe
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIRoutes(r, services)
}

// setupAPIRoutes configures the /api group and delegates to the entity route
// registrations.
func setupAPIRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	api := r.Group("/api")

	registerCustomerRoutes(api, services.Customer)
	registerSupplierRoutes(api, services.Supplier)
	registerProductRoutes(api, services.Product)
	registerQuoteRoutes(api, services.Quote)
	registerSalesOrderRoutes(api, services.SalesOrder)
	registerInboundNoteRoutes(api, services.InboundNote)
	registerOutboundNoteRoutes(api, services.OutboundNote)
	registerStockRoutes(api, services.Stock)
	registerLedgerRoutes(api, services.Ledger)
}

// registerCustomValidators adds the ledger enum validators used by the binding
// tags on the ledger DTOs.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		slog.Warn("Gin binding validator engine unavailable; ledger enum tags inactive")
		return
	}

	_ = v.RegisterValidation("ledgertype", func(fl validator.FieldLevel) bool {
		return domain.LedgerType(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("ledgerstatus", func(fl validator.FieldLevel) bool {
		return domain.LedgerStatus(fl.Field().String()).IsValid()
	})
}
