package api

import (
	"log"
	stdhttp "net/http"

	intconfig "fleetops/internal/config"
	h "fleetops/internal/http/handlers"
	"fleetops/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.Configure(env)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	auth := middleware.RequireAuth(h.JWTSecret())
	adminOnly := middleware.RequireRoles("admin")
	backOffice := middleware.RequireRoles("admin", "accountant", "dispatcher")

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Auth
		authGroup := api.Group("/auth")
		authGroup.POST("/login", h.Login)
		authGroup.POST("/register", h.Register)

		// Users
		users := api.Group("/users", auth, adminOnly)
		users.GET("", h.GetUsers)
		users.GET("/:id", h.GetUserByID)
		users.POST("", h.CreateUser)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)

		// Masters
		drivers := api.Group("/drivers", auth, backOffice)
		drivers.GET("", h.GetDrivers)
		drivers.GET("/:id", h.GetDriverByID)
		drivers.POST("", h.CreateDriver)
		drivers.PUT("/:id", h.UpdateDriver)
		drivers.DELETE("/:id", h.DeleteDriver)

		vehicles := api.Group("/vehicles", auth, backOffice)
		vehicles.GET("", h.GetVehicles)
		vehicles.POST("", h.CreateVehicle)
		vehicles.PUT("/:id", h.UpdateVehicle)
		vehicles.DELETE("/:id", h.DeleteVehicle)

		transporters := api.Group("/transporters", auth, backOffice)
		transporters.GET("", h.GetTransporters)
		transporters.GET("/:id", h.GetTransporterByID)
		transporters.POST("", h.CreateTransporter)
		transporters.PUT("/:id", h.UpdateTransporter)
		transporters.DELETE("/:id", h.DeleteTransporter)

		customers := api.Group("/customers", auth, backOffice)
		customers.GET("", h.GetCustomers)
		customers.POST("", h.CreateCustomer)
		customers.PUT("/:id", h.UpdateCustomer)
		customers.DELETE("/:id", h.DeleteCustomer)

		// Routes master (path avoids clashing with /api/routes introspection)
		routesMaster := api.Group("/routes-master", auth, backOffice)
		routesMaster.GET("", h.GetRoutes)
		routesMaster.GET("/code/:code", h.GetRouteByCode)
		routesMaster.POST("", h.CreateRoute)
		routesMaster.PUT("/:id", h.UpdateRoute)
		routesMaster.DELETE("/:id", h.DeleteRoute)

		// Subtrips and expenses
		subtrips := api.Group("/subtrips", auth, backOffice)
		subtrips.GET("", h.GetSubtrips)
		subtrips.GET("/:id", h.GetSubtripByID)
		subtrips.POST("", h.CreateSubtrip)
		subtrips.PUT("/:id", h.UpdateSubtrip)
		subtrips.PATCH("/:id/status", h.UpdateSubtripStatus)
		subtrips.DELETE("/:id", h.DeleteSubtrip)
		subtrips.POST("/:id/expenses", h.AddSubtripExpense)
		subtrips.DELETE("/expenses/:id", h.DeleteSubtripExpense)
		subtrips.GET("/:id/insights", h.GetSubtripInsights)
		subtrips.GET("/:id/lorry-receipt", h.GetSubtripLorryReceipt)

		// Invoices
		invoices := api.Group("/invoices", auth, backOffice)
		invoices.GET("", h.GetInvoices)
		invoices.GET("/:id", h.GetInvoiceByID)
		invoices.POST("", h.RaiseInvoice)
		invoices.PATCH("/:id/status", h.UpdateInvoiceStatus)
		invoices.DELETE("/:id", h.DeleteInvoice)
		invoices.GET("/:id/pdf", h.GetInvoicePDF)

		// Transporter payments
		payments := api.Group("/transporter-payments", auth, backOffice)
		payments.GET("", h.GetTransporterPayments)
		payments.GET("/:id", h.GetTransporterPaymentByID)
		payments.POST("/draft", h.DraftTransporterPayment)
		payments.POST("", h.SubmitTransporterPayment)
		payments.DELETE("/:id", h.DeleteTransporterPayment)
		payments.GET("/:id/voucher", h.GetTransporterPaymentVoucher)

		// Driver payrolls
		payrolls := api.Group("/payrolls", auth, backOffice)
		payrolls.GET("", h.GetPayrolls)
		payrolls.GET("/:id", h.GetPayrollByID)
		payrolls.POST("/draft", h.DraftPayroll)
		payrolls.POST("", h.SubmitPayroll)
		payrolls.DELETE("/:id", h.DeletePayroll)
		payrolls.GET("/:id/voucher", h.GetPayrollVoucher)

		// Reports
		reports := api.Group("/reports", auth, backOffice)
		reports.GET("/subtrips", h.GetSubtripReport)
		reports.GET("/subtrips/export", h.ExportSubtripReport)

		// Tenant settings
		settings := api.Group("/settings", auth, adminOnly)
		settings.GET("/rates", h.GetRateSettings)
		settings.PUT("/rates", h.UpdateRateSettings)
	}

	h.SetRouter(r)
	return r
}
