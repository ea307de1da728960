package router

import (
	"context"

	"salondesk/internal/config"
	"salondesk/internal/handler"
	"salondesk/internal/middleware"
	"salondesk/internal/repository"
	"salondesk/internal/service"
	"salondesk/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(ctx context.Context, cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())

	// ── Repositories ─────────────────────────────────────────────────────────
	billRepo := repository.NewBillRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	productRepo := repository.NewProductRepository(db)
	stockRepo := repository.NewStockMovementRepository(db)
	loyaltyRepo := repository.NewLoyaltyRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// ── Worker pool ──────────────────────────────────────────────────────────
	dispatcher := worker.NewDispatcher(64)
	receiptWorker := worker.NewReceiptWorker(billRepo, settingsRepo, cfg.ReceiptStoragePath)
	dispatcher.Start(ctx, cfg.WorkerPoolSize, map[string]worker.Handler{
		"receipt": receiptWorker,
	})

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(settingsRepo, cfg)
	billingSvc := service.NewBillingService(billRepo, customerRepo, serviceRepo, productRepo, stockRepo, loyaltyRepo, settingsRepo, dispatcher)
	customerSvc := service.NewCustomerService(customerRepo)
	catalogSvc := service.NewCatalogService(serviceRepo, staffRepo, productRepo)
	inventorySvc := service.NewInventoryService(productRepo, stockRepo, supplierRepo)
	appointmentSvc := service.NewAppointmentService(appointmentRepo)
	expenseSvc := service.NewExpenseService(expenseRepo)
	reportSvc := service.NewReportService(reportRepo, expenseRepo)
	backupSvc := service.NewBackupService(db, cfg.DBPath, cfg.BackupDir)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	billingH := handler.NewBillingHandler(billingSvc)
	customersH := handler.NewCustomersHandler(customerSvc)
	catalogH := handler.NewCatalogHandler(catalogSvc)
	inventoryH := handler.NewInventoryHandler(inventorySvc)
	appointmentsH := handler.NewAppointmentsHandler(appointmentSvc)
	expensesH := handler.NewExpensesHandler(expenseSvc)
	reportsH := handler.NewReportsHandler(reportSvc)
	settingsH := handler.NewSettingsHandler(settingsRepo, backupSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.GET("/status", authH.Status)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		v1.PUT("/auth/pin", authH.SetPin)

		v1.POST("/bills", billingH.CreateBill)
		v1.GET("/bills", billingH.ListBills)
		v1.GET("/bills/:id", billingH.GetBill)

		customers := v1.Group("/customers")
		{
			customers.POST("", customersH.Create)
			customers.GET("", customersH.List)
			customers.GET("/:id", customersH.Get)
			customers.PUT("/:id", customersH.Update)
			customers.DELETE("/:id", customersH.Delete)
			customers.GET("/:id/visits", billingH.CustomerVisits)
			customers.POST("/:id/loyalty/rebuild", billingH.RebuildLoyalty)
		}

		services := v1.Group("/services")
		{
			services.POST("", catalogH.CreateService)
			services.GET("", catalogH.ListServices)
			services.PUT("/:id", catalogH.UpdateService)
			services.DELETE("/:id", catalogH.DeleteService)
			services.POST("/:id/products", catalogH.AddProductLink)
			services.GET("/:id/products", catalogH.ListProductLinks)
		}
		v1.DELETE("/service-products/:id", catalogH.RemoveProductLink)

		staff := v1.Group("/staff")
		{
			staff.POST("", catalogH.CreateStaff)
			staff.GET("", catalogH.ListStaff)
			staff.PUT("/:id", catalogH.UpdateStaff)
			staff.DELETE("/:id", catalogH.DeleteStaff)
		}

		products := v1.Group("/products")
		{
			products.POST("", inventoryH.CreateProduct)
			products.GET("", inventoryH.ListProducts)
			products.GET("/:id", inventoryH.GetProduct)
			products.PUT("/:id", inventoryH.UpdateProduct)
			products.DELETE("/:id", inventoryH.DeleteProduct)
			products.POST("/:id/stock/rebuild", inventoryH.RebuildStock)
		}

		stock := v1.Group("/stock")
		{
			stock.POST("/movements", inventoryH.RecordMovement)
			stock.GET("/movements", inventoryH.ListMovements)
			stock.GET("/alerts", inventoryH.LowStockAlerts)
		}

		suppliers := v1.Group("/suppliers")
		{
			suppliers.POST("", inventoryH.CreateSupplier)
			suppliers.GET("", inventoryH.ListSuppliers)
			suppliers.PUT("/:id", inventoryH.UpdateSupplier)
			suppliers.DELETE("/:id", inventoryH.DeleteSupplier)
		}

		appointments := v1.Group("/appointments")
		{
			appointments.POST("", appointmentsH.Create)
			appointments.GET("", appointmentsH.List)
			appointments.GET("/:id", appointmentsH.Get)
			appointments.PUT("/:id/status", appointmentsH.UpdateStatus)
		}

		expenses := v1.Group("/expenses")
		{
			expenses.POST("", expensesH.Create)
			expenses.GET("", expensesH.List)
			expenses.PUT("/:id", expensesH.Update)
			expenses.DELETE("/:id", expensesH.Delete)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("/daily-summary", reportsH.DailySummary)
			reports.GET("/cash-closing", reportsH.CashClosing)
		}

		v1.GET("/settings", settingsH.List)
		v1.PUT("/settings/:key", settingsH.Update)

		backups := v1.Group("/backups")
		{
			backups.POST("", settingsH.CreateBackup)
			backups.GET("", settingsH.ListBackups)
			backups.POST("/:name/restore", settingsH.RestoreBackup)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
