package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"resort-backend/config"
	"resort-backend/controllers"
	"resort-backend/routes"
	"resort-backend/services"
	"resort-backend/utils"
)

func main() {
	log := config.GetLogger()

	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Info(".env not found or couldn't load it; continuing with environment variables")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.WithError(err).Fatal("database connect failed")
	}
	db := config.DB
	if db == nil {
		log.Fatal("config.DB is nil after ConnectDatabase()")
	}
	log.Info("database connection established, migrations applied")

	// Redis is optional; without it change notifications are dropped.
	if err := config.ConnectRedis(); err != nil {
		log.WithError(err).Warn("redis unavailable, realtime notifications disabled")
	}

	utils.RegisterValidators()

	notifier := services.NewNotifier(config.RDB, log)

	guestService := services.NewGuestService(db, notifier)
	bookingService := services.NewBookingService(db, guestService, notifier)
	kotService := services.NewKOTService(db, notifier)
	leaveService := services.NewLeaveService(db, notifier)
	vendorService := services.NewVendorService(db, notifier)
	inventoryService := services.NewInventoryService(db, notifier)
	ledgerService := services.NewLedgerService(utils.EnvOrDefault("LEDGER_FILE", "data/ledger.json"))
	revenueService := services.NewRevenueService(db, ledgerService)
	reportService := services.NewReportService(db)
	auditService := services.NewAuditService(db)

	router := routes.SetupRouter(routes.Deps{
		Log:          log,
		Guests:       controllers.NewGuestController(guestService),
		Bookings:     controllers.NewBookingController(bookingService),
		KOT:          controllers.NewKOTController(kotService),
		Leaves:       controllers.NewLeaveController(leaveService),
		Vendors:      controllers.NewVendorController(vendorService),
		Inventory:    controllers.NewInventoryController(inventoryService),
		Ledger:       controllers.NewLedgerController(ledgerService),
		Revenue:      controllers.NewRevenueController(revenueService),
		Reports:      controllers.NewReportController(reportService),
		Audit:        controllers.NewAuditController(auditService),
		Realtime:     controllers.NewRealtimeController(notifier),
		AuditService: auditService,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.WithField("addr", addr).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("ListenAndServe failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}

	log.Info("server stopped gracefully")
}
