package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"property-backend/config"
	"property-backend/controllers"
	"property-backend/routes"
	"property-backend/scheduler"
	"property-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("config.DB is nil after ConnectDatabase()")
	}
	log.Println("Database connection established, migrations applied")

	// Services
	subService := services.NewSubmissionService(db)
	tenantService := services.NewTenantService(db)
	appService := services.NewApplicationService(db, subService)
	moveOutService := services.NewMoveOutService(db, subService)
	bookingService := services.NewBookingService(db)
	paymentService := services.NewPaymentService(db)
	budgetService := services.NewBudgetService(db)
	maintenanceService := services.NewMaintenanceService(db)
	notifyService := services.NewNotifyService(db)
	calendarService := services.NewCalendarService(db)
	reportService := services.NewReportService(db)

	// Controllers
	tenantController := controllers.NewTenantController(tenantService)
	appController := controllers.NewApplicationController(appService, subService)
	moveOutController := controllers.NewMoveOutController(moveOutService, subService)
	formController := controllers.NewFormController(subService)
	bookingController := controllers.NewBookingController(bookingService)
	paymentController := controllers.NewPaymentController(paymentService)
	budgetController := controllers.NewBudgetController(budgetService)
	maintenanceController := controllers.NewMaintenanceController(maintenanceService)
	reportController := controllers.NewReportController(reportService, budgetService)
	calendarController := controllers.NewCalendarController(calendarService)

	router := routes.SetupRouter(
		tenantController,
		appController,
		moveOutController,
		formController,
		bookingController,
		paymentController,
		budgetController,
		maintenanceController,
		reportController,
		calendarController,
	)

	// Daily dispatcher (payment sweep, reminders, invoices, late alerts,
	// calendar regeneration)
	sched := scheduler.New(db, paymentService, notifyService, calendarService)
	if err := sched.Start(); err != nil {
		log.Fatalf("Scheduler start failed: %v", err)
	}
	defer sched.Stop()

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
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal, then shut down with a timeout.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
