package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"slotbook/audit"
	"slotbook/config"
	"slotbook/controllers"
	"slotbook/cron"
	"slotbook/db"
	"slotbook/ratelimit"
	"slotbook/redis"
	"slotbook/routes"
	"slotbook/scheduling"
	"slotbook/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	if err := db.Migrate(conn); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	rdb, err := redis.New(cfg.RedisAddr)
	if err != nil {
		log.Fatal(err)
	}

	mailer := utils.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass)
	recorder := audit.NewRecorder(conn)
	engine := scheduling.NewEngine(scheduling.NewGormStore(conn))
	loginLimiter := ratelimit.New(rdb, cfg.LoginRateLimit, cfg.LoginRateWindow, "login")

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
	}))

	authController := controllers.NewAuthController(conn, cfg.JWTSecret)
	serviceController := controllers.NewServiceController(conn, recorder)
	providerController := controllers.NewProviderController(conn)
	availabilityController := controllers.NewAvailabilityController(conn)
	slotController := controllers.NewSlotController(engine)
	bookingController := controllers.NewBookingController(conn, engine, recorder, mailer)
	adminController := controllers.NewAdminController(conn, recorder)

	routes.SetupAuthRoutes(app, authController, loginLimiter, cfg.JWTSecret)
	routes.SetupServiceRoutes(app, serviceController, providerController, cfg.JWTSecret)
	routes.SetupAvailabilityRoutes(app, availabilityController, slotController, cfg.JWTSecret)
	routes.SetupBookingRoutes(app, bookingController, cfg.JWTSecret)
	routes.SetupAdminRoutes(app, adminController, cfg.JWTSecret)

	reminders := cron.NewReminderScheduler(conn, mailer)
	if err := reminders.Start(); err != nil {
		log.Fatalf("Failed to start cron scheduler: %v", err)
	}

	log.Fatal(app.Listen(":" + cfg.Port))
}
