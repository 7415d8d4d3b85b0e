package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/lavou/laundry-reservation/internal/config"
	"github.com/lavou/laundry-reservation/internal/database"
	"github.com/lavou/laundry-reservation/internal/handler"
	"github.com/lavou/laundry-reservation/internal/middleware"
	"github.com/lavou/laundry-reservation/internal/queue"
	"github.com/lavou/laundry-reservation/internal/repository"
	"github.com/lavou/laundry-reservation/internal/router"
)

func main() {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis backs the response cache and the rate limiter. A nil client
	// disables both instead of blocking startup.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; cache and rate limiting disabled")
	}

	customers := repository.NewCustomerRepo(db)
	tokens := repository.NewTokenRepo(db)
	admins := repository.NewAdminRepo(db)
	laundromats := repository.NewLaundromatRepo(db)
	machines := repository.NewMachineRepo(db)
	reservations := repository.NewReservationRepo(db)
	dashboard := repository.NewDashboardRepo(db)

	authH := handler.NewAuthHandler(cfg, customers, tokens)
	adminAuthH := handler.NewAdminAuthHandler(cfg, admins)
	publicH := handler.NewPublicHandler(machines, laundromats)
	customerH := handler.NewCustomerHandler(reservations)
	accountsH := handler.NewAdminAccountHandler(cfg, admins)
	catalogH := handler.NewAdminCatalogHandler(laundromats, machines)
	adminResH := handler.NewAdminReservationHandler(reservations)
	dashH := handler.NewDashboardHandler(dashboard)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, adminAuthH, cfg.JWTSecret)
	router.RegisterPublic(e, publicH, cacheMW)
	router.RegisterCustomer(e, customerH, cfg.JWTSecret)
	router.RegisterAdmin(e, accountsH, catalogH, adminResH, dashH, cfg.JWTSecret)

	// Background consumer logs reservation decisions; it reconnects on
	// its own and never takes the API down.
	go func() {
		if err := queue.StartReservationConsumer(); err != nil {
			log.Printf("reservation consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
