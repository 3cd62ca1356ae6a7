package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/anveshk/classroom-seating/internal/assign"
	"github.com/anveshk/classroom-seating/internal/config"
	"github.com/anveshk/classroom-seating/internal/database"
	"github.com/anveshk/classroom-seating/internal/handler"
	"github.com/anveshk/classroom-seating/internal/middleware"
	"github.com/anveshk/classroom-seating/internal/model"
	"github.com/anveshk/classroom-seating/internal/queue"
	"github.com/anveshk/classroom-seating/internal/repository"
	"github.com/anveshk/classroom-seating/internal/router"
	"github.com/anveshk/classroom-seating/internal/utils"
)

func main() {
	// .env is a convenience for local development; in production the
	// variables come from the environment and the file is absent.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("database schema: %v", err)
	}
	cancel()

	rdb := config.NewRedisClient() // nil when Redis is unreachable
	cacheCfg := config.LoadCacheConfig()
	rateCfg := config.LoadRateLimitConfig()

	students := repository.NewStudentRepo(db)
	rooms := repository.NewRoomRepo(db)
	plans := repository.NewSeatingPlanRepo(db)
	users := repository.NewUserRepo(db)

	if err := bootstrapAdmin(context.Background(), users, cfg); err != nil {
		log.Printf("admin bootstrap: %v", err)
	}

	engine := assign.New(plans, rand.New(rand.NewSource(time.Now().UnixNano())))

	admin := &handler.AdminHandler{
		DB:         db,
		Students:   students,
		Rooms:      rooms,
		Plans:      plans,
		Engine:     engine,
		Tracker:    handler.NewUpdateTracker(),
		AMQPURL:    cfg.AMQPURL,
		Invalidate: middleware.InvalidateCache(cacheCfg, rdb),
	}
	auth := &handler.AuthHandler{
		Users:        users,
		JWTSecret:    cfg.JWTSecret,
		AccessTTLMin: cfg.AccessTTLMin,
	}

	if cfg.AMQPURL != "" {
		go queue.StartAssignmentConsumer(cfg.AMQPURL)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())

	router.RegisterRoutes(e)
	router.RegisterAuth(e, auth)
	router.RegisterAdmin(e, admin, cfg.JWTSecret,
		middleware.ResponseCache(cacheCfg, rdb),
		middleware.NewTokenBucket(rateCfg, rdb),
	)

	go func() {
		addr := ":" + cfg.Port
		log.Printf("listening on %s (env=%s)", addr, cfg.Env)
		if err := e.Start(addr); err != nil {
			log.Printf("server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

// bootstrapAdmin ensures the configured administrator account exists so a
// fresh install can log in.  There is no register endpoint; the account
// comes from ADMIN_EMAIL/ADMIN_PASSWORD, and leaving those unset skips
// the bootstrap entirely.
func bootstrapAdmin(ctx context.Context, users *repository.UserRepo, cfg config.Config) error {
	email := strings.TrimSpace(strings.ToLower(os.Getenv("ADMIN_EMAIL")))
	pass := os.Getenv("ADMIN_PASSWORD")
	if email == "" || pass == "" {
		return nil
	}
	if _, err := users.GetByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}
	hash, err := utils.HashPassword(pass, cfg.BcryptCost)
	if err != nil {
		return err
	}
	log.Printf("creating administrator account %s", email)
	return users.Create(ctx, &model.User{Email: email, PasswordHash: hash, Role: "ADMIN"})
}
