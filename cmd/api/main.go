package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "curricula-backend/internal/adapter/http"
	mw "curricula-backend/internal/adapter/middleware"
	"curricula-backend/internal/adapter/repository/mysql"
	"curricula-backend/internal/config"
	"curricula-backend/internal/domain/regulation"
	"curricula-backend/internal/domain/subject"
	"curricula-backend/internal/infrastructure/cache"
	"curricula-backend/internal/infrastructure/db"
	regUC "curricula-backend/internal/usecase/regulation"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := gdb.AutoMigrate(&regulation.RegulationVersion{}, &subject.Subject{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	regRepo := mysql.NewRegulationRepository(gdb)
	subjRepo := mysql.NewSubjectRepository(gdb)
	uow := mysql.NewGormUoW(gdb)
	usecase := regUC.NewUsecase(regRepo, subjRepo, uow)

	h := httpadp.NewHandler()
	rh := httpadp.NewRegulationHandler(usecase)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	// routes
	e.GET("/health", h.Health)

	regs := e.Group("/regulations", mw.JWTAuth([]byte(cfg.JWTSecret)))
	regs.GET("", rh.List)
	regs.GET("/version/:id", rh.GetVersion)
	regs.GET("/:code/versions", rh.ListVersionsByCode)

	// mutations require an HOD-level role and carry idempotency keys
	muts := regs.Group("", mw.RequireRoles("hod", "super"), mw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	muts.POST("/save-draft", rh.SaveDraft)
	muts.POST("/submit", rh.Submit)
	muts.DELETE("/:code", rh.DeleteFamily)
	muts.PUT("/:code/rename", rh.RenameFamily)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
