package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "dealership-ops-api/internal/adapter/http"
	mw "dealership-ops-api/internal/adapter/middleware"
	"dealership-ops-api/internal/adapter/repository/mysql"
	"dealership-ops-api/internal/config"
	"dealership-ops-api/internal/domain/inventory"
	"dealership-ops-api/internal/domain/reviewlog"
	submissionDomain "dealership-ops-api/internal/domain/submission"
	"dealership-ops-api/internal/infrastructure/cache"
	"dealership-ops-api/internal/infrastructure/db"
	reviewUC "dealership-ops-api/internal/usecase/review"
	submissionUC "dealership-ops-api/internal/usecase/submission"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := gdb.AutoMigrate(
		&submissionDomain.Submission{},
		&reviewlog.ReviewLog{},
		&inventory.Vehicle{},
	); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	subRepo := mysql.NewSubmissionRepository(gdb)
	logRepo := mysql.NewReviewLogRepository(gdb)
	vehRepo := mysql.NewVehicleRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	subUC := submissionUC.NewUsecase(subRepo, logRepo)
	revUC := reviewUC.NewUsecase(uow, vehRepo)

	h := httpadp.NewHandler()
	sh := httpadp.NewSubmissionHandler(subUC)
	rh := httpadp.NewReviewHandler(revUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())
	e.Use(mw.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	// routes
	e.GET("/health", h.Health)

	e.POST("/submissions", sh.Create)
	e.GET("/submissions", sh.ListAll)
	e.GET("/submissions/mine", sh.ListMine)
	e.GET("/submissions/pending", sh.ListPending)
	e.GET("/submissions/stats", sh.Stats)
	e.GET("/submissions/:submission_id", sh.GetWithHistory)

	e.POST("/submissions/:submission_id/review/supervisor", rh.ReviewSupervisor)
	e.POST("/submissions/:submission_id/review/manager", rh.ReviewManager)
	e.POST("/submissions/:submission_id/resubmit", rh.Resubmit)
	e.POST("/submissions/bulk", rh.BulkAction)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
