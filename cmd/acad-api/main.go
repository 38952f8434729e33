package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/acad-api/api/swagger"
	"github.com/noah-isme/acad-api/internal/handler"
	"github.com/noah-isme/acad-api/internal/middleware"
	"github.com/noah-isme/acad-api/internal/repository"
	"github.com/noah-isme/acad-api/internal/service"
	"github.com/noah-isme/acad-api/pkg/config"
	"github.com/noah-isme/acad-api/pkg/database"
	"github.com/noah-isme/acad-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/acad-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/acad-api/pkg/middleware/requestid"
)

// @title Academic Record Service
// @version 1.0.0
// @description CRUD over mahasiswa, mata kuliah, KRS and bobot nilai plus IPS calculation
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect database", "error", err)
	}
	defer db.Close()

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	var metricsSvc *service.MetricsService
	if cfg.Metrics.Enabled {
		metricsSvc = service.NewMetricsService()
	}

	studentRepo := repository.NewStudentRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	krsRepo := repository.NewKRSRepository(db)
	weightRepo := repository.NewGradeWeightRepository(db)
	statusRepo := repository.NewStatusRepository(db)

	studentSvc := service.NewStudentService(studentRepo, nil, logr)
	courseSvc := service.NewCourseService(courseRepo, nil, logr)
	krsSvc := service.NewKRSService(krsRepo, nil, metricsSvc, logr)
	ipsSvc := service.NewIPSService(krsRepo, studentRepo, nil, metricsSvc, logr)
	weightSvc := service.NewGradeWeightService(weightRepo, logr)
	statusSvc := service.NewStatusService(statusRepo, logr)
	exportSvc := service.NewExportService(krsRepo, nil, nil, logr)

	studentHandler := handler.NewStudentHandler(studentSvc)
	courseHandler := handler.NewCourseHandler(courseSvc)
	krsHandler := handler.NewKRSHandler(krsSvc, exportSvc)
	ipsHandler := handler.NewIPSHandler(ipsSvc)
	weightHandler := handler.NewGradeWeightHandler(weightSvc)
	statusHandler := handler.NewStatusHandler(statusSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/", statusHandler.Root)
	r.GET("/health", statusHandler.Health)
	if cfg.Metrics.Enabled {
		r.GET("/metrics", metricsHandler.Prometheus)
	}
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group("/api/acad")
	{
		api.GET("/mahasiswa", studentHandler.List)
		api.GET("/mahasiswa/:nim", studentHandler.Get)
		api.POST("/mahasiswa", studentHandler.Create)

		api.GET("/matakuliah", courseHandler.List)
		api.POST("/matakuliah", courseHandler.Create)

		api.GET("/krs/:nim", krsHandler.List)
		api.GET("/krs/:nim/export", krsHandler.Export)
		api.POST("/krs", krsHandler.Create)

		api.POST("/calculate-ips", ipsHandler.Calculate)
		api.GET("/bobot", weightHandler.List)
		api.GET("/db-status", statusHandler.DBStatus)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
