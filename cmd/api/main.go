package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"hospital-api/internal/core/auth"
	"hospital-api/internal/core/cache"
	"hospital-api/internal/core/config"
	"hospital-api/internal/core/database"
	"hospital-api/internal/core/logger"
	"hospital-api/internal/core/server"
	"hospital-api/internal/domain"
	"hospital-api/internal/repo"
	"hospital-api/internal/service"
	"hospital-api/internal/transport/http/handler"
	"hospital-api/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	var log *zap.Logger
	var cleanup func()
	if cfg.Log.File != "" {
		log, cleanup = logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON,
			cfg.Log.File, cfg.Log.MaxSizeMB, cfg.Log.MaxBackups, cfg.Log.MaxAgeDays, cfg.Log.Compress)
	} else {
		log, cleanup = logger.New(cfg.Log.Level, cfg.Log.JSON)
	}
	defer cleanup()

	// 数据库（失败直接 Fatal）
	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(
			&domain.User{},
			&domain.Hospital{},
			&domain.Patient{},
			&domain.Doctor{},
			&domain.Appointment{},
			&domain.Payment{},
			&domain.MedicalRecord{},
			&domain.Review{},
		); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	// redis 没配就不开缓存
	var c *cache.Cache
	if cfg.Redis.Addr != "" {
		c = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		log.Info("redis cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	userRepo := repo.NewUserRepo(db)
	patientRepo := repo.NewPatientRepo(db)
	doctorRepo := repo.NewDoctorRepo(db)
	hospitalRepo := repo.NewHospitalRepo(db)
	appointmentRepo := repo.NewAppointmentRepo(db)
	paymentRepo := repo.NewPaymentRepo(db)
	recordRepo := repo.NewMedicalRecordRepo(db)
	reviewRepo := repo.NewReviewRepo(db)

	r := router.New(router.Deps{
		Log:           log,
		JWTer:         jwter,
		Users:         userRepo,
		User:          handler.NewUserHandler(service.NewUserService(userRepo, jwter), log),
		Patient:       handler.NewPatientHandler(service.NewPatientService(patientRepo), log),
		Doctor:        handler.NewDoctorHandler(service.NewDoctorService(doctorRepo), log),
		Hospital:      handler.NewHospitalHandler(service.NewHospitalService(hospitalRepo, c), log),
		Appointment:   handler.NewAppointmentHandler(service.NewAppointmentService(appointmentRepo), log),
		Payment:       handler.NewPaymentHandler(service.NewPaymentService(paymentRepo, appointmentRepo), log),
		MedicalRecord: handler.NewMedicalRecordHandler(service.NewMedicalRecordService(recordRepo), log),
		Review:        handler.NewReviewHandler(service.NewReviewService(reviewRepo), log),
	})

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("hospital api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("api", baseURL+"/api"),
	)

	// 异步启动
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("hospital api start FAILED", zap.Error(err))
		}
	}()
	log.Info("hospital api started SUCCESS")

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	if c != nil {
		_ = c.RDB.Close()
	}
	log.Info("hospital api stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
