package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/azozal-iraqi/Skystore/config"
	"github.com/azozal-iraqi/Skystore/middleware"
	"github.com/azozal-iraqi/Skystore/notify"
	"github.com/azozal-iraqi/Skystore/routes"
	"github.com/azozal-iraqi/Skystore/store"
	"github.com/azozal-iraqi/Skystore/uploads"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	initLogger(cfg)
	defer func() { _ = zap.L().Sync() }()

	st, err := store.Open(cfg.DataDir)
	if err != nil {
		zap.S().Fatalf("store: %v", err)
	}
	defer st.Close()

	queue := notify.NewQueue(notify.NewTelegram(cfg.BotToken, cfg.ChatID))

	r := newRouter(cfg, st, queue)

	// Nightly uploads backup at 02:00, keeping four days of snapshots.
	sched := cron.New()
	if _, err := sched.AddFunc("0 2 * * *", func() {
		backupUploads(cfg.UploadsDir, cfg.BackupDir, 4*24*time.Hour)
	}); err != nil {
		zap.S().Warnf("backup schedule: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{Addr: "0.0.0.0:" + cfg.Port, Handler: r}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zap.S().Infof("Sky Store is running on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		queue.Run(gctx)
		return nil
	})
	g.Go(func() error {
		sched.Start()
		<-gctx.Done()
		sched.Stop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		zap.S().Fatalf("server: %v", err)
	}
	zap.S().Info("shutdown complete")
}

func newRouter(cfg *config.Config, st *store.Store, queue *notify.Queue) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), middleware.Recovery())
	r.MaxMultipartMemory = uploads.MaxFileSize

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	r.Static("/uploads", cfg.UploadsDir)
	r.GET("/", func(c *gin.Context) {
		c.File(filepath.Join(cfg.PublicDir, "index.html"))
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	routes.SetupRoutes(r, st, queue, cfg)
	return r
}

// initLogger installs the global zap logger: console output to stdout, plus
// a JSON file sink rotated by lumberjack when LOG_FILE is set.
func initLogger(cfg *config.Config) {
	var zapConfig zap.Config
	if cfg.LogMode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.OutputPaths = []string{"stdout"}

	var logger *zap.Logger
	if cfg.LogFile != "" {
		fileSink := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
		}
		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(fileSink),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller())
	} else {
		var err error
		logger, err = zapConfig.Build(zap.AddCaller())
		if err != nil {
			log.Fatalf("logger: %v", err)
		}
	}
	zap.ReplaceGlobals(logger)
}
