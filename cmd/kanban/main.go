package main

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	httpadapter "github.com/gmllt/kanban/internal/adapter/http"
	"github.com/gmllt/kanban/internal/adapter/http/handlers"
	httpmiddleware "github.com/gmllt/kanban/internal/adapter/http/middleware"
	"github.com/gmllt/kanban/internal/adapter/store/filestore"
	"github.com/gmllt/kanban/internal/adapter/store/s3store"
	"github.com/gmllt/kanban/internal/app/service"
	"github.com/gmllt/kanban/internal/config"
	"github.com/gmllt/kanban/internal/core/ports"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg, err := config.Load("config.yml")
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	var store ports.BoardStore
	switch cfg.Storage.Backend {
	case "s3":
		s3, err := s3store.New(cfg.Storage.S3)
		if err != nil {
			logger.Fatal("failed to init S3 store", zap.Error(err))
		}
		if err := s3.EnsureBucket(context.Background()); err != nil {
			logger.Fatal("bucket check failed", zap.Error(err))
		}
		store = s3
	default:
		store = filestore.New(cfg.Storage.File)
	}
	logger.Info("storage ready", zap.String("backend", cfg.Storage.Backend))

	boards := service.NewBoardService(store, nil)

	r := mux.NewRouter()
	r.Use(httpmiddleware.RequestLogger(logger))
	httpadapter.RegisterRoutes(r, handlers.NewBoardHandler(boards))

	// The board frontend: static files, served last so /api wins.
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.StaticDir)))

	logger.Info("kanban server starting", zap.String("addr", cfg.Listen))
	if err := http.ListenAndServe(cfg.Listen, r); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
