package server

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"leadline/internal/api"
	"leadline/internal/config"
	"leadline/internal/settings"
)

type Server struct {
	httpServer *http.Server
	db         *sql.DB
}

func New(cfg *config.Config) (*Server, error) {
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := settings.NewStore(db)

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}

	router := api.NewRouter(cfg, store, upgrader)

	return &Server{
		httpServer: &http.Server{
			Addr: ":" + cfg.Port,
			// no read/write timeouts: media-stream websockets stay open
			// for the duration of a call
			Handler:     router,
			IdleTimeout: 60 * time.Second,
		},
		db: db,
	}, nil
}

func (s *Server) Start() error {
	zap.L().Info("starting server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}
	return s.db.Close()
}
