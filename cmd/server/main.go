package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/gurukul-app/backend/internal/api"
	"github.com/gurukul-app/backend/internal/auth"
	"github.com/gurukul-app/backend/internal/config"
	"github.com/gurukul-app/backend/internal/storage/sqlite"
	"github.com/gurukul-app/backend/internal/store"
	"github.com/gurukul-app/backend/pkg/logging"
)

const sessionTokenTTL = 24 * time.Hour

func main() {
	logging.Setup()

	cfg := config.Load()

	persister, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer persister.Close()
	slog.Info("storage initialized", "database", cfg.DBPath)

	st, err := store.Open(context.Background(), persister)
	if err != nil {
		slog.Error("failed to open document store", "error", err)
		os.Exit(1)
	}

	var admin auth.AdminVerifier
	if cfg.AdminPasswordBcrypt != "" {
		admin = auth.BcryptVerifier{ID: cfg.AdminID, Hash: []byte(cfg.AdminPasswordBcrypt)}
	} else {
		admin = auth.StaticVerifier{ID: cfg.AdminID, Password: cfg.AdminPassword}
	}
	if cfg.JWTSecret == "dev-only-secret-change-me" {
		slog.Warn("JWT_SECRET not set, using development default")
	}
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, sessionTokenTTL)

	server := api.NewServer(st, admin, jwtManager)

	// h2c keeps the local UI on plain HTTP while still allowing HTTP/2.
	h2cHandler := h2c.NewHandler(server.Handler(), &http2.Server{})

	addr := fmt.Sprintf(":%d", cfg.Port)
	slog.Info("server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
	if err := http.ListenAndServe(addr, h2cHandler); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
