package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/evomind/evomind-api/internal/config"
	"github.com/evomind/evomind-api/internal/domain"
	"github.com/evomind/evomind-api/internal/generation"
	"github.com/evomind/evomind-api/internal/platform/ocr"
	"github.com/evomind/evomind-api/internal/platform/payment"
	"github.com/evomind/evomind-api/internal/service/auth"
	"github.com/evomind/evomind-api/internal/store"
)

// application holds all the shared application dependencies.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// State. One sequence numbers orders, SMS receipts and refund tickets.
	store    store.Store
	sequence *domain.Sequence

	// Collaborators
	synthesiser generation.Synthesiser
	recognizer  ocr.Recognizer
	verifier    payment.Verifier
	authService *auth.Service
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	seq := domain.NewSequence(nil)
	app := &application{
		config:      cfg,
		logger:      logger,
		sequence:    seq,
		store:       store.NewMemoryStore(store.WithOrderSequence(seq), store.WithLogger(logger)),
		synthesiser: generation.NewPlaceholderSynthesiser(),
		recognizer:  ocr.StubRecognizer{},
		verifier:    payment.StubVerifier{},
	}

	var err error
	app.authService, err = auth.NewService(auth.NewTokenIssuer(), seq, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}

	logger.Info("Application dependencies initialized", "store", "memory")
	return app, nil
}

// Run starts the application server and blocks until it shuts down.
func (app *application) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	return app.startHTTPServer(ctx, app.setupRouter())
}
