package main

import (
	"fmt"
	"log"

	"ncrpintel/internal/config"
	"ncrpintel/internal/extract"
	"ncrpintel/internal/handler"
	"ncrpintel/internal/pipeline"
	"ncrpintel/internal/router"
	"ncrpintel/internal/store"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	master, err := store.Open(cfg.Store.MasterPath)
	if err != nil {
		return fmt.Errorf("failed to open master store: %w", err)
	}
	defer func() { _ = master.Close() }()

	// Initialize pipeline
	extractor := extract.NewRegistry()
	pipe := pipeline.New(extractor, master)

	// Initialize handlers
	complaintH := handler.NewComplaintHandler(pipe, master, cfg.Upload.MaxFileSizeBytes())
	healthH := handler.NewHealthHandler()

	// Setup router
	r := router.Setup(complaintH, healthH)

	log.Printf("Server starting on %s (master store: %s, %d complaints loaded)",
		cfg.Server.Port, cfg.Store.MasterPath, master.Count())
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
