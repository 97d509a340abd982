package config

import (
	"pdf-extract-service/internal/domain"
	"pdf-extract-service/internal/service"
	"pdf-extract-service/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config            domain.Config
	Logger            domain.Logger
	TextExtractor     domain.TextExtractor
	ExtractionService domain.ExtractionService
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	extractor := service.NewFitzExtractor(appLogger)
	extractionService := service.NewExtractionService(extractor, appLogger)

	return &Container{
		Config:            config,
		Logger:            appLogger,
		TextExtractor:     extractor,
		ExtractionService: extractionService,
	}
}
