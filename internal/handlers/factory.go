package handlers

import (
	"go.uber.org/zap"

	"github.com/kevcourtright-art/boostly-sdr-calculator-new/internal/interfaces"
	"github.com/kevcourtright-art/boostly-sdr-calculator-new/internal/services"
)

// HandlerFactory creates handlers with proper dependency injection
type HandlerFactory struct {
	// Common services
	commonServices *CommonServices

	// Services - these should be interfaces in production
	commissionService interfaces.CommissionService

	// Configuration
	commissionConfig services.CommissionConfig

	// Logger
	logger *zap.Logger
}

// HandlerFactoryConfig contains all configuration for the handler factory
type HandlerFactoryConfig struct {
	// Services - pass concrete implementations that satisfy the interfaces
	CommissionService interfaces.CommissionService

	// Configuration
	CommissionConfig services.CommissionConfig

	// Logger
	Logger *zap.Logger
}

// NewHandlerFactory creates a new handler factory with all dependencies
func NewHandlerFactory(config HandlerFactoryConfig) *HandlerFactory {
	if config.Logger == nil {
		config.Logger = zap.L()
	}

	// Create common services with interfaces
	commonServices := NewCommonServices(CommonServicesConfig{
		CommissionService: config.CommissionService,
		Logger:            config.Logger,
	})

	return &HandlerFactory{
		commonServices:    commonServices,
		commissionService: config.CommissionService,
		commissionConfig:  config.CommissionConfig,
		logger:            config.Logger,
	}
}

// CreateDefaultFactory creates a factory with concrete implementations
func CreateDefaultFactory(commissionConfig services.CommissionConfig) *HandlerFactory {
	logger := zap.L()

	commissionService := services.NewCommissionCalculator()

	return NewHandlerFactory(HandlerFactoryConfig{
		CommissionService: commissionService,
		CommissionConfig:  commissionConfig,
		Logger:            logger,
	})
}

// Handler creation methods

// NewCommissionHandler creates a new commission handler
func (f *HandlerFactory) NewCommissionHandler() *CommissionHandler {
	return NewCommissionHandler(
		f.commonServices,
		f.commissionService,
		f.commissionConfig,
	)
}

// NewPageHandler creates a new page handler
func (f *HandlerFactory) NewPageHandler() *PageHandler {
	return NewPageHandler(
		f.commonServices,
		f.commissionService,
		f.commissionConfig,
	)
}

// NewHealthHandler creates a new health handler
func (f *HandlerFactory) NewHealthHandler() *HealthHandler {
	return NewHealthHandler()
}

// GetCommonServices returns the common services instance
func (f *HandlerFactory) GetCommonServices() *CommonServices {
	return f.commonServices
}

// GetCommissionConfig returns the commission settings the factory was built with
func (f *HandlerFactory) GetCommissionConfig() services.CommissionConfig {
	return f.commissionConfig
}

// GetLogger returns the logger
func (f *HandlerFactory) GetLogger() *zap.Logger {
	return f.logger
}
