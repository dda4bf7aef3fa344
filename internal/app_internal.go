package internal

import (
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cihelper/internal/domain/entities"
)

// AppInternal holds everything the CLI entry point needs from the container.
type AppInternal struct {
	controllers []entities.Controller
	log         *logger.Logger
}

// NewAppInternal creates the application context.
func NewAppInternal(controllers *[]entities.Controller, log *logger.Logger) *AppInternal {
	return &AppInternal{controllers: *controllers, log: log}
}

// GetControllers returns every controller bound to a subcommand.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}

// GetLogger returns the process logger shared by all commands.
func (it *AppInternal) GetLogger() *logger.Logger {
	return it.log
}
