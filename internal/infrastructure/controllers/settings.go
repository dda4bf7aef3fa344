package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/cihelper/internal/domain/entities"
)

// loadSettings reads the file named by the persistent --config flag, or the
// first one found in the default locations.
func loadSettings(cmd *cobra.Command, log logger.FieldLogger) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	return entities.LoadSettings(configPath, log)
}

// stringOverride returns the flag value when the user set it, otherwise fallback.
func stringOverride(cmd *cobra.Command, name, fallback string) string {
	if cmd.Flags().Changed(name) {
		value, _ := cmd.Flags().GetString(name)
		return value
	}
	return fallback
}
