package logging

import "go.uber.org/zap"

// New builds the zap logger for the given environment name. development and
// production map to zap's presets, anything else gets the example logger.
func New(env string) (*zap.Logger, error) {
	switch env {
	case "development":
		return zap.NewDevelopment()
	case "production":
		return zap.NewProduction()
	default:
		return zap.NewExample(), nil
	}
}
