package logging

import (
	"go.uber.org/zap"
)

// New membuat zap logger sesuai APP_ENV dan menjadikannya logger global.
func New(appEnv string) (*zap.SugaredLogger, error) {
	logger, err := build(appEnv)
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger.Sugar(), nil
}

func build(appEnv string) (*zap.Logger, error) {
	switch appEnv {
	case "local", "development", "":
		return zap.NewDevelopment()
	case "test":
		return zap.NewNop(), nil
	default:
		return zap.NewProduction()
	}
}

// Nop returns a logger that discards everything.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
