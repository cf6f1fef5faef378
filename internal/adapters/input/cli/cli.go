package cli

import (
	"context"
	"fmt"
	"hue-controller/internal/adapters/output/clip"
	"hue-controller/internal/adapters/output/discovery"
	"hue-controller/internal/adapters/output/hue"
	"hue-controller/internal/adapters/output/persistence"
	"hue-controller/internal/domain/model"
	"hue-controller/internal/domain/service"
	"hue-controller/internal/ports"
	"time"

	"go.uber.org/zap"
)

const discoveryTimeout = 5 * time.Second

// Run parses the command line, connects to the bridge and executes one
// command. Bridge and device failures are fatal.
func Run(ctx context.Context, args []string) error {
	options, rest, err := ParseOptions(args)
	if err != nil {
		return err
	}
	settings, err := LoadSettings(options)
	if err != nil {
		return err
	}
	logger, err := NewLogger(settings.LogConfig)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if err := Execute(ctx, settings, rest, logger); err != nil {
		logger.Fatal("command failed", zap.Error(err))
	}
	return nil
}

func Execute(ctx context.Context, settings model.Settings, args []string, logger *zap.Logger) error {
	repo := persistence.NewJSONCredentialRepository(settings.CredentialsFile)
	connections := service.NewConnectionService(repo, discovery.NewLocator(discoveryTimeout, logger), hue.NewPairer(), logger)

	bridge, err := connections.Resolve(ctx, settings.Bridge)
	if err != nil {
		return err
	}
	port, err := NewLightPort(bridge, logger)
	if err != nil {
		return err
	}

	controller, err := service.NewController(ctx, port, settings.ReferenceLight, logger)
	if err != nil {
		return err
	}
	return service.NewDispatcher(controller, logger).Dispatch(ctx, args)
}

func NewLightPort(bridge model.BridgeConfig, logger *zap.Logger) (ports.LightPort, error) {
	logger = logger.With(zap.String("bridge", bridge.Host), zap.String("api", string(bridge.API)))
	switch bridge.API {
	case model.BridgeAPIV1, "":
		return hue.NewClient(bridge.Host, bridge.Username, logger), nil
	case model.BridgeAPIV2:
		client, err := clip.NewClient(bridge.Host, bridge.Username, logger)
		if err != nil {
			return nil, err
		}
		return client, nil
	}
	return nil, fmt.Errorf("unknown bridge api %q", bridge.API)
}
