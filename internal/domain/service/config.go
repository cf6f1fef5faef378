package service

import (
	"context"
	"errors"
	"fmt"
	"hue-controller/internal/domain/model"
	"hue-controller/internal/ports"

	"go.uber.org/zap"
)

var ErrNoBridge = errors.New("no bridge found")

// ConnectionService completes a bridge configuration: it finds the bridge
// when no host is given and obtains a username from the credential store or
// by pairing.
type ConnectionService struct {
	repo    ports.CredentialRepository
	locator ports.BridgeLocator
	pairer  ports.BridgePairer
	logger  *zap.Logger
}

func NewConnectionService(repo ports.CredentialRepository, locator ports.BridgeLocator, pairer ports.BridgePairer, logger *zap.Logger) *ConnectionService {
	return &ConnectionService{
		repo:    repo,
		locator: locator,
		pairer:  pairer,
		logger:  logger,
	}
}

func (s *ConnectionService) Resolve(ctx context.Context, cfg model.BridgeConfig) (model.BridgeConfig, error) {
	if cfg.API == "" {
		cfg.API = model.BridgeAPIV1
	}

	if cfg.Host == "" {
		hosts, err := s.locator.Locate(ctx)
		if err != nil {
			return cfg, fmt.Errorf("locating bridge: %w", err)
		}
		if len(hosts) == 0 {
			return cfg, ErrNoBridge
		}
		cfg.Host = hosts[0]
		s.logger.Info("bridge discovered", zap.String("host", cfg.Host), zap.Int("candidates", len(hosts)))
	}

	if cfg.Username != "" {
		return cfg, nil
	}

	creds, err := s.repo.Get(ctx)
	if err != nil {
		return cfg, fmt.Errorf("reading credentials: %w", err)
	}
	if user := creds.Username(cfg.Host); user != "" {
		cfg.Username = user
		return cfg, nil
	}

	s.logger.Info("no username stored for bridge, pairing", zap.String("host", cfg.Host))
	user, err := s.pairer.Pair(ctx, cfg.Host)
	if err != nil {
		return cfg, fmt.Errorf("pairing with bridge %s: %w", cfg.Host, err)
	}
	cfg.Username = user

	creds.Set(cfg.Host, user)
	if err := s.repo.Save(ctx, creds); err != nil {
		return cfg, fmt.Errorf("saving credentials: %w", err)
	}
	return cfg, nil
}
