package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"smartbooker/internal/config"
	"smartbooker/internal/platform"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// newAuthenticatedSession probes the platform, starts a browser session and
// logs in with the credentials from the environment. The caller owns Close.
func newAuthenticatedSession(ctx context.Context, cfg config.PlatformConfig) (*platform.ChromeSession, error) {
	waitTimeout := time.Duration(cfg.WaitTimeoutSeconds) * time.Second

	probe := platform.NewProbe(cfg.BaseURL, waitTimeout)
	defer func() { _ = probe.Close() }()
	if err := probe.Check(ctx); err != nil {
		return nil, fmt.Errorf("platform unreachable, not starting a browser: %w", err)
	}

	session := platform.NewChromeSession(cfg, slog.Default())
	creds := platform.Credentials{
		Username: cfg.Username,
		Password: cfg.Password,
	}
	if err := session.Authenticate(ctx, creds); err != nil {
		_ = session.Close()
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	return session, nil
}
