package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/bnema/portal-cli/internal/adapters/api/rest"
	"github.com/bnema/portal-cli/internal/adapters/gateway"
	"github.com/bnema/portal-cli/internal/adapters/navigation"
	"github.com/bnema/portal-cli/internal/adapters/render/listing"
	tomlrepo "github.com/bnema/portal-cli/internal/adapters/repo/toml"
	chainstore "github.com/bnema/portal-cli/internal/adapters/secrets/chain"
	filestore "github.com/bnema/portal-cli/internal/adapters/secrets/file"
	"github.com/bnema/portal-cli/internal/application"
	"github.com/bnema/portal-cli/internal/config"
	"github.com/bnema/portal-cli/internal/logging"
	"github.com/bnema/portal-cli/internal/ports"
	"github.com/bnema/portal-cli/internal/telemetry"
	"github.com/bnema/portal-cli/internal/version"
	"github.com/sirupsen/logrus"
)

type app struct {
	settings  config.Settings
	logger    *logrus.Logger
	session   *application.SessionService
	stores    *application.Stores
	navigator *navigation.Tracker
	renderer  func(...listing.View) (string, error)
	shutdown  func(context.Context) error
	now       func() time.Time
}

func wireApp() (*app, error) {
	cfg, settings, err := config.Load(config.Options{})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(logging.Options{
		Level:  settings.LogLevel,
		Format: settings.LogFormat,
		Output: os.Stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("configure logging: %w", err)
	}

	repo, err := tomlrepo.NewSessionRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire session repository: %w", err)
	}

	secretStore, err := wireSecretStore(settings, logger)
	if err != nil {
		return nil, err
	}

	instruments, shutdown := telemetry.Init(telemetry.Options{
		Metrics: settings.Metrics,
		Tracing: settings.Tracing,
		Version: version.Version,
	}, logger)

	navigator := navigation.NewTracker(settings.API.LoginPath, os.Stderr)
	state := application.NewSessionState()

	// The gateway reports rejected sessions to the session service, which itself talks to the
	// backend through the gateway.
	var sessions *application.SessionService
	gatewayOpts := []gateway.Option{
		gateway.WithTokenSource(state),
		gateway.WithNavigator(navigator),
		gateway.WithSessionRejectedHook(func(ctx context.Context) { sessions.Expire(ctx) }),
		gateway.WithLogger(logger),
	}
	if instruments.Registry != nil {
		gatewayOpts = append(gatewayOpts, gateway.WithMetrics(gateway.NewMetrics(instruments.Registry)))
	}
	if instruments.TracerProvider != nil {
		gatewayOpts = append(gatewayOpts, gateway.WithTracerProvider(instruments.TracerProvider))
	}

	client, err := gateway.New(settings.API, gatewayOpts...)
	if err != nil {
		return nil, fmt.Errorf("wire gateway: %w", err)
	}

	sessions = application.NewSessionService(state, rest.NewSessionAPI(client), repo, secretStore, ports.SystemClock{}, logger)

	stores := application.NewStores(application.APIs{
		Projects:      rest.NewProjectAPI(client),
		Tasks:         rest.NewTaskAPI(client),
		Deliverables:  rest.NewDeliverableAPI(client),
		Users:         rest.NewUserAPI(client),
		Notifications: rest.NewNotificationAPI(client),
		Cart:          rest.NewCartAPI(client),
		Inventory:     rest.NewInventoryAPI(client),
		Sheets:        rest.NewSheetAPI(client),
	})

	return &app{
		settings:  settings,
		logger:    logger,
		session:   sessions,
		stores:    stores,
		navigator: navigator,
		renderer:  listing.Render,
		shutdown:  shutdown,
		now:       time.Now,
	}, nil
}

func wireSecretStore(settings config.Settings, logger *logrus.Logger) (ports.SecretStore, error) {
	if settings.SecretsBackend == config.SecretsBackendFile {
		return filestore.NewStore(settings.SecretsDir), nil
	}

	store, err := chainstore.NewPassFirstWithFileFallback(settings.SecretsDir)
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	return store.WithLogger(logger), nil
}
