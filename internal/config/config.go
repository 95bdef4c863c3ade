package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/portal-cli/internal/adapters/gateway"
	tomlrepo "github.com/bnema/portal-cli/internal/adapters/repo/toml"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "PORTAL"
	DirName    = ".portal"
	ConfigFile = "config.toml"
	EnvFile    = ".env"

	KeyBaseURL            = "api.base_url"
	KeyTimeout            = "api.timeout"
	KeyRateLimit          = "api.rate_limit"
	KeyRateBurst          = "api.rate_burst"
	KeyIncludeCredentials = "api.include_credentials"
	KeyLoginPath          = "api.login_path"
	KeyLogLevel           = "log.level"
	KeyLogFormat          = "log.format"
	KeySessionPath        = tomlrepo.SessionPathKey
	KeySecretsDir         = "secrets.dir"
	KeySecretsBackend     = "secrets.backend"
	KeyMetricsEnabled     = "metrics.enabled"
	KeyTracingEnabled     = "tracing.enabled"

	SecretsBackendChain = "chain"
	SecretsBackendFile  = "file"
)

type Options struct {
	// Home replaces the user's home directory when set.
	Home string
	// ConfigFile replaces ~/.portal/config.toml when set.
	ConfigFile string
}

type Settings struct {
	API            gateway.Config
	LogLevel       string
	LogFormat      string
	SessionPath    string
	SecretsDir     string
	SecretsBackend string
	Metrics        bool
	Tracing        bool
}

// Load layers defaults, the TOML config file, .env files and PORTAL_* variables, later layers winning.
// Missing files are not an error.
func Load(opts Options) (*viper.Viper, Settings, error) {
	home := strings.TrimSpace(opts.Home)
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return nil, Settings{}, fmt.Errorf("resolve home directory: %w", err)
		}
	}
	dir := filepath.Join(home, DirName)

	if err := loadEnvFiles(EnvFile, filepath.Join(dir, EnvFile)); err != nil {
		return nil, Settings{}, err
	}

	v := viper.New()
	setDefaults(v, dir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath := strings.TrimSpace(opts.ConfigFile)
	if configPath == "" {
		configPath = filepath.Join(dir, ConfigFile)
	}
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, Settings{}, fmt.Errorf("read config %s: %w", configPath, err)
	}

	settings, err := decode(v)
	if err != nil {
		return nil, Settings{}, err
	}

	return v, settings, nil
}

func setDefaults(v *viper.Viper, dir string) {
	defaults := gateway.DefaultConfig()

	v.SetDefault(KeyBaseURL, defaults.BaseURL)
	v.SetDefault(KeyTimeout, 30*time.Second)
	v.SetDefault(KeyRateLimit, 0)
	v.SetDefault(KeyRateBurst, 0)
	v.SetDefault(KeyIncludeCredentials, defaults.IncludeCredentials)
	v.SetDefault(KeyLoginPath, defaults.LoginPath)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeySessionPath, filepath.Join(dir, "session.toml"))
	v.SetDefault(KeySecretsDir, filepath.Join(dir, "secrets"))
	v.SetDefault(KeySecretsBackend, SecretsBackendChain)
	v.SetDefault(KeyMetricsEnabled, false)
	v.SetDefault(KeyTracingEnabled, false)
}

func decode(v *viper.Viper) (Settings, error) {
	api := gateway.DefaultConfig()
	api.BaseURL = strings.TrimSpace(v.GetString(KeyBaseURL))
	api.Timeout = v.GetDuration(KeyTimeout)
	api.RateLimit = v.GetFloat64(KeyRateLimit)
	api.RateBurst = v.GetInt(KeyRateBurst)
	api.IncludeCredentials = v.GetBool(KeyIncludeCredentials)
	api.LoginPath = v.GetString(KeyLoginPath)

	backend := strings.ToLower(strings.TrimSpace(v.GetString(KeySecretsBackend)))
	switch backend {
	case SecretsBackendChain, SecretsBackendFile:
	default:
		return Settings{}, fmt.Errorf("unsupported secrets backend %q", backend)
	}

	return Settings{
		API:            api,
		LogLevel:       v.GetString(KeyLogLevel),
		LogFormat:      v.GetString(KeyLogFormat),
		SessionPath:    v.GetString(KeySessionPath),
		SecretsDir:     v.GetString(KeySecretsDir),
		SecretsBackend: backend,
		Metrics:        v.GetBool(KeyMetricsEnabled),
		Tracing:        v.GetBool(KeyTracingEnabled),
	}, nil
}

// loadEnvFiles never overrides variables that are already set.
func loadEnvFiles(paths ...string) error {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load env file %s: %w", path, err)
		}
	}
	return nil
}
