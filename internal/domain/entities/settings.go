package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	defaultPort            = "5000"
	defaultShutdownTimeout = 10 * time.Second
	defaultCommitLimit     = 10
	defaultCacheSize       = 64
	defaultCacheTTL        = 2 * time.Minute
	defaultHistoryLimit    = 5

	// fewer fetched commits than the activity threshold would penalise every repository
	minCommitLimit = 5
	maxCommitLimit = 100 // GitHub per_page ceiling
)

// Settings is the top-level configuration for repograde.
type Settings struct {
	Server  ServerSettings  `yaml:"server"`
	GitHub  GitHubSettings  `yaml:"github"`
	Storage StorageSettings `yaml:"storage"`
	Cache   CacheSettings   `yaml:"cache"`
	History HistorySettings `yaml:"history"`
}

// ServerSettings configures the HTTP API.
type ServerSettings struct {
	Port            string        `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// GitHubSettings configures access to the GitHub API.
type GitHubSettings struct {
	Token       string `yaml:"token"`    // Inline, ${ENV_VAR}, or file path
	BaseURL     string `yaml:"base_url"` // GitHub Enterprise API root
	CommitLimit int    `yaml:"commit_limit"`
}

// StorageSettings selects the history backend. An empty DatabaseURL keeps
// history in memory.
type StorageSettings struct {
	DatabaseURL string `yaml:"database_url"`
}

// CacheSettings configures the snapshot cache. Zero selects the default
// size; a negative size disables caching.
type CacheSettings struct {
	Size int           `yaml:"size"`
	TTL  time.Duration `yaml:"ttl"`
}

// HistorySettings configures history listing.
type HistorySettings struct {
	Limit int `yaml:"limit"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewSettings loads settings from the given YAML file (optional when path is
// empty), a local .env file and the process environment, in that order of
// increasing precedence.
func NewSettings(path string) (*Settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warnf("Failed to load .env file: %v", err)
	}

	settings := &Settings{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
		if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
		}
	}

	settings.GitHub.Token = resolveToken(settings.GitHub.Token)
	settings.Storage.DatabaseURL = expandEnv(settings.Storage.DatabaseURL)

	applyEnvironment(settings)
	applyDefaults(settings)

	if validateErr := validate(settings); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// LoadSettings resolves the config file (explicit path, REPOGRADE_CONFIG, or the
// default locations) and loads settings from it. A missing config file is not
// an error: environment and defaults still apply.
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		path = os.Getenv("REPOGRADE_CONFIG")
	}
	if path == "" {
		found, err := FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found, using environment and defaults")
		} else {
			path = found
		}
	}
	if path != "" {
		logger.Infof("Using config file: %s", path)
	}
	return NewSettings(path)
}

var configFileNames = []string{ //nolint:gochecknoglobals // lookup table
	".repograde.yaml",
	".repograde.yml",
	"repograde.yaml",
	"repograde.yml",
}

// FindConfigFile returns the first repograde config file in the working
// directory, ./.config, ./configs, $HOME or $HOME/.config.
func FindConfigFile() (string, error) {
	dirs := []string{".", ".config", "configs"}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		dirs = append(dirs, home, filepath.Join(home, ".config"))
	}

	for _, dir := range dirs {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
	}

	return "", errors.New("no repograde config file found")
}

// ListenAddress returns the configured port in host:port form.
func (s *Settings) ListenAddress() string {
	if strings.Contains(s.Server.Port, ":") {
		return s.Server.Port
	}
	return ":" + s.Server.Port
}

// expandEnv replaces ${VAR} references with their environment values.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

// resolveToken accepts an inline token, a ${VAR} reference or a path to a
// file holding the token.
func resolveToken(raw string) string {
	token := expandEnv(raw)
	if token == "" {
		return ""
	}
	if _, err := os.Stat(token); err != nil {
		return token
	}

	data, err := os.ReadFile(token)
	if err != nil {
		logger.Warnf("Could not read GitHub token file %q: %v", token, err)
		return token
	}
	logger.Debugf("Loaded GitHub token from %q", token)
	return strings.TrimSpace(string(data))
}

func applyEnvironment(settings *Settings) {
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		settings.Server.Port = port
	}
	if token := firstNonEmpty(os.Getenv("GITHUB_TOKEN"), os.Getenv("GH_TOKEN")); token != "" {
		settings.GitHub.Token = strings.TrimSpace(token)
	}
	if baseURL := strings.TrimSpace(os.Getenv("GITHUB_API_URL")); baseURL != "" {
		settings.GitHub.BaseURL = baseURL
	}
	if dsn := strings.TrimSpace(os.Getenv("DATABASE_URL")); dsn != "" {
		settings.Storage.DatabaseURL = dsn
	}
}

func applyDefaults(settings *Settings) {
	if settings.Server.Port == "" {
		settings.Server.Port = defaultPort
	}
	if settings.Server.ShutdownTimeout <= 0 {
		settings.Server.ShutdownTimeout = defaultShutdownTimeout
	}
	if settings.GitHub.CommitLimit <= 0 {
		settings.GitHub.CommitLimit = defaultCommitLimit
	}
	if settings.Cache.Size == 0 {
		settings.Cache.Size = defaultCacheSize
	}
	if settings.Cache.TTL <= 0 {
		settings.Cache.TTL = defaultCacheTTL
	}
	if settings.History.Limit <= 0 {
		settings.History.Limit = defaultHistoryLimit
	}
}

// validate checks for malformed configuration values.
func validate(settings *Settings) error {
	port := settings.Server.Port[strings.LastIndex(settings.Server.Port, ":")+1:]
	if n, err := strconv.Atoi(port); err != nil || n < 0 || n > 65535 {
		return fmt.Errorf("server.port %q is not a valid port", settings.Server.Port)
	}
	if limit := settings.GitHub.CommitLimit; limit < minCommitLimit || limit > maxCommitLimit {
		return fmt.Errorf(
			"github.commit_limit must be between %d and %d, got %d",
			minCommitLimit, maxCommitLimit, limit,
		)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
