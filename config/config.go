package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultMinPasswordLength  = 8
	defaultActivationTokenTTL = 24 * time.Hour
	defaultResetCodeTTL       = time.Hour
	defaultHashIterations     = 200000
	defaultRateLimitRequests  = 10
	defaultRateLimitWindow    = time.Minute
	defaultJWKSRefresh        = time.Hour
)

// Identity provider variants selectable through identity.provider.
const (
	IdentityProviderCognito = "cognito"
	IdentityProviderLocal   = "local"
)

// Event publisher variants selectable through pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Database DatabaseConfig `json:"database" yaml:"database"`

	Identity IdentityConfig `json:"identity" yaml:"identity"`

	Cognito CognitoConfig `json:"cognito" yaml:"cognito"`

	Local LocalAuthConfig `json:"local" yaml:"local"`

	SMTP SMTPConfig `json:"smtp" yaml:"smtp"`

	Activation ActivationConfig `json:"activation" yaml:"activation"`

	PasswordReset PasswordResetConfig `json:"passwordReset" yaml:"passwordReset"`

	PasswordStrength PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`

	RateLimit RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	// PubSub configuration for user lifecycle events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DatabaseConfig holds settings that sit on top of the connection itself.
type DatabaseConfig struct {
	AutoMigrate        bool          `json:"autoMigrate" yaml:"autoMigrate"`
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// IdentityConfig selects the identity provider variant at startup.
type IdentityConfig struct {
	// Provider is "cognito" or "local"
	Provider string `json:"provider" yaml:"provider"`
}

// CognitoConfig defines the AWS Cognito user pool the service delegates credentials to
type CognitoConfig struct {
	Region          string `json:"region" yaml:"region"`
	UserPoolID      string `json:"userPoolId" yaml:"userPoolId"`
	ClientID        string `json:"clientId" yaml:"clientId"`
	ClientSecret    string `json:"clientSecret" yaml:"clientSecret"`
	AccessKeyID     string `json:"accessKeyId" yaml:"accessKeyId"`
	SecretAccessKey string `json:"secretAccessKey" yaml:"secretAccessKey"`

	// Endpoint overrides the Cognito API endpoint (cognito-local, localstack)
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	JWKSRefreshInterval time.Duration `json:"jwksRefreshInterval" yaml:"jwksRefreshInterval"`
}

// LocalAuthConfig configures the local development identity provider.
type LocalAuthConfig struct {
	// TokenSecret verifies HS256 bearer tokens from the development issuer
	TokenSecret    string `json:"tokenSecret" yaml:"tokenSecret"`
	Issuer         string `json:"issuer" yaml:"issuer"`
	Audience       string `json:"audience" yaml:"audience"`
	HashIterations int    `json:"hashIterations" yaml:"hashIterations"`
}

// SMTPConfig defines the outgoing mail server. An empty host logs emails instead of sending them.
type SMTPConfig struct {
	Host        string `json:"host" yaml:"host"`
	Port        int    `json:"port" yaml:"port"`
	Username    string `json:"username" yaml:"username"`
	Password    string `json:"password" yaml:"password"`
	FromAddress string `json:"fromAddress" yaml:"fromAddress"`
	TLS         bool   `json:"tls" yaml:"tls"`
}

// ActivationConfig defines the account activation step
type ActivationConfig struct {
	Required bool          `json:"required" yaml:"required"`
	TokenTTL time.Duration `json:"tokenTtl" yaml:"tokenTtl"`

	// Activation link templates, first non-empty wins
	BaseURL     string `json:"baseUrl" yaml:"baseUrl"`
	FrontendURL string `json:"frontendUrl" yaml:"frontendUrl"`
	AppURL      string `json:"appUrl" yaml:"appUrl"`
}

// PasswordResetConfig defines the local reset code lifetime
type PasswordResetConfig struct {
	CodeTTL time.Duration `json:"codeTtl" yaml:"codeTtl"`
}

// PasswordStrengthConfig defines password strength requirements
type PasswordStrengthConfig struct {
	MinLength int `json:"minLength" yaml:"minLength"`
}

// RateLimitConfig limits anonymous auth endpoints per client IP.
type RateLimitConfig struct {
	Disabled bool          `json:"disabled" yaml:"disabled"`
	Requests int           `json:"requests" yaml:"requests"`
	Window   time.Duration `json:"window" yaml:"window"`
	Burst    int           `json:"burst" yaml:"burst"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// ActivationBaseURL returns the first configured activation link template.
func (c ActivationConfig) ActivationBaseURL() string {
	for _, candidate := range []string{c.BaseURL, c.FrontendURL, c.AppURL} {
		if strings.TrimSpace(candidate) != "" {
			return strings.TrimSpace(candidate)
		}
	}

	return ""
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, err := findConfigFile(currEnv, searchPaths)
	if err != nil {
		return nil, err
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// SMTP_FROMADDRESS -> smtp.fromAddress, aligned with the keys already present in YAML
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(currEnv string, searchPaths []string) (string, error) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s.yaml not found in any search path", currEnv)
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills every unset tunable with its production default.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if c.Identity.Provider == "" {
		c.Identity.Provider = IdentityProviderLocal
	}
	c.Identity.Provider = strings.ToLower(strings.TrimSpace(c.Identity.Provider))
	if c.Cognito.JWKSRefreshInterval <= 0 {
		c.Cognito.JWKSRefreshInterval = defaultJWKSRefresh
	}
	if c.Local.HashIterations <= 0 {
		c.Local.HashIterations = defaultHashIterations
	}
	if c.Activation.TokenTTL <= 0 {
		c.Activation.TokenTTL = defaultActivationTokenTTL
	}
	if c.PasswordReset.CodeTTL <= 0 {
		c.PasswordReset.CodeTTL = defaultResetCodeTTL
	}
	if c.PasswordStrength.MinLength <= 0 {
		c.PasswordStrength.MinLength = defaultMinPasswordLength
	}
	if c.RateLimit.Requests <= 0 {
		c.RateLimit.Requests = defaultRateLimitRequests
	}
	if c.RateLimit.Window <= 0 {
		c.RateLimit.Window = defaultRateLimitWindow
	}
	if c.RateLimit.Burst <= 0 {
		c.RateLimit.Burst = c.RateLimit.Requests
	}
}

// Validate rejects configurations the process cannot start with.
func (c *Config) Validate() error {
	switch c.Identity.Provider {
	case IdentityProviderCognito, IdentityProviderLocal:
	default:
		return errors.Errorf("unknown identity provider: %s", c.Identity.Provider)
	}

	if c.Postgres == nil {
		return errors.New("postgres configuration is required")
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}
// until the first index without a host or port.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
