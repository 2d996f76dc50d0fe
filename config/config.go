package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultNamespace          = "furnishop"
	defaultStoreDir           = ".furnishop"
	defaultPaymentDelay       = 1500 * time.Millisecond
	defaultWorkerPort         = 8081
)

// Store drivers.
const (
	StoreDriverFile = "file"
	StoreDriverMem  = "mem"
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

	// Store configures the durable key-value store scoped to this client
	Store StoreConfig `json:"store" yaml:"store"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Checkout configuration for the simulated payment step
	Checkout *CheckoutConfig `json:"checkout" yaml:"checkout"`

	// Orders configuration for the order lifecycle
	Orders *OrdersConfig `json:"orders" yaml:"orders"`

	// PubSub configuration for order event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for order confirmation QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Worker configuration for the order event push receiver
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

// StoreConfig selects where the client-scoped records live
type StoreConfig struct {
	// Driver is "file" (directory on disk) or "mem" (process memory)
	Driver string `json:"driver" yaml:"driver"`

	// Dir is the directory used by the file driver
	Dir string `json:"dir" yaml:"dir"`

	// Namespace prefixes every record key, one namespace per browsing client
	Namespace string `json:"namespace" yaml:"namespace"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`
}

// CheckoutConfig defines the checkout behaviour
type CheckoutConfig struct {
	// PaymentDelay emulates payment processing before an order is created
	PaymentDelay time.Duration `json:"paymentDelay" yaml:"paymentDelay"`
}

// OrdersConfig defines order lifecycle rules
type OrdersConfig struct {
	// StrictTransitions only allows Pending -> Shipped -> Delivered when true
	StrictTransitions bool `json:"strictTransitions" yaml:"strictTransitions"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PubSubConfig defines configuration for order event publishing
type PubSubConfig struct {
	// Provider type: "local", "google" or "rabbitmq"; empty disables publishing
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// RabbitMQ connection (for rabbitmq provider)
	RabbitMQ *RabbitMQConfig `json:"rabbitmq" yaml:"rabbitmq"`
}

// RabbitMQConfig defines the RabbitMQ connection used for order events
type RabbitMQConfig struct {
	URL          string `json:"url" yaml:"url"`
	Queue        string `json:"queue" yaml:"queue"`
	QueueDurable bool   `json:"queueDurable" yaml:"queueDurable"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// WorkerConfig defines the push endpoint that receives order events
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`

	// VerifyPushAuth checks the Google-signed OIDC token on every push request
	VerifyPushAuth bool `json:"verifyPushAuth" yaml:"verifyPushAuth"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment variables override the file, e.g. STORE_DIR -> store.dir
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
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

func New() (*Config, error) {
	// A missing .env is fine; it only exists on developer machines.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = StoreDriverFile
	}
	if cfg.Store.Dir == "" {
		cfg.Store.Dir = defaultStoreDir
	}
	if cfg.Store.Namespace == "" {
		cfg.Store.Namespace = defaultNamespace
	}
	if cfg.Checkout == nil {
		cfg.Checkout = &CheckoutConfig{PaymentDelay: defaultPaymentDelay}
	}
	if cfg.Orders == nil {
		cfg.Orders = &OrdersConfig{}
	}
	if cfg.Worker == nil {
		cfg.Worker = &WorkerConfig{Port: defaultWorkerPort}
	}
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
