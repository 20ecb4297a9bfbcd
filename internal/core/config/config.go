package config

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Shopify holds the Shopify Admin API configuration.
	Shopify ShopifyConfig `mapstructure:",squash"`

	// Lookup holds the gift lookup tuning parameters.
	Lookup LookupConfig `mapstructure:",squash"`

	// Cache holds the optional order-window cache configuration.
	Cache CacheConfig `mapstructure:",squash"`
}

// ShopifyConfig holds the credentials for the Shopify store.
type ShopifyConfig struct {
	// StoreDomain is the myshopify domain, without scheme (e.g., acme.myshopify.com).
	StoreDomain string `mapstructure:"SHOPIFY_STORE_DOMAIN" required:"true"`
	// AdminToken is the Admin API access token (shpat_...).
	AdminToken string `mapstructure:"SHOPIFY_ADMIN_TOKEN" required:"true"`
	// APIVersion is the Admin API version segment of the endpoint URL.
	APIVersion string `mapstructure:"SHOPIFY_API_VERSION" default:"2024-10"`
}

// LookupConfig holds the bounds applied when matching orders.
type LookupConfig struct {
	// OrderFetchLimit is how many recent orders a single lookup may scan.
	OrderFetchLimit int `mapstructure:"ORDER_FETCH_LIMIT" default:"250"`
	// RecencyWindowDays is the maximum age of an order eligible for matching.
	RecencyWindowDays int `mapstructure:"RECENCY_WINDOW_DAYS" default:"90"`
}

// CacheConfig holds the Redis settings for the order-window cache.
// The cache stays disabled unless both RedisURL and OrderTTLSeconds are set.
type CacheConfig struct {
	// RedisURL is the Redis connection URL (redis://[:password@]host[:port][/db]).
	RedisURL string `mapstructure:"REDIS_URL"`
	// OrderTTLSeconds is how long a fetched order window may be reused.
	OrderTTLSeconds int `mapstructure:"ORDER_CACHE_TTL_SECONDS" default:"0"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	clampLookup(&config.Lookup)

	return &config, nil
}

// clampLookup keeps the fetch bounds inside what the Admin API accepts.
// A single orders page caps out at 250 records.
func clampLookup(cfg *LookupConfig) {
	if cfg.OrderFetchLimit < 1 {
		cfg.OrderFetchLimit = 1
	}
	if cfg.OrderFetchLimit > 250 {
		cfg.OrderFetchLimit = 250
	}
	if cfg.RecencyWindowDays < 1 {
		cfg.RecencyWindowDays = 1
	}
}

// processTags iterates over the struct fields and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			v.BindEnv(key)
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		required := field.Tag.Get("required")
		if required == "true" {
			value := val.Field(i)
			if isZero(value) {
				key := field.Tag.Get("mapstructure")
				return fmt.Errorf("missing required configuration: %s", key)
			}
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
