package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

type Config struct {
	ServiceName string   `mapstructure:"service_name"`
	Env         string   `mapstructure:"env"`
	Port        string   `mapstructure:"port"`
	Database    Database `mapstructure:"database"`
	AWS         AWS      `mapstructure:"aws"`
	Services    Services `mapstructure:"services"`
	Telemetry   Telemetry `mapstructure:"telemetry"`
}

type Database struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

type AWS struct {
	Region              string `mapstructure:"region"`
	NotificationsTopic  string `mapstructure:"notifications_topic_arn"`
	OrderEventsTopic    string `mapstructure:"order_events_topic_arn"`
	OrderRequestsQueue  string `mapstructure:"order_requests_queue_url"`
}

// Services holds base URLs of the downstream capability services.
type Services struct {
	PaymentURL   string `mapstructure:"payment_url"`
	WarehouseURL string `mapstructure:"warehouse_url"`
	ShipperURL   string `mapstructure:"shipper_url"`
}

type Telemetry struct {
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
}

func ReadConfig() (*Config, error) {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return nil, fmt.Errorf("unable to get current file")
	}

	configDir := filepath.Dir(filename)
	viper.SetConfigName(getConfigName())
	viper.SetConfigType("json")
	viper.AddConfigPath(configDir)

	// Allow environment variables to override config
	viper.AutomaticEnv()
	viper.SetEnvPrefix("ORDER")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	err = viper.Unmarshal(&config)
	if err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// GetDatabaseURL builds the postgres connection string
func (c *Config) GetDatabaseURL() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

func getConfigName() string {
	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		return "local"
	}
	return env
}
