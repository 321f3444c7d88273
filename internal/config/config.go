// Package config loads closet settings from flags, environment and an
// optional YAML file using Viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config keys.
const (
	KeyAltScreen        = "alt_screen"
	KeyLogFile          = "log_file"
	KeyTraceEndpoint    = "trace.endpoint"
	KeyTraceServiceName = "trace.service_name"
	KeyTraceInsecure    = "trace.insecure"
)

// EnvPrefix prefixes closet-specific environment variables (CLOSET_LOG_FILE).
const EnvPrefix = "CLOSET"

// Config is the resolved configuration.
type Config struct {
	AltScreen bool
	LogFile   string
	Trace     TraceConfig
}

// TraceConfig controls span export.
type TraceConfig struct {
	Endpoint    string
	ServiceName string
	Insecure    bool
}

// New returns a Viper instance with defaults and environment bindings set.
// Callers bind flags onto it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyAltScreen, true)
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyTraceEndpoint, "")
	v.SetDefault(KeyTraceServiceName, "closet")
	v.SetDefault(KeyTraceInsecure, true)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// CLOSET_* takes precedence over the standard OTel variables.
	_ = v.BindEnv(KeyTraceEndpoint, "CLOSET_TRACE_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT")
	_ = v.BindEnv(KeyTraceServiceName, "CLOSET_TRACE_SERVICE_NAME", "OTEL_SERVICE_NAME")
	return v
}

// Load reads path (if non-empty) into v and returns the resolved Config.
// A named file that cannot be read is an error.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %q: %w", path, err)
		}
	}

	return Config{
		AltScreen: v.GetBool(KeyAltScreen),
		LogFile:   v.GetString(KeyLogFile),
		Trace: TraceConfig{
			Endpoint:    v.GetString(KeyTraceEndpoint),
			ServiceName: v.GetString(KeyTraceServiceName),
			Insecure:    v.GetBool(KeyTraceInsecure),
		},
	}, nil
}
