// Package agentconfig loads the sensor agent's configuration: defaults,
// then MES_CLIENT_* environment overrides, then CLI flag overrides —
// the same precedence original_source/src/config.rs and main.rs apply.
package agentconfig

import (
	"flag"
	"fmt"
	"runtime"

	"github.com/spf13/viper"
)

const envPrefix = "MES_CLIENT"

// Config mirrors the knobs in spec.md §6. yaml tags are kept for parity
// with the rest of the corpus's Config structs even though this agent
// has no config-file loader of its own.
type Config struct {
	File                 string `yaml:"file"`
	Server               string `yaml:"server"`
	Port                 uint16 `yaml:"port"`
	Insecure             bool   `yaml:"insecure"`
	Interval             uint64 `yaml:"interval"`
	SensorID             string `yaml:"sensor_id"`
	TestingMode          bool   `yaml:"testing_mode"`
	MaxClients           int    `yaml:"max_clients"`
	MaxMessageSize       int    `yaml:"max_message_size"`
	Verbose              int    `yaml:"verbose"`
	MetricsListenAddress string `yaml:"metrics_listen_address"`
}

// Default returns a Config populated with the reference client's
// defaults (original_source/src/config.rs), before any environment or
// flag overrides are applied.
func Default() Config {
	return Config{
		File:                 "/var/run/suricata.sock",
		Server:               "localhost",
		Port:                 50051,
		Insecure:             true,
		Interval:             1,
		SensorID:             "sensor1",
		TestingMode:          false,
		MaxClients:           0, // resolved to runtime.NumCPU() in ResolveMaxClients
		MaxMessageSize:       100,
		Verbose:              0,
		MetricsListenAddress: ":9464",
	}
}

// Load builds a Config from defaults, MES_CLIENT_* environment
// variables, and the parsed CLI flags in fs — in that precedence order,
// matching main.rs's "load config, then override with CLI args if
// present" sequencing.
func Load(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("file", cfg.File)
	v.SetDefault("server", cfg.Server)
	v.SetDefault("port", cfg.Port)
	v.SetDefault("insecure", cfg.Insecure)
	v.SetDefault("interval", cfg.Interval)
	v.SetDefault("sensor_id", cfg.SensorID)
	v.SetDefault("testing_mode", cfg.TestingMode)
	v.SetDefault("max_message_size", cfg.MaxMessageSize)
	v.SetDefault("verbose", cfg.Verbose)
	v.SetDefault("metrics_listen_address", cfg.MetricsListenAddress)

	cfg.File = v.GetString("file")
	cfg.Server = v.GetString("server")
	cfg.Port = uint16(v.GetUint32("port"))
	cfg.Insecure = v.GetBool("insecure")
	cfg.Interval = v.GetUint64("interval")
	cfg.SensorID = v.GetString("sensor_id")
	cfg.TestingMode = v.GetBool("testing_mode")
	cfg.MaxMessageSize = v.GetInt("max_message_size")
	cfg.Verbose = v.GetInt("verbose")
	cfg.MetricsListenAddress = v.GetString("metrics_listen_address")
	if v.IsSet("max_clients") {
		cfg.MaxClients = v.GetInt("max_clients")
	}

	var (
		flagFile           = fs.String("file", cfg.File, "Ingress Unix domain socket path")
		flagServer         = fs.String("server", cfg.Server, "Collector RPC host")
		flagPort           = fs.Uint("port", uint(cfg.Port), "Collector RPC port")
		flagInsecure       = fs.Bool("insecure", cfg.Insecure, "Disable TLS on the egress RPC channel")
		flagInterval       = fs.Uint64("interval", cfg.Interval, "Reserved, not used by the core data plane")
		flagSensorID       = fs.String("sensor-id", cfg.SensorID, "Overwrites every alert's sensor id")
		flagTestingMode    = fs.Bool("testing-mode", cfg.TestingMode, "Reserved, not used by the core data plane")
		flagMaxClients     = fs.Int("max-clients", cfg.MaxClients, "Number of parser workers (0 = number of CPUs)")
		flagMaxMessageSize = fs.Int("max-message-size", cfg.MaxMessageSize, "Reserved, not used by the core data plane")
		flagVerbose        = fs.Int("verbose", cfg.Verbose, "0=info, 1=debug, >=2=debug with caller info")
	)

	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("agentconfig: parsing flags: %w", err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "file":
			cfg.File = *flagFile
		case "server":
			cfg.Server = *flagServer
		case "port":
			cfg.Port = uint16(*flagPort)
		case "insecure":
			cfg.Insecure = *flagInsecure
		case "interval":
			cfg.Interval = *flagInterval
		case "sensor-id":
			cfg.SensorID = *flagSensorID
		case "testing-mode":
			cfg.TestingMode = *flagTestingMode
		case "max-clients":
			cfg.MaxClients = *flagMaxClients
		case "max-message-size":
			cfg.MaxMessageSize = *flagMaxMessageSize
		case "verbose":
			cfg.Verbose = *flagVerbose
		}
	})

	return cfg, nil
}

// ResolveMaxClients returns the configured parser worker count, falling
// back to runtime.NumCPU() when unset or non-positive — the Go
// equivalent of std::thread::available_parallelism() in main.rs.
func (c Config) ResolveMaxClients() int {
	if c.MaxClients > 0 {
		return c.MaxClients
	}
	return runtime.NumCPU()
}

// Addr returns the "host:port" dial target for the egress RPC.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server, c.Port)
}
