package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Paths    PathsConfig  `mapstructure:"paths"`
	Engine   EngineConfig `mapstructure:"engine"`
	Vocab    VocabConfig  `mapstructure:"vocab"`
	Server   ServerConfig `mapstructure:"server"`
	LogLevel string       `mapstructure:"log_level"`
}

type PathsConfig struct {
	DictPath   string `mapstructure:"dict_path"`
	ExportPath string `mapstructure:"export_path"`
}

type EngineConfig struct {
	CacheSize    int `mapstructure:"cache_size"`
	BuildWorkers int `mapstructure:"build_workers"`
}

type VocabConfig struct {
	Seed         bool   `mapstructure:"seed"`
	ExportFormat string `mapstructure:"export_format"`
}

type ServerConfig struct {
	ListenAddr      string `mapstructure:"listen_addr"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
	MaxTextBytes    int    `mapstructure:"max_text_bytes"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			DictPath:   "dict.txt",
			ExportPath: "fulldict.txt",
		},
		Engine: EngineConfig{
			CacheSize:    4096,
			BuildWorkers: 0,
		},
		Vocab: VocabConfig{
			Seed:         false,
			ExportFormat: FormatText,
		},
		Server: ServerConfig{
			ListenAddr:      ":8080",
			ShutdownTimeout: 30,
			MaxTextBytes:    4096,
		},
		LogLevel: "info",
	}
}

// flagKeys maps every config flag to its configuration key.
var flagKeys = map[string]string{
	"paths-dict-path":         "paths.dict_path",
	"paths-export-path":       "paths.export_path",
	"engine-cache-size":       "engine.cache_size",
	"engine-build-workers":    "engine.build_workers",
	"vocab-seed":              "vocab.seed",
	"vocab-export-format":     "vocab.export_format",
	"server-listen-addr":      "server.listen_addr",
	"server-shutdown-timeout": "server.shutdown_timeout",
	"server-max-text-bytes":   "server.max_text_bytes",
	"log-level":               "log_level",
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("paths-dict-path", defaults.Paths.DictPath, "Path to the dictionary word list")
	fs.String("paths-export-path", defaults.Paths.ExportPath, "Path the full dictionary is exported to")
	fs.Int("engine-cache-size", defaults.Engine.CacheSize, "Number of encoded words to memoize (0 disables)")
	fs.Int("engine-build-workers", defaults.Engine.BuildWorkers, "Goroutines used to build the reverse index (0 = GOMAXPROCS)")
	fs.Bool("vocab-seed", defaults.Vocab.Seed, "Add the built-in common words to the dictionary on startup")
	fs.String("vocab-export-format", defaults.Vocab.ExportFormat, "Full dictionary export format (text|yaml)")
	fs.String("server-listen-addr", defaults.Server.ListenAddr, "HTTP listen address")
	fs.Int("server-shutdown-timeout", defaults.Server.ShutdownTimeout, "Graceful shutdown timeout in seconds")
	fs.Int("server-max-text-bytes", defaults.Server.MaxTextBytes, "Maximum text size accepted by the HTTP API")
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := bindFlags(v, opts.Cmd.Flags()); err != nil {
			return Config{}, err
		}
	}

	v.SetEnvPrefix("THELANG")
	replacer := strings.NewReplacer("-", "_", ".", "_")
	v.SetEnvKeyReplacer(replacer)
	if err := v.BindEnv("paths.dict_path", "THELANG_DICT", "THELANG_PATHS_DICT_PATH"); err != nil {
		return Config{}, fmt.Errorf("bind dict env vars: %w", err)
	}
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("thelang")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	format, err := NormalizeExportFormat(cfg.Vocab.ExportFormat)
	if err != nil {
		return Config{}, err
	}
	cfg.Vocab.ExportFormat = format

	return cfg, nil
}

// bindFlags binds the registered config flags present in fs to their
// configuration keys. Flags that are not registered are skipped, so
// commands may bind a subset.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("paths.dict_path", c.Paths.DictPath)
	v.SetDefault("paths.export_path", c.Paths.ExportPath)
	v.SetDefault("engine.cache_size", c.Engine.CacheSize)
	v.SetDefault("engine.build_workers", c.Engine.BuildWorkers)
	v.SetDefault("vocab.seed", c.Vocab.Seed)
	v.SetDefault("vocab.export_format", c.Vocab.ExportFormat)
	v.SetDefault("server.listen_addr", c.Server.ListenAddr)
	v.SetDefault("server.shutdown_timeout", c.Server.ShutdownTimeout)
	v.SetDefault("server.max_text_bytes", c.Server.MaxTextBytes)
	v.SetDefault("log_level", c.LogLevel)
}
