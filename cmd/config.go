package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/etnz/bankroll"
	"github.com/joho/godotenv"
)

// Environment variables providing the default configuration.
const (
	EnvBook               = "BANKROLL_BOOK"
	EnvBaseCurrency       = "BANKROLL_BASE_CURRENCY"
	EnvOnlineHandsPerHour = "BANKROLL_ONLINE_HANDS_PER_HOUR"
	EnvLiveHandsPerHour   = "BANKROLL_LIVE_HANDS_PER_HOUR"
	EnvLogLevel           = "BANKROLL_LOG_LEVEL"
)

// DefaultBook is the book file used when none is configured.
const DefaultBook = "bankroll.jsonl"

// Config is the configuration shared by all commands.
type Config struct {
	Book string
	// Settings holds explicitly configured values only; they override the
	// settings recorded in the book.
	Settings bankroll.Settings
	LogLevel string
	Pretty   bool // human friendly logs
	Raw      bool // print markdown without terminal rendering
}

// LoadConfig reads the configuration from the environment, after loading
// the given dotenv files (".env" by default) when they exist. Variables
// already set in the environment are not overridden by the files.
func LoadConfig(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("cannot load environment file: %w", err)
	}
	return configFromEnv(os.LookupEnv)
}

func configFromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Config{Book: DefaultBook, LogLevel: "info"}
	if v, ok := lookup(EnvBook); ok && v != "" {
		cfg.Book = v
	}
	if v, ok := lookup(EnvBaseCurrency); ok {
		cfg.Settings.BaseCurrency = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	var err error
	if cfg.Settings.HandsPerHourOnline, err = lookupFloat(lookup, EnvOnlineHandsPerHour); err != nil {
		return Config{}, err
	}
	if cfg.Settings.HandsPerHourLive, err = lookupFloat(lookup, EnvLiveHandsPerHour); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func lookupFloat(lookup func(string) (string, bool), key string) (float64, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

// SetFlags registers the global flags. Their defaults are the current
// values of c.
func (c *Config) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.Book, "book", c.Book, "Path to the book file (JSONL format). Env: "+EnvBook)
	f.StringVar(&c.Settings.BaseCurrency, "base", c.Settings.BaseCurrency, "Base currency, overrides the book settings. Env: "+EnvBaseCurrency)
	f.Float64Var(&c.Settings.HandsPerHourOnline, "online-hph", c.Settings.HandsPerHourOnline, "Online hands per hour and per table, used when hands are not recorded. Env: "+EnvOnlineHandsPerHour)
	f.Float64Var(&c.Settings.HandsPerHourLive, "live-hph", c.Settings.HandsPerHourLive, "Live hands per hour, used when hands are not recorded. Env: "+EnvLiveHandsPerHour)
	f.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level: debug, info, warn or error. Env: "+EnvLogLevel)
	f.BoolVar(&c.Pretty, "pretty-log", c.Pretty, "Human friendly logs instead of JSON")
	f.BoolVar(&c.Raw, "raw", c.Raw, "Print raw markdown instead of rendering it for the terminal")
}
