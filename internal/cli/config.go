package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/crandicha/acncheck/pkg/config"
	"github.com/crandicha/acncheck/pkg/httpserver"
	"github.com/crandicha/acncheck/pkg/validator"
)

// Commands.
const (
	CommandCheck = "check"
	CommandWatch = "watch"
	CommandServe = "serve"
	CommandRules = "rules"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds the command configuration.
type Config struct {
	Env            string `env:"APP_ENV" envDefault:"development"`
	LogLevel       string `env:"LOG_LEVEL"`
	RulesFile      string `env:"ACN_RULES_FILE"`
	SuccessMessage string `env:"ACN_SUCCESS_MESSAGE"`
	Output         string `env:"ACN_OUTPUT" envDefault:"text"`
	FoldWidth      bool   `env:"ACN_FOLD_WIDTH" envDefault:"true"`
	CacheSize      int    `env:"ACN_CACHE_SIZE" envDefault:"1"`
	HTTP           httpserver.Config

	Command string
	Args    []string
}

// ParseConfig loads the environment, then applies flags from args.
// The first positional argument selects the command.
func ParseConfig(fs *flag.FlagSet, args []string, opts ...config.Option) (Config, error) {
	var cfg Config
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.RulesFile, "rules", cfg.RulesFile, "YAML or JSON rule set file (default: built-in ACN rules)")
	fs.StringVar(&cfg.SuccessMessage, "success-message", cfg.SuccessMessage, "message reported when every rule passes")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "output format: text or json")
	fs.BoolVar(&cfg.FoldWidth, "fold-width", cfg.FoldWidth, "fold full-width characters to ASCII before validation")
	fs.IntVar(&cfg.CacheSize, "cache-size", cfg.CacheSize, "number of recent values whose results are kept")
	fs.StringVar(&cfg.HTTP.Addr, "addr", cfg.HTTP.Addr, "serve: listen address")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	fs.Usage = func() { Usage(fs.Output(), fs) }
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return Config{}, fmt.Errorf("%w: missing command", ErrUsage)
	}
	cfg.Command, cfg.Args = rest[0], rest[1:]

	if cfg.CacheSize < 1 {
		return Config{}, fmt.Errorf("%w: cache size must be at least 1", ErrUsage)
	}

	switch cfg.Output {
	case OutputText, OutputJSON:
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrInvalidOutput, cfg.Output)
	}

	switch cfg.Command {
	case CommandCheck:
		if len(cfg.Args) == 0 {
			return Config{}, fmt.Errorf("%w: check needs at least one value", ErrUsage)
		}
	case CommandWatch, CommandServe, CommandRules:
		if len(cfg.Args) > 0 {
			return Config{}, fmt.Errorf("%w: %s takes no arguments", ErrUsage, cfg.Command)
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownCommand, cfg.Command)
	}
	return cfg, nil
}

// Usage writes the command synopsis and flag defaults to w.
func Usage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, `Usage: acncheck [flags] COMMAND

Commands:
  check VALUE...  validate each value, exit 1 if any is invalid
  watch           validate every line read from stdin
  serve           run the HTTP API
  rules           print the active rule set

Rule kinds for -rules files:
  %s

Flags:
`, strings.Join(validator.Names(), ", "))
	fs.SetOutput(w)
	fs.PrintDefaults()
}
