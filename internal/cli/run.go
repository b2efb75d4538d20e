package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/crandicha/acncheck/internal/httpapi"
	"github.com/crandicha/acncheck/pkg/httpserver"
	"github.com/crandicha/acncheck/pkg/logger"
)

// Run executes cfg.Command. Results go to out, logs to errOut.
func Run(ctx context.Context, cfg Config, in io.Reader, out, errOut io.Writer) error {
	log, err := newLogger(cfg, errOut)
	if err != nil {
		return err
	}

	p, err := loadPipeline(cfg)
	if err != nil {
		return err
	}
	log.DebugContext(ctx, "rules loaded", slog.String("set", p.set.Name), logger.Rules(len(p.rules)))

	switch cfg.Command {
	case CommandCheck:
		return check(cfg, p, log, out)
	case CommandWatch:
		return watch(ctx, cfg, p, log, in, out)
	case CommandServe:
		return serve(ctx, cfg, p, log)
	case CommandRules:
		return printRules(cfg, p, out)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cfg.Command)
	}
}

func newLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "acncheck"),
		logger.WithOutput(w),
		logger.WithContextExtractors(httpapi.RequestIDExtractor()),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	return logger.New(opts...), nil
}

func check(cfg Config, p pipeline, log *slog.Logger, out io.Writer) error {
	s := newSession(cfg, p, log)
	write := newPrinter(cfg.Output)

	failed := 0
	for _, value := range cfg.Args {
		res := s.observe(value)
		if !res.Summary.Success {
			failed++
		}
		if err := write(out, res); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrInvalidValues, failed, len(cfg.Args))
	}
	return nil
}

func watch(ctx context.Context, cfg Config, p pipeline, log *slog.Logger, in io.Reader, out io.Writer) error {
	s := newSession(cfg, p, log)
	write := newPrinter(cfg.Output)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		res := s.observe(strings.TrimSuffix(scanner.Text(), "\r"))
		if err := write(out, res); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

func serve(ctx context.Context, cfg Config, p pipeline, log *slog.Logger) error {
	handler := httpapi.New(
		httpapi.WithRules(p.set.Name, p.rules, p.successMessage),
		httpapi.WithLogger(log),
		httpapi.WithWidthFolding(cfg.FoldWidth),
	)
	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, handler)
}
