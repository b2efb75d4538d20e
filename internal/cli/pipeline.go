package cli

import (
	"fmt"
	"log/slog"

	"golang.org/x/text/width"

	"github.com/crandicha/acncheck/pkg/reactive"
	"github.com/crandicha/acncheck/pkg/resultstore"
	"github.com/crandicha/acncheck/pkg/ruleset"
	"github.com/crandicha/acncheck/pkg/validator"
)

type pipeline struct {
	set            ruleset.Set
	rules          []validator.Rule
	successMessage string
}

func loadPipeline(cfg Config) (pipeline, error) {
	set := ruleset.ACNSet()
	if cfg.RulesFile != "" {
		var err error
		if set, err = ruleset.Load(cfg.RulesFile); err != nil {
			return pipeline{}, err
		}
	}

	rules, err := set.Build()
	if err != nil {
		return pipeline{}, fmt.Errorf("rule set %q: %w", set.Name, err)
	}

	p := pipeline{set: set, rules: rules, successMessage: set.SuccessMessage}
	if cfg.SuccessMessage != "" {
		p.successMessage = cfg.SuccessMessage
	}
	if p.successMessage == "" {
		p.successMessage = validator.DefaultSuccessMessage
	}
	return p, nil
}

// session feeds values through a signal into a result store, so repeated
// values are served from the store cache.
type session struct {
	value *reactive.Signal[string]
	store *resultstore.Store
	fold  bool
	log   *slog.Logger
}

func newSession(cfg Config, p pipeline, log *slog.Logger) *session {
	s := &session{
		value: reactive.NewSignal(""),
		store: resultstore.New(resultstore.WithLogger(log), resultstore.WithCacheSize(cfg.CacheSize)),
		fold:  cfg.FoldWidth,
		log:   log,
	}
	s.store.Configure(s.value.Get, p.rules, p.successMessage)
	return s
}

func (s *session) observe(v string) resultstore.Result {
	if s.fold {
		v = width.Fold.String(v)
	}
	before := s.value.Version()
	s.value.Set(v)
	if s.value.Version() != before {
		s.log.Debug("value changed", slog.Uint64("version", s.value.Version()))
	}
	return s.store.Snapshot()
}
