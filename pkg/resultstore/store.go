package resultstore

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/crandicha/acncheck/pkg/logger"
	"github.com/crandicha/acncheck/pkg/reactive"
	"github.com/crandicha/acncheck/pkg/validator"
)

// Result holds both views derived from one read of the value.
type Result struct {
	Value     string              `json:"value"`
	Summary   validator.Verdict   `json:"summary"`
	Breakdown []validator.Verdict `json:"breakdown"`
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for recomputation traces.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCacheSize sets how many value snapshots keep their verdicts cached.
// The default of one remembers only the latest value.
func WithCacheSize(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.cacheSize = n
		}
	}
}

// Store derives summary and breakdown verdicts from a host-owned value.
type Store struct {
	mu        sync.RWMutex
	current   *binding
	logger    *slog.Logger
	cacheSize int
}

// binding is one configuration together with its caches. Configure swaps the
// whole binding so results from a previous configuration are unreachable.
type binding struct {
	value          func() string
	rules          []validator.Rule
	successMessage string
	summary        *reactive.Computed[string, validator.Verdict]
	breakdown      *reactive.Computed[string, []validator.Verdict]
}

// New returns an unconfigured store.
func New(opts ...Option) *Store {
	s := &Store{
		logger:    logger.Discard(),
		cacheSize: reactive.DefaultCapacity,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("resultstore"))
	return s
}

// Configure binds the store to a value accessor and an ordered rule list.
// The rules are copied. An omitted success message falls back to
// validator.DefaultSuccessMessage; an explicit one is kept, empty included.
// A nil accessor leaves the store unconfigured.
func (s *Store) Configure(value func() string, rules []validator.Rule, successMessage ...string) {
	if value == nil {
		s.mu.Lock()
		s.current = nil
		s.mu.Unlock()
		return
	}

	msg := validator.DefaultSuccessMessage
	if len(successMessage) > 0 {
		msg = successMessage[0]
	}

	b := &binding{
		value:          value,
		rules:          slices.Clone(rules),
		successMessage: msg,
	}
	log := s.logger
	b.summary = reactive.NewComputed(value, func(v string) validator.Verdict {
		verdict := validator.Evaluate(b.rules, v, b.successMessage)
		log.Debug("summary recomputed",
			logger.View("summary"),
			logger.ValueLength(v),
			logger.Success(verdict.Success),
		)
		return verdict
	}, reactive.WithCapacity(s.cacheSize))
	b.breakdown = reactive.NewComputed(value, func(v string) []validator.Verdict {
		verdicts := validator.EvaluateAll(b.rules, v)
		log.Debug("breakdown recomputed",
			logger.View("breakdown"),
			logger.ValueLength(v),
			logger.Rules(len(verdicts)),
		)
		return verdicts
	}, reactive.WithCapacity(s.cacheSize))

	s.mu.Lock()
	s.current = b
	s.mu.Unlock()

	s.logger.Debug("store configured", logger.Rules(len(b.rules)))
}

// Summary returns the fail-fast verdict for the current value.
func (s *Store) Summary() validator.Verdict {
	b := s.load()
	if b == nil {
		return validator.Pending()
	}
	return b.summary.Get()
}

// Breakdown returns one verdict per rule for the current value.
// The returned slice belongs to the caller.
func (s *Store) Breakdown() []validator.Verdict {
	b := s.load()
	if b == nil {
		return []validator.Verdict{}
	}
	return slices.Clone(b.breakdown.Get())
}

// Snapshot reads the value once and returns both views for that read.
func (s *Store) Snapshot() Result {
	b := s.load()
	if b == nil {
		return Result{Summary: validator.Pending(), Breakdown: []validator.Verdict{}}
	}
	v := b.value()
	return Result{
		Value:     v,
		Summary:   b.summary.GetFor(v),
		Breakdown: slices.Clone(b.breakdown.GetFor(v)),
	}
}

// Rules returns a copy of the configured rules.
func (s *Store) Rules() []validator.Rule {
	b := s.load()
	if b == nil {
		return nil
	}
	return slices.Clone(b.rules)
}

// SuccessMessage returns the message reported when every rule passes.
func (s *Store) SuccessMessage() string {
	b := s.load()
	if b == nil {
		return ""
	}
	return b.successMessage
}

// Configured reports whether Configure has bound a value accessor.
func (s *Store) Configured() bool {
	return s.load() != nil
}

func (s *Store) load() *binding {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}
