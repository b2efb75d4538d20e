// Package logger builds *slog.Logger values with functional options and
// injects context-scoped attributes such as request IDs.
//
// New picks a text or JSON handler and applies static attributes. Registered
// ContextExtractor functions run for each record; an extracted attribute never
// overrides one passed explicitly to the log call. Attribute helpers in attr.go keep key names consistent across
// the validation engine and its hosts.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "acncheck"),
//	    logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	logger.SetAsDefault(log)
//
//	log.Debug("summary recomputed",
//	    logger.Component("resultstore"),
//	    logger.Success(verdict.Success),
//	)
//
// # Configuration
//
//   - WithEnvironment – development (text, debug) or staging/production (json, info)
//   - WithFormat / WithTextFormatter / WithJSONFormatter – output format
//   - WithLevel – minimum level; ParseLevel converts names from configuration
//   - WithAttr – static attributes
//   - WithContextExtractors / WithContextValue – attributes pulled from context
//
// Components that accept an optional logger default to Discard.
//
// # Error Handling
//
// WithFormat panics on unknown formats. Error returns an empty attribute for
// a nil error so it can be passed unconditionally.
package logger
