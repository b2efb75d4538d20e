// Package httpserver runs an http.Handler with configurable timeouts,
// lifecycle logging and graceful shutdown.
//
// Run binds the listener synchronously, so address errors surface as
// ErrStart before any request is served. The server stops when the context
// passed to Run is cancelled; callers that want signal handling wrap their
// context with signal.NotifyContext.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Ready is closed once connections are accepted and Addr then reports the
// bound address, which makes ":0" usable in tests.
//
// HealthCheckHandler serves liveness and readiness probes.
package httpserver
