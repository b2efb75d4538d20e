// Package httpapi exposes the validation pipeline over HTTP.
//
// Routes:
//
//	GET  /validate?value=...   evaluate a value passed as a query parameter
//	POST /validate             evaluate {"value": "..."}
//	GET  /rules                list the configured rules in evaluation order
//	GET  /healthz              liveness probe
//
// Successful responses are wrapped as {"data": ...}; failures as
// {"error": {"code": ..., "message": ...}}. A validation failure is not an
// HTTP error: the verdicts are returned with status 200.
//
// Every request carries an X-Request-ID. A valid client-supplied id is
// reused, anything else is replaced by a UUIDv4. RequestIDExtractor plugs the
// id into loggers built with logger.WithContextExtractors.
package httpapi
