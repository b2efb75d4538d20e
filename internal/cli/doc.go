// Package cli implements the acncheck command: validating values given as
// arguments, watching values read from stdin, serving the HTTP API and
// printing the active rule set.
//
// Configuration comes from the environment (see Config) and can be
// overridden with flags placed before the command name:
//
//	acncheck [-rules file] [-output text|json] [-success-message msg]
//	         [-fold-width] [-cache-size n] [-addr host:port] [-log-level level]
//	         COMMAND [VALUE...]
package cli
