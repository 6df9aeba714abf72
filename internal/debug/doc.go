// Package debug provides file-backed debug logging.
//
// The terminal belongs to the animation while it runs, so diagnostics go
// to a file chosen with the --debug flag. Grid rebuilds, geometry errors
// and key-driven configuration changes are logged.
package debug
