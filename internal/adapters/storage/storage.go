// Package storage holds what the quote repository adapters share: the startup
// error and the Prometheus instrumentation decorator.
package storage

import "errors"

// ErrStartup marks a failure to reach or prepare the quote store at process
// start. main exits non-zero when run returns an error wrapping it.
var ErrStartup = errors.New("quote store startup failed")
