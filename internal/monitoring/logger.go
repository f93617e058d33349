// Package monitoring provides the prediction pipeline's diagnostic
// logger. Every component that absorbs a graceful-degradation failure
// (missing LIDAR, a provider timeout, an empty forecast) logs once
// through Logf rather than constructing its own logger, so the whole
// pipeline's diagnostics can be redirected or muted from one place.
package monitoring

import "log"

// Logf is the package-level diagnostic logger. It defaults to log.Printf but may
// be replaced by SetLogger. Tests or production code can redirect or mute it.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil will set a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}
