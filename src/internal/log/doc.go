// Package log provides simple leveled logging for keen-menu.
//
// Messages are written with a colored level prefix: DEBUG, INFO, WARN and
// ERROR. Errors go to stderr, everything else to stdout. Debug messages are
// only written in verbose mode or when the level is lowered via SetLevel.
//
// Basic logging:
//
//	log.Infof("Restaurant API server running at http://localhost%s", addr)
//	log.Warnf("Config file %s not given, using defaults", path)
//	log.Errorf("Failed to start API server: %v", err)
//
// Tests can capture output with SetOutput and turn colors off with SetNoColor.
//
// The package uses global state guarded by a mutex and is safe for
// concurrent use from HTTP handlers.
package log
