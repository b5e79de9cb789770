// Package components holds the long-running parts of the service.
//
// Each component implements Component and is started and stopped by the
// service command. APIServer runs under a Supervisor that restarts its serve
// loop with exponential backoff.
package components
