// Package lifecycle holds shared timeouts for process start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and clients.
const DefaultTimeout = 10 * time.Second

// StartupTimeout bounds connectivity checks made while starting.
const StartupTimeout = 5 * time.Second
