package cmd

import "time"

// Config holds the runtime settings of the simulator, read from the
// environment by the entrypoint.
type Config struct {
	HTTPPort          string
	WebhookTimeout    time.Duration
	NotifierWorkers   int
	NotifierQueueSize int
}
