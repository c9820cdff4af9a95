package server

import "time"

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 10 * time.Second
	idleTimeout  = 60 * time.Second
	// writeSlack is added on top of the chat timeout so the upstream error reaches the client.
	writeSlack = 5 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second

func writeTimeoutFor(chatTimeout time.Duration) time.Duration {
	return max(writeTimeout, chatTimeout+writeSlack)
}
