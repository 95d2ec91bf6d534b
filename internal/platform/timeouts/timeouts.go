// Package timeouts holds the durations the site applies at its edges.
package timeouts

import "time"

// ReadHeader bounds how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown bounds the graceful drain of in-flight requests.
const Shutdown = 5 * time.Second

// RelayRequest caps one outbound call to the Telegram Bot API.
const RelayRequest = 10 * time.Second
