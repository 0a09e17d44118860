package utils

import (
	"fmt"
	"net"
	"net/url"
	"time"
)

// serverDialTimeout bounds the TCP probe used by the container healthcheck.
const serverDialTimeout = 1500 * time.Millisecond

// PingServer reports whether the HTTP API is accepting TCP connections.
func PingServer(serverURL string) error {
	return PingService(serverURL, serverDialTimeout)
}

// PingService dials the host behind serviceURL and gives up after timeout.
func PingService(serviceURL string, timeout time.Duration) error {
	parsed, err := url.Parse(serviceURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	port := parsed.Port()
	if port == "" {
		if parsed.Scheme == "https" {
			port = "443"
		} else {
			port = "80"
		}
	}

	address := net.JoinHostPort(parsed.Hostname(), port)
	conn, err := net.DialTimeout("tcp", address, timeout)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", address, err)
	}
	return conn.Close()
}
