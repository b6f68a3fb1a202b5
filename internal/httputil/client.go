package httputil

import (
	"net/http"
	"time"
)

// DefaultTimeout bounds every outbound provider request.
const DefaultTimeout = 10 * time.Second

// NewClient returns an HTTP client with standard timeout configuration.
func NewClient() *http.Client {
	return &http.Client{
		Timeout: DefaultTimeout,
	}
}
