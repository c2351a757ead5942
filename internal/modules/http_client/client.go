package http_client

import (
	"net/http"
	"time"
)

type HttpClient struct {
	HttpClient *http.Client
}

func New() *HttpClient {
	return &HttpClient{
		HttpClient: http.DefaultClient,
	}
}

// NewWithTimeout falls back to New for a non-positive timeout.
func NewWithTimeout(timeout time.Duration) *HttpClient {
	if timeout <= 0 {
		return New()
	}
	return &HttpClient{
		HttpClient: &http.Client{Timeout: timeout},
	}
}
