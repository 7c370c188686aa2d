package repository

import "time"

// ClientOptions configures the REST transport behind the Gateway.
type ClientOptions struct {
	BaseURL     string        // e.g. "http://localhost:8080"
	AccessToken string        // optional Bearer token
	Timeout     time.Duration // per request; 0 means no timeout
}
