package openai

import "time"

const (
	providerName       = "openai"
	defaultBaseURL     = "https://api.openai.com/v1"
	defaultHTTPTimeout = 60 * time.Second
	// maxErrorBody bounds how much of a failed response is read into the error.
	maxErrorBody = 2048
)
