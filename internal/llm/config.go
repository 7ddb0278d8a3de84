package llm

import "time"

// Config holds connection settings for the suggestion model. The endpoint
// speaks the OpenAI chat-completions protocol, so both the hosted API and
// self-hosted compatible servers work.
type Config struct {
	Endpoint    string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// DefaultConfig returns the settings the source application used.
func DefaultConfig() Config {
	return Config{
		Endpoint:    "https://api.openai.com/v1",
		Model:       "gpt-4o-mini",
		Temperature: 0.2,
		MaxTokens:   1000,
		Timeout:     30 * time.Second,
	}
}
