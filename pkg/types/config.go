package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pubmed-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// EutilsConfig holds settings for the NCBI E-utilities client.
type EutilsConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey is an optional NCBI API key. Its presence only raises the
	// permitted request rate; requests work without one.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Email is an optional maintainer contact address, passed along so
	// NCBI can reach out before blocking a misbehaving client.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`

	// RetMax is the default number of identifiers per search page (default 20).
	RetMax int `json:"retmax" yaml:"retmax"`

	// BatchSize is the number of identifiers fetched per efetch request
	// (default 200).
	BatchSize int `json:"batch_size" yaml:"batch_size"`

	// RequestsPerSecond caps the request rate. Zero selects the NCBI
	// published limit: 3 without an API key, 10 with one.
	RequestsPerSecond int `json:"requests_per_second" yaml:"requests_per_second"`

	// MaxRetries is the number of retry attempts on HTTP 429 (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// ApplyDefaults fills in zero-valued fields.
func (c *EutilsConfig) ApplyDefaults() {
	if c.Timeout == 0 {
		c.Timeout = 30 * time.Second
	}
	if c.UserAgent == "" {
		c.UserAgent = "pubmed-engine/0.1"
	}
	if c.RetMax <= 0 {
		c.RetMax = 20
	}
	if c.BatchSize <= 0 {
		c.BatchSize = 200
	}
}

// DecodeConfig holds settings for the citation decoder.
type DecodeConfig struct {
	// Strict fails decoding on the first unrecognized element instead
	// of logging and skipping it. For development against new schema
	// versions; production runs leave it off.
	Strict bool `json:"strict" yaml:"strict"`
}

// StoreConfig holds settings for the citation store.
type StoreConfig struct {
	// Path is the SQLite database file (default "data/citations.db").
	Path string `json:"path" yaml:"path"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// EngineConfig groups all stage configurations.
type EngineConfig struct {
	Eutils EutilsConfig `json:"eutils" yaml:"eutils"`
	Decode DecodeConfig `json:"decode" yaml:"decode"`
	Store  StoreConfig  `json:"store" yaml:"store"`
}
