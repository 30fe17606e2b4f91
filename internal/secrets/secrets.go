// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API keys and credentials from a directory of plain-text files.
// Each file in the directory represents one secret: the filename is the key name and the
// file contents (trimmed) are the value.
//
// Supported key files: ncbi-api-key, ncbi-tool-email.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Key file names recognized in a secrets directory.
const (
	KeyNCBIAPIKey = "ncbi-api-key"
	KeyToolEmail  = "ncbi-tool-email"
)

// Secrets maps key file names to their trimmed contents.
type Secrets map[string]string

// NCBIAPIKey returns the E-utilities API key, or "" when none was
// loaded. Requests with a key get a higher rate limit.
func (s Secrets) NCBIAPIKey() string { return s[KeyNCBIAPIKey] }

// ToolEmail returns the maintainer contact email sent with E-utilities
// requests, or "" when none was loaded.
func (s Secrets) ToolEmail() string { return s[KeyToolEmail] }

// Load reads all files in dir and returns a map of filename to trimmed contents.
// A missing directory or missing files are not errors; Load returns an empty map.
// Unreadable files produce a warning on stderr but do not abort.
func Load(dir string) (Secrets, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Secrets{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(Secrets)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}
