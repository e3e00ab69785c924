// Copyright (c) 2024 The BitFS developers
// Use of this source code is governed by the Open BSV License v5
// that can be found in the LICENSE file.

// Package config loads and saves rsavault-go's flat key=value
// configuration file.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds the settings for a running vault node: where key material
// and stored objects live on disk, what security level new keys are
// generated at, where the keyregistry/keydiscovery service listens, and
// how the node logs.
type Config struct {
	DataDir       string
	ListenAddr    string
	SecurityLevel string
	LogLevel      string
	LogFile       string
	DNSDomain     string
}

// DefaultDataDir returns the default data directory, "<home>/.rsavault".
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".rsavault")
}

// DefaultConfig returns a Config populated with default values.
func DefaultConfig() Config {
	return Config{
		DataDir:       DefaultDataDir(),
		ListenAddr:    ":8443",
		SecurityLevel: "rsa2048",
		LogLevel:      "info",
		LogFile:       "",
		DNSDomain:     "",
	}
}

// ConfigPath returns the path to the config file within dataDir.
func ConfigPath(dataDir string) string {
	return filepath.Join(dataDir, "config")
}

// SaveConfig writes cfg to path in the flat key=value format, creating
// parent directories as needed.
func SaveConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config: creating directory: %w", err)
	}

	var b strings.Builder
	b.WriteString("# RSA Vault Configuration\n")
	fmt.Fprintf(&b, "datadir = %s\n", cfg.DataDir)
	fmt.Fprintf(&b, "listen = %s\n", cfg.ListenAddr)
	fmt.Fprintf(&b, "securitylevel = %s\n", cfg.SecurityLevel)
	fmt.Fprintf(&b, "loglevel = %s\n", cfg.LogLevel)
	fmt.Fprintf(&b, "logfile = %s\n", cfg.LogFile)
	fmt.Fprintf(&b, "dnsdomain = %s\n", cfg.DNSDomain)

	if err := os.WriteFile(path, []byte(b.String()), 0600); err != nil {
		return fmt.Errorf("config: writing file: %w", err)
	}
	return nil
}

// LoadConfig reads a config file written by SaveConfig, starting from
// DefaultConfig for any key the file omits. Unknown keys are ignored;
// lines that are neither blank, a comment, nor a key=value pair return
// ErrInvalidConfigLine.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, ErrConfigNotFound
		}
		return Config{}, fmt.Errorf("config: opening file: %w", err)
	}
	defer f.Close()

	cfg := DefaultConfig()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, err := parseKeyValue(line)
		if err != nil {
			return Config{}, err
		}
		switch key {
		case "datadir":
			cfg.DataDir = value
		case "listen":
			cfg.ListenAddr = value
		case "securitylevel":
			cfg.SecurityLevel = value
		case "loglevel":
			cfg.LogLevel = value
		case "logfile":
			cfg.LogFile = value
		case "dnsdomain":
			cfg.DNSDomain = value
		}
	}
	if err := scanner.Err(); err != nil {
		return Config{}, fmt.Errorf("config: reading file: %w", err)
	}
	return cfg, nil
}

// parseKeyValue splits a "key = value" line on its first '=', trimming
// whitespace around both key and value.
func parseKeyValue(line string) (string, string, error) {
	idx := strings.IndexByte(line, '=')
	if idx < 0 {
		return "", "", ErrInvalidConfigLine
	}
	key := strings.ToLower(strings.TrimSpace(line[:idx]))
	value := strings.TrimSpace(line[idx+1:])
	if key == "" {
		return "", "", ErrInvalidConfigLine
	}
	return key, value, nil
}
