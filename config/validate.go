// Copyright (c) 2024 The BitFS developers
// Use of this source code is governed by the Open BSV License v5
// that can be found in the LICENSE file.

package config

import (
	"fmt"
	"net"
	"os"
	"strings"
)

// validLogLevels lists the accepted log level strings.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validSecurityLevels lists the predefined rsavault.SecurityLevel names.
var validSecurityLevels = map[string]bool{
	"rsa2048": true,
	"rsa3072": true,
	"rsa4096": true,
}

// ValidateConfig checks that all configuration values are within acceptable
// ranges and returns the first error encountered, or nil if valid.
func ValidateConfig(cfg Config) error {
	if cfg.DataDir == "" {
		return ErrEmptyDataDir
	}

	if err := validateSecurityLevel(cfg.SecurityLevel); err != nil {
		return err
	}

	if err := validateAddr(cfg.ListenAddr); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidListenAddr, err)
	}

	if !validLogLevels[strings.ToLower(cfg.LogLevel)] {
		return ErrInvalidLogLevel
	}

	return nil
}

// validateSecurityLevel accepts a predefined level name or a path to an
// existing custom level file (see rsavault.LoadCustomSecurityLevel).
func validateSecurityLevel(level string) error {
	if validSecurityLevels[strings.ToLower(level)] {
		return nil
	}
	if _, err := os.Stat(level); err == nil {
		return nil
	}
	return ErrInvalidSecurityLevel
}

// validateAddr checks that addr is a valid host:port address.
func validateAddr(addr string) error {
	_, _, err := net.SplitHostPort(addr)
	return err
}
