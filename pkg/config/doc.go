// Package config provides configuration management for accessctl.
//
// Configuration is loaded from an optional YAML file (accessctl.yml under
// ACCESSCTL_CONFIG_PATH, default /etc/accessctl/config) and overridden by
// environment variables. Each attribute tracks its source (default, file
// or environment).
package config
