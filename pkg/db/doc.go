// Package db provides database connection utilities for accessctl.
package db
