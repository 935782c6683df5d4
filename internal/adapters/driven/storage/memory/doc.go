// Package memory provides in-process implementations of the driven ports.
//
// StateStore is the single source of truth for a running session.
// ConfigStore backs settings when no config file is wanted, such as in
// tests or with --config=:memory:.
package memory
