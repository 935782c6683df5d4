// Package file provides file-based configuration storage.
//
// Settings live in a TOML file inside the docanalyzer config directory
// (default ~/.docanalyzer/config.toml). Nested tables are exposed as
// dot-notation keys, so
//
//	[simulation]
//	upload_delay_ms = 500
//
// is read back with Get("simulation.upload_delay_ms").
package file
