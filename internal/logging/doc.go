// Package logging provides file-based logging with rotation for swiftfs.
// Log records are written as JSON to ~/.swiftfs/logs/ at the configured
// level; --debug lowers the level to debug and mirrors records to stderr.
//
// The diagnostic stream carries every index query issued and every engine
// error caught before a fallback decision.
package logging
