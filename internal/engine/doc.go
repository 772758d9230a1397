// Package engine talks to the external file-name index engine.
//
// It covers the full query round trip: building the command-line argument
// form of a query, launching the engine process and capturing its output
// (Transport), and parsing the newline-delimited output into typed results.
//
// The engine is an external collaborator. This package never reads the
// index directly and never touches the filesystem.
package engine
