// Package configs provides embedded configuration templates for swiftfs.
//
// Templates are embedded at build time with //go:embed so they ship in
// every distribution, source builds included. `swiftfs config init` writes
// the user template to ~/.config/swiftfs/config.yaml.
package configs

import _ "embed"

// UserConfigTemplate is the commented template for user configuration,
// written by `swiftfs config init`.
//
//go:embed user-config.example.yaml
var UserConfigTemplate string
