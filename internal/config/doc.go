// Package config defines the TeachWhat configuration structure.
//
// Values are merged by internal/infra/confloader from DefaultMap, the YAML
// file, TEACHWHAT_* environment variables and command-line flags, then
// checked with Verify.
package config
