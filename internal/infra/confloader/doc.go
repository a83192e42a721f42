// Package confloader loads TeachWhat configuration with koanf.
//
// Sources, lowest to highest priority:
//
//  1. Defaults (a flat "section.key" map)
//  2. The YAML configuration file
//  3. Environment variables (TEACHWHAT_SECTION__KEY)
//  4. Overrides from command-line flags
//
// A double underscore separates sections in environment variable names so
// that keys containing an underscore survive: TEACHWHAT_CLI__HISTORY_FILE
// sets cli.history_file.
//
// Watcher reports writes to the configuration file so callers can reload.
package confloader
