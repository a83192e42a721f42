// Package output renders TeachWhat results for the terminal.
//
//   - formatter.go: Formatter interface and factory
//   - table.go: aligned text tables built from row structs
//   - json.go, yaml.go: machine-readable output
//   - view.go: row and panel views of students and lessons
//
// Row structs describe their columns with a `table:"NAME[,wide]"` tag.
// Wide columns are only shown when the formatter is in wide mode, and
// `table:"-"` hides a field from tables while keeping it in JSON and YAML.
package output
