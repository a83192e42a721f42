// Package buildinfo reports the TeachWhat version.
//
// Release builds inject values through ldflags:
//
//	go build -ldflags "-X github.com/yndnr/teachwhat-go/internal/infra/buildinfo.Version=v1.0.0 \
//	  -X github.com/yndnr/teachwhat-go/internal/infra/buildinfo.Commit=abc123"
//
// Fields left unset are filled from the module build information the Go
// toolchain embeds, when available.
package buildinfo
