// Package version provides build version information embedding for
// seqkit binaries.
//
// Version, git commit, and build time are set at compile time via
// -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/seqkit/version.Version=1.0.0"
//
// When -ldflags were not used, the gaps are filled from the build info
// the Go toolchain embeds in the binary.
package version
