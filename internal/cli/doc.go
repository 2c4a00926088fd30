// Package cli carries the configuration and logging plumbing shared by
// the fsprobe command: merging config file, .env file, environment and
// flag values into one Config, and building the console logger from it.
package cli
