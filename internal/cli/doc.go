// Package cli defines the Cobra command tree for the mikrus CLI. Each file
// in this package builds one top-level command. Commands delegate to the
// internal packages for the actual work and only handle flags, output, and
// exit status.
package cli
