// Package probe checks whether the mikr.us API answers HTTP requests.
//
// The check is a single HEAD request with a short timeout. Network failures
// are reported as unreachable rather than returned as errors, so callers only
// ever branch on Status.Reachable.
package probe
