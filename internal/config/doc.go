// Package config manages user-level settings stored at ~/.mikrus/config.yaml.
// Every key can also be supplied through a MIKRUS_-prefixed environment
// variable, which takes precedence over the file (e.g. MIKRUS_API_URL).
package config
