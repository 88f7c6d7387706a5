// Package config defines the format-agnostic session profile model along
// with the Loader interface for reading profiles from various sources.
//
// The resolved config.Profile is the single source of truth for the
// session package. Concrete loader implementations, such as for HCL, are
// provided in separate packages.
package config
