// Package config loads, normalizes, and validates dispenser configuration.
//
// Settings come from three layers applied in order: built-in defaults taken
// from the parameter package, an optional TOML file, and DISPENSER_*
// environment variables. The result converts into the option structs the
// dispense, animate and engine packages consume.
package config
