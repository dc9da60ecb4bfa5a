// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Every key is optional; the defaults reproduce the built-in three-city
// setup, so the tool runs with no file at all.
package config
