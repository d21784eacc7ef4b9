// Package config defines the application configuration structures and
// loads them from environment variables and an optional config file using
// viper. Environment variables take precedence over file values.
package config
