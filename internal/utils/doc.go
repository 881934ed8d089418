// Package utils hosts shared infrastructure primitives for the reponuke CLI:
// the zap logger factory, the viper-backed configuration loader, command
// context accessors, and output writers.
package utils
