// Package ui renders human-readable command progress for interactive sessions.
package ui
