// Package cli assembles the reponuke command hierarchy, configuration
// loading, and logging for the executable entrypoint.
package cli
