// Package purge implements the sequential bulk repository deletion workflow:
// prerequisite checks, target resolution, validation, a typed confirmation
// gate, paced deletion, and a summary with an append-only journal.
package purge
