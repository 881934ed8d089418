// Package githubcli adapts the GitHub CLI (gh) into typed client operations.
//
// Every method shells out through execshell; the package never speaks HTTP and
// never handles tokens. Authentication, rate limiting, and transport semantics
// belong to the gh binary.
package githubcli
