// Package api defines the transport-friendly view models shared by the
// daemon's HTTP endpoints and the CLI's JSON output, plus the read-only
// queue service that produces them.
package api
