// Package daemon coordinates the long-running clausecheck process.
//
// It wires configuration, queue storage, the workflow manager, the HTTP API,
// and the inbox watcher into a single lifecycle with flock-based locking to
// prevent multiple instances. Individual pipeline steps live in their own
// packages; the daemon focuses on startup, shutdown, and high level
// coordination.
package daemon
