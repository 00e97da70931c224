// Package main hosts the clausecheck CLI entrypoint and command graph.
//
// The Cobra-based command tree exposes the individual pipeline stages for
// file-to-file use, queue maintenance, status reporting, and configuration
// scaffolding. It centralizes configuration resolution so subcommands can
// focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
