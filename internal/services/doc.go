// Package services defines shared utilities consumed by the workflow stage
// handlers.
//
// Key responsibilities:
//   - Context helpers that stamp queue job IDs and stage names for logging.
//   - Structured error markers plus the Wrap helper that translate failures
//     into consistent queue statuses (failed vs review).
package services
