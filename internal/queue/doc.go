// Package queue persists review jobs in SQLite and exposes helpers for
// driving their lifecycle.
//
// The Store manages database connections, schema initialization, heartbeat
// tracking, stuck-job recovery, and the status transitions that mirror the
// pipeline stages. Jobs capture the uploaded elements document, progress,
// and the final report location so stages can coordinate without additional
// state.
//
// The database is transient storage for in-flight jobs rather than a
// long-term archive. Schema changes bump the version in schema.go; users
// clear the database to adopt the new schema.
package queue
