// Package stages provides the concrete pipeline stage handlers: chunker,
// retriever, checker, judge, and reporter. Each handler reads and writes JSON
// artifacts in the job's staging directory and reports progress through the
// queue job record.
package stages
