// Package preflight provides readiness checks for the filesystem paths and
// inputs the review pipeline depends on.
//
// These checks run in two contexts:
//   - The daemon calls RunAll at startup and refuses to process work while a
//     check fails.
//   - The CLI "clausecheck status" command uses the individual check
//     functions to display readiness.
package preflight
