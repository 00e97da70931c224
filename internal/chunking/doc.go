// Package chunking turns partitioned document elements into hierarchical
// retrieval chunks.
//
// Elements are grouped per source document and ordered deterministically, then
// merged into bounded-length parent chunks, which are in turn sliced into
// smaller overlapping child chunks. Parent chunks are the unit of semantic
// retrieval; child chunks are the unit of fine-grained clause matching.
// Lengths are measured in runes so multi-byte Persian text is never split
// mid-character.
package chunking
