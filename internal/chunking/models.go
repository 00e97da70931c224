package chunking

const (
	// ParentChunkSize bounds the rune length of an assembled parent chunk.
	ParentChunkSize = 1900
	// ChildChunkSize is the nominal rune width of a child chunk window.
	ChildChunkSize = 600
	// ChildChunkOverlap is the fraction of a child window shared with its
	// predecessor.
	ChildChunkOverlap = 0.15
)

// UnknownDoc is the sentinel document name for elements missing one.
const UnknownDoc = "unknown"

// Element is one extracted text fragment produced by the external document
// partitioner. Elements are immutable once loaded.
type Element struct {
	Doc       string `json:"doc"`
	Page      int    `json:"page"`
	ElementID string `json:"element_id"`
	Type      string `json:"type"`
	Text      string `json:"text"`
}

// Parent aggregates consecutive same-document elements into one chunk.
type Parent struct {
	ParentID   string   `json:"parent_id"`
	Doc        string   `json:"doc"`
	Page       int      `json:"page"`
	ElementIDs []string `json:"element_ids"`
	Text       string   `json:"text"`
}

// Child is a fixed-size slice of a parent chunk's text. ParentID is a
// back-reference, not an ownership edge.
type Child struct {
	ChildID  string `json:"child_id"`
	ParentID string `json:"parent_id"`
	Doc      string `json:"doc"`
	Text     string `json:"text"`
}
