package chunking

import "github.com/google/uuid"

// childStep is how far the sliding window advances per child chunk.
var childStep = int(ChildChunkSize * (1 - ChildChunkOverlap))

// BuildChildren slices every parent chunk into overlapping child chunks of
// nominal width ChildChunkSize. The final window is clipped to the text
// boundary and may be shorter; an empty parent yields no children. The scan
// stops once a window reaches the end of the text, so a parent shorter than
// the window width yields exactly one child.
func BuildChildren(parents []Parent) []Child {
	var children []Child
	for _, parent := range parents {
		text := []rune(parent.Text)
		for pos := 0; pos < len(text); pos += childStep {
			end := pos + ChildChunkSize
			if end > len(text) {
				end = len(text)
			}
			children = append(children, Child{
				ChildID:  uuid.NewString(),
				ParentID: parent.ParentID,
				Doc:      parent.Doc,
				Text:     string(text[pos:end]),
			})
			if end == len(text) {
				break
			}
		}
	}
	return children
}
