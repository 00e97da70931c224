package chunking

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// BuildParents assembles parent chunks from grouped elements. Element texts
// are accumulated greedily, joined by newlines; the buffer is flushed once
// appending the next element would push it past ParentChunkSize. The overflow
// check only fires when the buffer already holds content, so a single element
// longer than the threshold becomes a chunk on its own rather than being
// split.
func BuildParents(grouped map[string][]Element) []Parent {
	var parents []Parent
	for _, doc := range SortedDocs(grouped) {
		parents = append(parents, buildDocParents(doc, grouped[doc])...)
	}
	return parents
}

func buildDocParents(doc string, elements []Element) []Parent {
	var (
		parents  []Parent
		buffered []Element
		length   int
	)

	flush := func() {
		if len(buffered) == 0 {
			return
		}
		texts := make([]string, len(buffered))
		ids := make([]string, len(buffered))
		for i, el := range buffered {
			texts[i] = el.Text
			ids[i] = el.ElementID
		}
		parents = append(parents, Parent{
			ParentID:   uuid.NewString(),
			Doc:        doc,
			Page:       buffered[0].Page,
			ElementIDs: ids,
			Text:       strings.Join(texts, "\n"),
		})
		buffered = buffered[:0]
		length = 0
	}

	for _, el := range elements {
		textLen := utf8.RuneCountInString(el.Text)
		if len(buffered) > 0 && length+textLen > ParentChunkSize {
			flush()
		}
		buffered = append(buffered, el)
		length += textLen
	}
	flush()

	return parents
}
