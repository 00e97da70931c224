package chunking

import "sort"

// GroupByDoc partitions elements by source document. Elements without a
// document name fall under UnknownDoc. Each group is sorted by page then
// element identifier so chunk boundaries are reproducible regardless of the
// order the partitioner emitted elements in.
func GroupByDoc(elements []Element) map[string][]Element {
	grouped := make(map[string][]Element)
	for _, el := range elements {
		doc := el.Doc
		if doc == "" {
			doc = UnknownDoc
		}
		grouped[doc] = append(grouped[doc], el)
	}
	for _, els := range grouped {
		sort.SliceStable(els, func(i, j int) bool {
			if els[i].Page != els[j].Page {
				return els[i].Page < els[j].Page
			}
			return els[i].ElementID < els[j].ElementID
		})
	}
	return grouped
}

// SortedDocs returns the group keys in lexical order. Parent assembly walks
// documents in this order so repeated runs produce identical chunk sequences.
func SortedDocs(grouped map[string][]Element) []string {
	docs := make([]string, 0, len(grouped))
	for doc := range grouped {
		docs = append(docs, doc)
	}
	sort.Strings(docs)
	return docs
}
