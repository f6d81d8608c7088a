package service

import "rental-service/internal/model"

// MergeDocuments builds the final attachment list for an update: existing
// entries named in keep survive in their original relative order, everything
// else is dropped, and uploaded entries are appended. A nil or empty keep
// list drops every existing entry. Keys are matched against the entry URL.
func MergeDocuments(existing model.DocumentList, keep []string, uploaded []model.Document) model.DocumentList {
	final := make(model.DocumentList, 0, len(keep)+len(uploaded))
	if len(keep) > 0 {
		kept := make(map[string]struct{}, len(keep))
		for _, k := range keep {
			kept[k] = struct{}{}
		}
		for _, doc := range existing {
			if _, ok := kept[doc.URL]; ok {
				final = append(final, doc)
			}
		}
	}
	return append(final, uploaded...)
}

// AppendDocuments keeps every existing entry and appends the uploads. Some
// entities update their attachments this way instead of using a keep list.
func AppendDocuments(existing model.DocumentList, uploaded []model.Document) model.DocumentList {
	final := make(model.DocumentList, 0, len(existing)+len(uploaded))
	final = append(final, existing...)
	return append(final, uploaded...)
}

// RemoveDocumentByURL drops the entry whose URL matches exactly. The second
// return reports whether anything was removed.
func RemoveDocumentByURL(existing model.DocumentList, url string) (model.DocumentList, bool) {
	return removeDocument(existing, func(d model.Document) bool { return d.URL == url })
}

// RemoveDocumentByName drops the entry whose file name matches exactly.
// Customer documents are addressed by name rather than URL.
func RemoveDocumentByName(existing model.DocumentList, name string) (model.DocumentList, bool) {
	return removeDocument(existing, func(d model.Document) bool { return d.Name == name })
}

func removeDocument(existing model.DocumentList, match func(model.Document) bool) (model.DocumentList, bool) {
	final := make(model.DocumentList, 0, len(existing))
	removed := false
	for _, doc := range existing {
		if !removed && match(doc) {
			removed = true
			continue
		}
		final = append(final, doc)
	}
	return final, removed
}
