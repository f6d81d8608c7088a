package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rental-service/internal/model"
)

func docList(urls ...string) model.DocumentList {
	list := make(model.DocumentList, 0, len(urls))
	for _, url := range urls {
		list = append(list, model.Document{Name: "f" + url, Type: "application/pdf", Size: 10, URL: url})
	}
	return list
}

func TestMergeDocumentsKeepSubset(t *testing.T) {
	existing := docList("/a", "/b", "/c")
	uploaded := []model.Document{{Name: "d.pdf", URL: "/d"}}

	final := MergeDocuments(existing, []string{"/a", "/c"}, uploaded)

	assert.Len(t, final, 3)
	assert.Equal(t, "/a", final[0].URL)
	assert.Equal(t, "/c", final[1].URL)
	assert.Equal(t, "/d", final[2].URL)
}

func TestMergeDocumentsEmptyKeepDropsAll(t *testing.T) {
	existing := docList("/a", "/b")

	assert.Empty(t, MergeDocuments(existing, nil, nil))

	final := MergeDocuments(existing, []string{}, []model.Document{{URL: "/c"}})
	assert.Len(t, final, 1)
	assert.Equal(t, "/c", final[0].URL)
}

func TestMergeDocumentsKeepPreservesOriginalOrder(t *testing.T) {
	existing := docList("/a", "/b", "/c")

	// keep order does not matter, existing order wins
	final := MergeDocuments(existing, []string{"/c", "/a"}, nil)

	assert.Len(t, final, 2)
	assert.Equal(t, "/a", final[0].URL)
	assert.Equal(t, "/c", final[1].URL)
}

func TestAppendDocuments(t *testing.T) {
	existing := docList("/a")
	final := AppendDocuments(existing, []model.Document{{URL: "/b"}, {URL: "/c"}})

	assert.Len(t, final, 3)
	assert.Equal(t, "/a", final[0].URL)
	assert.Equal(t, "/c", final[2].URL)
}

func TestRemoveDocumentByURL(t *testing.T) {
	existing := docList("/a", "/b", "/c")

	final, removed := RemoveDocumentByURL(existing, "/b")
	assert.True(t, removed)
	assert.Len(t, final, 2)
	assert.Equal(t, "/a", final[0].URL)
	assert.Equal(t, "/c", final[1].URL)

	_, removed = RemoveDocumentByURL(existing, "/missing")
	assert.False(t, removed)
}

func TestRemoveDocumentByURLFirstMatchOnly(t *testing.T) {
	existing := docList("/dup", "/dup")

	final, removed := RemoveDocumentByURL(existing, "/dup")
	assert.True(t, removed)
	assert.Len(t, final, 1)
}

func TestRemoveDocumentByName(t *testing.T) {
	existing := model.DocumentList{
		{Name: "cin.pdf", URL: "/a"},
		{Name: "permis.pdf", URL: "/b"},
	}

	final, removed := RemoveDocumentByName(existing, "permis.pdf")
	assert.True(t, removed)
	assert.Len(t, final, 1)
	assert.Equal(t, "cin.pdf", final[0].Name)

	_, removed = RemoveDocumentByName(existing, "passeport.pdf")
	assert.False(t, removed)
}
