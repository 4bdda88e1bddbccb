package archive

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFileStore keys files by name within a folder.
type fakeFileStore struct {
	files   map[string]string // "name|folder" -> file ID
	uploads int
	findErr error
	upErr   error
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{files: make(map[string]string)}
}

func (f *fakeFileStore) FindFile(_ context.Context, name, folderID string) (string, error) {
	if f.findErr != nil {
		return "", f.findErr
	}
	return f.files[name+"|"+folderID], nil
}

func (f *fakeFileStore) UploadFile(_ context.Context, att Attachment, folderID string) (string, error) {
	if f.upErr != nil {
		return "", f.upErr
	}
	f.uploads++
	id := fmt.Sprintf("file-%d", f.uploads)
	f.files[att.Filename+"|"+folderID] = id
	return id, nil
}

func TestWriteIfAbsent(t *testing.T) {
	store := newFakeFileStore()
	att := Attachment{Filename: "(Jane Doe) (14:30:00) (invoice.pdf)", Data: []byte("pdf"), MimeType: "application/pdf"}

	res, err := WriteIfAbsent(t.Context(), store, att, "folder-1")
	require.NoError(t, err)
	assert.True(t, res.Written)
	assert.Equal(t, "file-1", res.FileID)

	// Second write with the same name is a no-op returning the existing ID
	res, err = WriteIfAbsent(t.Context(), store, att, "folder-1")
	require.NoError(t, err)
	assert.False(t, res.Written)
	assert.Equal(t, "file-1", res.FileID)
	assert.Equal(t, 1, store.uploads)
}

func TestWriteIfAbsentDistinctFolders(t *testing.T) {
	store := newFakeFileStore()
	att := Attachment{Filename: "same-name.pdf"}

	res, err := WriteIfAbsent(t.Context(), store, att, "folder-1")
	require.NoError(t, err)
	assert.True(t, res.Written)

	res, err = WriteIfAbsent(t.Context(), store, att, "folder-2")
	require.NoError(t, err)
	assert.True(t, res.Written, "the same name in a different folder is a different file")
}

func TestWriteIfAbsentErrors(t *testing.T) {
	att := Attachment{Filename: "x.pdf"}

	store := newFakeFileStore()
	store.findErr = errors.New("lookup failed")
	_, err := WriteIfAbsent(t.Context(), store, att, "folder-1")
	assert.ErrorIs(t, err, store.findErr)

	store = newFakeFileStore()
	store.upErr = errors.New("upload failed")
	_, err = WriteIfAbsent(t.Context(), store, att, "folder-1")
	assert.ErrorIs(t, err, store.upErr)
}
