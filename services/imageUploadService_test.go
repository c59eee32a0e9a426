package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileFromString(name, content string) UploadFile {
	return UploadFile{
		Name: name,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(content)), nil
		},
	}
}

// scriptedHost fails any file whose name appears in failures; successes get
// a URL derived from the file name.
type scriptedHost struct {
	failures map[string]bool
}

func (h scriptedHost) Upload(ctx context.Context, file UploadFile) UploadResult {
	if h.failures[file.Name] {
		return failedUpload(file.Name, "scripted failure")
	}
	return UploadResult{Success: true, URL: "https://img.test/" + file.Name, FileName: file.Name}
}

func TestUploadImagesAggregation(t *testing.T) {
	cases := []struct {
		name     string
		files    int
		failures []string
	}{
		{"all succeed", 3, nil},
		{"one fails", 3, []string{"f1"}},
		{"all fail", 2, []string{"f0", "f1"}},
		{"single file", 1, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			failed := map[string]bool{}
			for _, name := range tc.failures {
				failed[name] = true
			}
			files := make([]UploadFile, tc.files)
			for i := range files {
				files[i] = fileFromString(fmt.Sprintf("f%d", i), "data")
			}

			batch := UploadImages(context.Background(), scriptedHost{failures: failed}, files)

			assert.Equal(t, tc.files, len(batch.Uploaded)+len(batch.Failed))
			assert.Equal(t, len(tc.failures) == 0, batch.Success)
			assert.Len(t, batch.URLs, len(batch.Uploaded))
		})
	}
}

func TestUploadImagesPreservesInputOrder(t *testing.T) {
	files := []UploadFile{
		fileFromString("a.png", "1"),
		fileFromString("b.png", "2"),
		fileFromString("c.png", "3"),
		fileFromString("d.png", "4"),
	}
	host := scriptedHost{failures: map[string]bool{"b.png": true}}

	batch := UploadImages(context.Background(), host, files)

	require.False(t, batch.Success)
	// failures are filtered out; the surviving URLs keep input-index order
	assert.Equal(t, []string{
		"https://img.test/a.png",
		"https://img.test/c.png",
		"https://img.test/d.png",
	}, batch.URLs)
	require.Len(t, batch.Failed, 1)
	assert.Equal(t, "b.png", batch.Failed[0].FileName)
}

func TestUploadImagesEmptyBatch(t *testing.T) {
	batch := UploadImages(context.Background(), scriptedHost{}, nil)
	assert.True(t, batch.Success)
	assert.Empty(t, batch.URLs)
}

func TestImgBBHostSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "test-key", r.FormValue("key"))
		_, _, err := r.FormFile("image")
		require.NoError(t, err)

		fmt.Fprint(w, `{"success":true,"data":{"url":"https://i.ibb.co/x/photo.png","display_url":"https://i.ibb.co/x/photo-d.png","delete_url":"https://ibb.co/del/x","size":12345}}`)
	}))
	defer server.Close()

	host := NewImgBBHost("test-key")
	host.uploadURL = server.URL

	result := host.Upload(context.Background(), fileFromString("photo.png", "pixels"))

	require.True(t, result.Success)
	assert.Equal(t, "https://i.ibb.co/x/photo.png", result.URL)
	assert.Equal(t, "https://i.ibb.co/x/photo-d.png", result.DisplayURL)
	assert.Equal(t, "https://ibb.co/del/x", result.DeleteURL)
	assert.Equal(t, int64(12345), result.Size)
}

func TestImgBBHostServiceReportedFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"success":false,"error":{"message":"Invalid API key"}}`)
	}))
	defer server.Close()

	host := NewImgBBHost("bad-key")
	host.uploadURL = server.URL

	result := host.Upload(context.Background(), fileFromString("photo.png", "pixels"))

	require.False(t, result.Success)
	assert.Equal(t, "Invalid API key", result.Error)
}

func TestImgBBHostNetworkFailureIsTagged(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	host := NewImgBBHost("key")
	host.uploadURL = server.URL

	// a dead endpoint must come back as a tagged failure, never a panic
	result := host.Upload(context.Background(), fileFromString("photo.png", "pixels"))
	require.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
}

func TestImgBBHostUnreadableResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html>not json</html>")
	}))
	defer server.Close()

	host := NewImgBBHost("key")
	host.uploadURL = server.URL

	result := host.Upload(context.Background(), fileFromString("photo.png", "pixels"))
	require.False(t, result.Success)
	assert.Contains(t, result.Error, "unexpected response")
}

func TestUnconfiguredHost(t *testing.T) {
	result := UnconfiguredHost{}.Upload(context.Background(), fileFromString("photo.png", "pixels"))
	require.False(t, result.Success)
	assert.Equal(t, "image hosting is not configured", result.Error)
}
