package controllers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/config"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/storage"
)

func setupStorage(t *testing.T) {
	t.Helper()
	config.Set("STORAGE_DISK", "local")
	config.Set("STORAGE_LOCAL_ROOT", t.TempDir())
	config.Set("STORAGE_URL", "http://localhost:8080/storage")
	storage.Connect()
}

func multipartUpload(t *testing.T, field, filename string, content []byte, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestUploadRequiresAdmin(t *testing.T) {
	setupStorage(t)

	rec := multipartUpload(t, "image", "arc.png", []byte("png-bytes"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUploadStoresImageAndReturnsURL(t *testing.T) {
	setupStorage(t)
	cookie := adminCookie(t)

	rec := multipartUpload(t, "image", "arc.png", []byte("png-bytes"), cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	decode(t, rec, &body)
	require.True(t, strings.HasPrefix(body["url"], "http://localhost:8080/storage/products/"),
		"unexpected url %q", body["url"])

	// The bytes landed on the disk under the path the URL points at.
	path := strings.TrimPrefix(body["url"], "http://localhost:8080/storage/")
	assert.True(t, storage.Exists(path))
}

func TestUploadRejectsNonImage(t *testing.T) {
	setupStorage(t)
	cookie := adminCookie(t)

	rec := multipartUpload(t, "image", "malware.exe", []byte("MZ"), cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadMissingFile(t *testing.T) {
	setupStorage(t)
	cookie := adminCookie(t)

	rec := multipartUpload(t, "wrong_field", "arc.png", []byte("png-bytes"), cookie)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	decode(t, rec, &body)
	assert.Equal(t, "Missing required fields", body["error"])
}
