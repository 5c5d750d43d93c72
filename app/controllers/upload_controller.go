package controllers

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/response"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/storage"
)

// 8 MB upload cap, images only.
const maxUploadBytes = 8 << 20

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadController stores console-uploaded product images on the default
// storage disk.
type UploadController struct{}

func NewUploadController() *UploadController {
	return &UploadController{}
}

// Store accepts a multipart "image" file and returns its public URL.
func (c *UploadController) Store(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid upload")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExts[ext] {
		response.Error(w, http.StatusBadRequest, "Unsupported image type")
		return
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		response.Internal(w)
		return
	}
	path := "products/" + hex.EncodeToString(buf) + ext

	if err := storage.PutStream(path, file); err != nil {
		response.Internal(w)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"url": storage.URL(path)})
}
