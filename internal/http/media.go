package httpapi

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

type InlineMediaRequest struct {
	URL string `json:"url"`
}

type InlineMediaResponse struct {
	ImageURL string `json:"imageUrl"`
}

// InlineMedia resolves a component image reference. A JSON body passes a
// URL through unchanged; a multipart upload is converted to a data URI and
// stored inline in the component record. There is no blob storage and no
// size or type validation.
func (s *Server) InlineMedia(w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		var req InlineMediaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid payload")
			return
		}
		url := strings.TrimSpace(req.URL)
		if url == "" {
			WriteError(w, http.StatusBadRequest, "Image URL is required")
			return
		}
		WriteJSON(w, http.StatusOK, InlineMediaResponse{ImageURL: url})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Image file is required")
		return
	}
	defer func() { _ = file.Close() }()
	body, err := io.ReadAll(file)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(body) == 0 {
		WriteError(w, http.StatusBadRequest, "Image file is empty")
		return
	}
	mediaType := header.Header.Get("Content-Type")
	if mediaType == "" {
		mediaType = http.DetectContentType(body)
	}
	dataURI := "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(body)
	WriteJSON(w, http.StatusOK, InlineMediaResponse{ImageURL: dataURI})
}
