package httpapi

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/aalvaropc/svgsym/internal/buildinfo"
	"github.com/aalvaropc/svgsym/internal/domain"
	"github.com/go-chi/chi/v5/middleware"
)

// Form field names accepted by the treat endpoint.
const (
	fieldSVG           = "svg"
	fieldSlug          = "slug"
	fieldID            = "id"
	fieldIncludeSvgTag = "includeSvgTag"
	fieldReplaceColors = "replaceColors"

	checkboxOn = "on"
)

func (s *Server) handleTreat(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)

	if err := s.parseForm(r); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeMessage(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		writeMessage(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	identifier := r.PostForm.Get(fieldSlug)
	if identifier == "" {
		identifier = r.PostForm.Get(fieldID)
	}

	res, err := s.treat.Execute(r.Context(), domain.TreatmentRequest{
		RawSVG:           r.PostForm.Get(fieldSVG),
		Identifier:       identifier,
		IncludeContainer: r.PostForm.Get(fieldIncludeSvgTag) == checkboxOn,
		ReplaceColors:    r.PostForm.Get(fieldReplaceColors) == checkboxOn,
	})
	if err != nil {
		if domain.IsRequestError(err) {
			writeMessage(w, http.StatusBadRequest, domain.UserMessage(err))
			return
		}
		s.log.Error("treat.failed", "request_id", middleware.GetReqID(r.Context()), "err", err)
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"result": res.Output,
		"status": "success",
	})
}

// parseForm accepts urlencoded and multipart bodies. Only text fields are
// read; a file part named svg counts as a missing field.
func (s *Server) parseForm(r *http.Request) error {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "multipart/form-data" {
		return r.ParseMultipartForm(s.maxBodyBytes)
	}
	return r.ParseForm()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"version": buildinfo.Version,
		"commit":  buildinfo.Commit,
		"date":    buildinfo.Date,
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"message": msg})
}
