package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"realestate_api/internal/app"
	"realestate_api/internal/domain"
)

type Handlers struct {
	Q *app.QueryService
	C *app.CommandService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/api", func(r chi.Router) {
		r.Route("/properties", func(r chi.Router) {
			r.Get("/", h.listProperties)
			r.Get("/search", h.searchProperties)
			r.Post("/", h.createProperty)
			r.Get("/{id}", h.getProperty)
			r.Put("/{id}", h.updateProperty)
			r.Delete("/{id}", h.deleteProperty)
		})
		r.Route("/owners", func(r chi.Router) {
			r.Get("/", h.listOwners)
			r.Post("/", h.createOwner)
			r.Get("/{id}", h.getOwner)
		})
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps the domain taxonomy onto status codes. Infrastructure
// failures stay a generic 500; the detail goes to the log only.
func writeError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	var ce *domain.ConflictError
	var re *domain.ReferenceError
	switch {
	case errors.As(err, &ve):
		writeProblem(w, http.StatusBadRequest, "Validation Failed", ve.Error())
	case errors.As(err, &ce):
		writeProblem(w, http.StatusBadRequest, "Conflict", ce.Error())
	case errors.As(err, &re):
		writeProblem(w, http.StatusBadRequest, "Unknown Reference", re.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", "")
	default:
		log.Error().Err(err).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeWithETag serves v with a weak ETag, answering 304 on If-None-Match.
func writeWithETag(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

// ---- properties ----

func (h *Handlers) listProperties(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.ListProperties(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if out == nil {
		out = []domain.Property{}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) searchProperties(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var f domain.PropertyFilter
	if v := q.Get("name"); v != "" {
		f.Name = &v
	}
	if v := q.Get("address"); v != "" {
		f.Address = &v
	}
	if v := q.Get("idOwner"); v != "" {
		f.OwnerID = &v
	}
	if v := q.Get("minPrice"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid Parameter", "minPrice must be a number")
			return
		}
		f.MinPrice = &p
	}
	if v := q.Get("maxPrice"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid Parameter", "maxPrice must be a number")
			return
		}
		f.MaxPrice = &p
	}

	page, ok := intParam(w, q.Get("page"), "page")
	if !ok {
		return
	}
	pageSize, ok := intParam(w, q.Get("pageSize"), "pageSize")
	if !ok {
		return
	}

	out, err := h.Q.SearchProperties(r.Context(), f, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// intParam parses an optional positive integer query parameter; zero means
// "not set" and lets the service apply its default.
func intParam(w http.ResponseWriter, raw, name string) (int, bool) {
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		writeProblem(w, http.StatusBadRequest, "Invalid Parameter", name+" must be a positive integer")
		return 0, false
	}
	return n, true
}

func (h *Handlers) getProperty(w http.ResponseWriter, r *http.Request) {
	p, err := h.Q.GetProperty(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeWithETag(w, r, p)
}

func (h *Handlers) createProperty(w http.ResponseWriter, r *http.Request) {
	var in domain.PropertyInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "request body must be valid JSON")
		return
	}
	created, err := h.C.CreateProperty(r.Context(), &in)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Location", "/api/properties/"+created.ID)
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) updateProperty(w http.ResponseWriter, r *http.Request) {
	var in domain.PropertyInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "request body must be valid JSON")
		return
	}
	updated, err := h.C.UpdateProperty(r.Context(), chi.URLParam(r, "id"), &in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handlers) deleteProperty(w http.ResponseWriter, r *http.Request) {
	if err := h.C.DeleteProperty(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- owners ----

func (h *Handlers) listOwners(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.ListOwners(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if out == nil {
		out = []domain.Owner{}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) getOwner(w http.ResponseWriter, r *http.Request) {
	o, err := h.Q.GetOwner(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeWithETag(w, r, o)
}

func (h *Handlers) createOwner(w http.ResponseWriter, r *http.Request) {
	var in domain.OwnerInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "request body must be valid JSON")
		return
	}
	created, err := h.C.CreateOwner(r.Context(), &in)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Location", "/api/owners/"+created.ID)
	writeJSON(w, http.StatusCreated, created)
}
