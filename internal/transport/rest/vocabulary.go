package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/toevol/toevol-backend/internal/domain"
	"github.com/toevol/toevol-backend/internal/service/vocabulary"
)

// vocabularyService defines the minimal interface needed by VocabularyHandler.
type vocabularyService interface {
	Create(ctx context.Context, input vocabulary.CreateInput) (*domain.Vocabulary, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Vocabulary, error)
	List(ctx context.Context, input vocabulary.ListInput) (*vocabulary.ListResult, error)
	Update(ctx context.Context, input vocabulary.UpdateInput) (*domain.Vocabulary, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// VocabularyHandler serves the library REST endpoints.
type VocabularyHandler struct {
	svc vocabularyService
	log *slog.Logger
}

// NewVocabularyHandler creates a VocabularyHandler.
func NewVocabularyHandler(svc vocabularyService, logger *slog.Logger) *VocabularyHandler {
	return &VocabularyHandler{svc: svc, log: logger.With("handler", "vocabulary")}
}

type createVocabularyRequest struct {
	Word          string   `json:"word"`
	Meaning       string   `json:"meaning"`
	PartOfSpeech  string   `json:"part_of_speech"`
	ExampleSource string   `json:"example_source"`
	ExampleTarget string   `json:"example_target"`
	ImageURL      string   `json:"image_url"`
	Synonyms      []string `json:"synonyms"`
}

type updateVocabularyRequest struct {
	Word          *string  `json:"word"`
	Meaning       *string  `json:"meaning"`
	PartOfSpeech  *string  `json:"part_of_speech"`
	ExampleSource *string  `json:"example_source"`
	ExampleTarget *string  `json:"example_target"`
	ImageURL      *string  `json:"image_url"`
	Synonyms      []string `json:"synonyms"`
}

type vocabularyResponse struct {
	ID            string    `json:"id"`
	Word          string    `json:"word"`
	Meaning       string    `json:"meaning"`
	PartOfSpeech  *string   `json:"part_of_speech,omitempty"`
	ExampleSource *string   `json:"example_source,omitempty"`
	ExampleTarget *string   `json:"example_target,omitempty"`
	ImageURL      *string   `json:"image_url,omitempty"`
	Synonyms      []string  `json:"synonyms"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type listVocabulariesResponse struct {
	Data       []vocabularyResponse `json:"data"`
	Pagination paginationResponse   `json:"pagination"`
}

type paginationResponse struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// Create handles POST /api/vocabularies.
func (h *VocabularyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createVocabularyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.svc.Create(r.Context(), vocabulary.CreateInput{
		Word:          req.Word,
		Meaning:       req.Meaning,
		PartOfSpeech:  req.PartOfSpeech,
		ExampleSource: req.ExampleSource,
		ExampleTarget: req.ExampleTarget,
		ImageURL:      req.ImageURL,
		Synonyms:      req.Synonyms,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toVocabularyResponse(entry))
}

// List handles GET /api/vocabularies.
func (h *VocabularyHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	input := vocabulary.ListInput{
		Word:    q.Get("word"),
		Meaning: q.Get("meaning"),
	}
	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid page")
			return
		}
		input.Page = page
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		input.Limit = limit
	}

	result, err := h.svc.List(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	data := make([]vocabularyResponse, len(result.Items))
	for i, item := range result.Items {
		data[i] = toVocabularyResponse(item)
	}

	writeJSON(w, http.StatusOK, listVocabulariesResponse{
		Data: data,
		Pagination: paginationResponse{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	})
}

// Get handles GET /api/vocabularies/{id}.
func (h *VocabularyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	entry, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toVocabularyResponse(entry))
}

// Update handles PUT /api/vocabularies/{id}.
func (h *VocabularyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateVocabularyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.svc.Update(r.Context(), vocabulary.UpdateInput{
		ID:            id,
		Word:          req.Word,
		Meaning:       req.Meaning,
		PartOfSpeech:  req.PartOfSpeech,
		ExampleSource: req.ExampleSource,
		ExampleTarget: req.ExampleTarget,
		ImageURL:      req.ImageURL,
		Synonyms:      req.Synonyms,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toVocabularyResponse(entry))
}

// Delete handles DELETE /api/vocabularies/{id}.
func (h *VocabularyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "vocabulary deleted"})
}

func (h *VocabularyHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "vocabulary not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "word already exists")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// pathID parses the {id} path segment, responding with 400 on garbage.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

func toVocabularyResponse(v *domain.Vocabulary) vocabularyResponse {
	return vocabularyResponse{
		ID:            v.ID.String(),
		Word:          v.Word,
		Meaning:       v.Meaning,
		PartOfSpeech:  v.PartOfSpeech,
		ExampleSource: v.ExampleSource,
		ExampleTarget: v.ExampleTarget,
		ImageURL:      v.ImageURL,
		Synonyms:      v.SynonymWords(),
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}
