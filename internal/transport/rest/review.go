package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/toevol/toevol-backend/internal/domain"
	"github.com/toevol/toevol-backend/internal/service/review"
)

// reviewService defines the minimal interface needed by ReviewHandler.
type reviewService interface {
	CreateSession(ctx context.Context, input review.CreateSessionInput) (*review.CreateSessionResult, error)
	GetSession(ctx context.Context, id uuid.UUID) (*review.SessionDetail, error)
	ListSessions(ctx context.Context) ([]review.SessionSummary, error)
	CheckAnswer(ctx context.Context, input review.CheckAnswerInput) (*review.CheckAnswerResult, error)
}

// ReviewHandler serves the review quiz REST endpoints.
type ReviewHandler struct {
	svc reviewService
	log *slog.Logger
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc reviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{svc: svc, log: logger.With("handler", "review")}
}

type createSessionRequest struct {
	NumberOfQuestions int `json:"number_of_questions"`
}

type questionPromptResponse struct {
	QuestionID    string  `json:"question_id"`
	VocabularyID  string  `json:"vocabulary_id"`
	Meaning       string  `json:"meaning"`
	PartOfSpeech  *string `json:"part_of_speech,omitempty"`
	ExampleSource *string `json:"example_source,omitempty"`
	ExampleTarget *string `json:"example_target,omitempty"`
	ImageURL      *string `json:"image_url,omitempty"`
}

type createSessionResponse struct {
	SessionID      string                   `json:"session_id"`
	TotalQuestions int                      `json:"total_questions"`
	CreatedAt      time.Time                `json:"created_at"`
	Questions      []questionPromptResponse `json:"questions"`
}

type checkAnswerRequest struct {
	QuestionID   string `json:"question_id"`
	UserWord     string `json:"user_word"`
	UserSynonyms string `json:"user_synonyms"`
}

type checkAnswerResponse struct {
	IsCorrect       bool     `json:"is_correct"`
	WordCorrect     bool     `json:"word_correct"`
	SynonymsCorrect bool     `json:"synonyms_correct"`
	CorrectWord     string   `json:"correct_word"`
	UserWord        string   `json:"user_word"`
	CorrectSynonyms []string `json:"correct_synonyms"`
	UserSynonyms    []string `json:"user_synonyms"`
	MissingSynonyms []string `json:"missing_synonyms"`
	ExtraSynonyms   []string `json:"extra_synonyms"`
}

type sessionSummaryResponse struct {
	SessionID       string    `json:"session_id"`
	TotalQuestions  int       `json:"total_questions"`
	CorrectAnswers  int       `json:"correct_answers"`
	ScorePercentage int       `json:"score_percentage"`
	CreatedAt       time.Time `json:"created_at"`
}

type userAnswerResponse struct {
	Word     *string  `json:"word"`
	Synonyms []string `json:"synonyms"`
}

type questionResultResponse struct {
	QuestionID string             `json:"question_id"`
	Vocabulary vocabularyResponse `json:"vocabulary"`
	UserAnswer userAnswerResponse `json:"user_answer"`
	IsCorrect  *bool              `json:"is_correct"`
	AnsweredAt *time.Time         `json:"answered_at"`
}

type sessionDetailResponse struct {
	SessionID       string                   `json:"session_id"`
	Status          string                   `json:"status"`
	TotalQuestions  int                      `json:"total_questions"`
	CorrectAnswers  int                      `json:"correct_answers"`
	ScorePercentage int                      `json:"score_percentage"`
	CreatedAt       time.Time                `json:"created_at"`
	Questions       []questionResultResponse `json:"questions"`
}

// CreateSession handles POST /api/reviews.
func (h *ReviewHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.CreateSession(r.Context(), review.CreateSessionInput{
		NumberOfQuestions: req.NumberOfQuestions,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	questions := make([]questionPromptResponse, len(result.Questions))
	for i, q := range result.Questions {
		questions[i] = questionPromptResponse{
			QuestionID:    q.QuestionID.String(),
			VocabularyID:  q.VocabularyID.String(),
			Meaning:       q.Meaning,
			PartOfSpeech:  q.PartOfSpeech,
			ExampleSource: q.ExampleSource,
			ExampleTarget: q.ExampleTarget,
			ImageURL:      q.ImageURL,
		}
	}

	writeJSON(w, http.StatusCreated, createSessionResponse{
		SessionID:      result.Session.ID.String(),
		TotalQuestions: result.Session.TotalQuestions,
		CreatedAt:      result.Session.CreatedAt,
		Questions:      questions,
	})
}

// ListSessions handles GET /api/reviews.
func (h *ReviewHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.svc.ListSessions(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]sessionSummaryResponse, len(summaries))
	for i, s := range summaries {
		resp[i] = sessionSummaryResponse{
			SessionID:       s.Session.ID.String(),
			TotalQuestions:  s.Session.TotalQuestions,
			CorrectAnswers:  s.Session.CorrectAnswers,
			ScorePercentage: s.ScorePercentage,
			CreatedAt:       s.Session.CreatedAt,
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetSession handles GET /api/reviews/{id}.
func (h *ReviewHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	detail, err := h.svc.GetSession(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	questions := make([]questionResultResponse, len(detail.Questions))
	for i, q := range detail.Questions {
		questions[i] = questionResultResponse{
			QuestionID: q.QuestionID.String(),
			Vocabulary: toVocabularyResponse(q.Vocabulary),
			UserAnswer: userAnswerResponse{
				Word:     q.UserAnswer.Word,
				Synonyms: q.UserAnswer.Synonyms,
			},
			IsCorrect:  q.IsCorrect,
			AnsweredAt: q.AnsweredAt,
		}
	}

	writeJSON(w, http.StatusOK, sessionDetailResponse{
		SessionID:       detail.Session.ID.String(),
		Status:          string(detail.Status),
		TotalQuestions:  detail.Session.TotalQuestions,
		CorrectAnswers:  detail.Session.CorrectAnswers,
		ScorePercentage: detail.ScorePercentage,
		CreatedAt:       detail.Session.CreatedAt,
		Questions:       questions,
	})
}

// CheckAnswer handles POST /api/reviews/{id}/check.
func (h *ReviewHandler) CheckAnswer(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req checkAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := review.CheckAnswerInput{
		SessionID:    sessionID,
		UserWord:     req.UserWord,
		UserSynonyms: req.UserSynonyms,
	}
	if req.QuestionID != "" {
		questionID, err := uuid.Parse(req.QuestionID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid question_id")
			return
		}
		input.QuestionID = questionID
	}

	result, err := h.svc.CheckAnswer(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, checkAnswerResponse{
		IsCorrect:       result.IsCorrect,
		WordCorrect:     result.WordCorrect,
		SynonymsCorrect: result.SynonymsCorrect,
		CorrectWord:     result.CorrectWord,
		UserWord:        result.UserWord,
		CorrectSynonyms: result.CorrectSynonyms,
		UserSynonyms:    result.UserSynonyms,
		MissingSynonyms: result.MissingSynonyms,
		ExtraSynonyms:   result.ExtraSynonyms,
	})
}

func (h *ReviewHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "question already answered")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
