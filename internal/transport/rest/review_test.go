package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/toevol/toevol-backend/internal/domain"
	"github.com/toevol/toevol-backend/internal/service/review"
)

type reviewServiceMock struct {
	CreateSessionFunc func(ctx context.Context, input review.CreateSessionInput) (*review.CreateSessionResult, error)
	GetSessionFunc    func(ctx context.Context, id uuid.UUID) (*review.SessionDetail, error)
	ListSessionsFunc  func(ctx context.Context) ([]review.SessionSummary, error)
	CheckAnswerFunc   func(ctx context.Context, input review.CheckAnswerInput) (*review.CheckAnswerResult, error)
}

func (m *reviewServiceMock) CreateSession(ctx context.Context, input review.CreateSessionInput) (*review.CreateSessionResult, error) {
	return m.CreateSessionFunc(ctx, input)
}

func (m *reviewServiceMock) GetSession(ctx context.Context, id uuid.UUID) (*review.SessionDetail, error) {
	return m.GetSessionFunc(ctx, id)
}

func (m *reviewServiceMock) ListSessions(ctx context.Context) ([]review.SessionSummary, error) {
	return m.ListSessionsFunc(ctx)
}

func (m *reviewServiceMock) CheckAnswer(ctx context.Context, input review.CheckAnswerInput) (*review.CheckAnswerResult, error) {
	return m.CheckAnswerFunc(ctx, input)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newReviewMux(svc reviewService) *http.ServeMux {
	mux := http.NewServeMux()
	h := NewReviewHandler(svc, testLogger())
	mux.HandleFunc("POST /api/reviews", h.CreateSession)
	mux.HandleFunc("GET /api/reviews", h.ListSessions)
	mux.HandleFunc("GET /api/reviews/{id}", h.GetSession)
	mux.HandleFunc("POST /api/reviews/{id}/check", h.CheckAnswer)
	return mux
}

func TestReviewHandler_CreateSession(t *testing.T) {
	t.Parallel()

	sessionID := uuid.New()
	questionID := uuid.New()
	vocabularyID := uuid.New()

	svc := &reviewServiceMock{
		CreateSessionFunc: func(ctx context.Context, input review.CreateSessionInput) (*review.CreateSessionResult, error) {
			if input.NumberOfQuestions != 5 {
				t.Errorf("expected 5 questions requested, got %d", input.NumberOfQuestions)
			}
			return &review.CreateSessionResult{
				Session: &domain.ReviewSession{
					ID:             sessionID,
					TotalQuestions: 1,
					CreatedAt:      time.Now().UTC(),
				},
				Questions: []review.QuestionPrompt{
					{QuestionID: questionID, VocabularyID: vocabularyID, Meaning: "vui vẻ"},
				},
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/reviews",
		strings.NewReader(`{"number_of_questions":5}`))
	rec := httptest.NewRecorder()

	newReviewMux(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp createSessionResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.SessionID != sessionID.String() {
		t.Errorf("expected session_id %s, got %s", sessionID, resp.SessionID)
	}
	if len(resp.Questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(resp.Questions))
	}
	if resp.Questions[0].Meaning != "vui vẻ" {
		t.Errorf("expected meaning %q, got %q", "vui vẻ", resp.Questions[0].Meaning)
	}
}

func TestReviewHandler_CreateSession_ValidationError(t *testing.T) {
	t.Parallel()

	svc := &reviewServiceMock{
		CreateSessionFunc: func(ctx context.Context, input review.CreateSessionInput) (*review.CreateSessionResult, error) {
			return nil, domain.NewValidationError("number_of_questions", "must be at least 1")
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/reviews",
		strings.NewReader(`{"number_of_questions":0}`))
	rec := httptest.NewRecorder()

	newReviewMux(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestReviewHandler_CreateSession_BadBody(t *testing.T) {
	t.Parallel()

	svc := &reviewServiceMock{
		CreateSessionFunc: func(ctx context.Context, input review.CreateSessionInput) (*review.CreateSessionResult, error) {
			t.Fatal("service must not be called on a malformed body")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(`{garbage`))
	rec := httptest.NewRecorder()

	newReviewMux(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestReviewHandler_GetSession_NotFound(t *testing.T) {
	t.Parallel()

	svc := &reviewServiceMock{
		GetSessionFunc: func(ctx context.Context, id uuid.UUID) (*review.SessionDetail, error) {
			return nil, domain.ErrNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/reviews/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()

	newReviewMux(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestReviewHandler_GetSession_InvalidID(t *testing.T) {
	t.Parallel()

	svc := &reviewServiceMock{
		GetSessionFunc: func(ctx context.Context, id uuid.UUID) (*review.SessionDetail, error) {
			t.Fatal("service must not be called for a malformed id")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/reviews/not-a-uuid", nil)
	rec := httptest.NewRecorder()

	newReviewMux(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestReviewHandler_CheckAnswer(t *testing.T) {
	t.Parallel()

	sessionID := uuid.New()
	questionID := uuid.New()

	svc := &reviewServiceMock{
		CheckAnswerFunc: func(ctx context.Context, input review.CheckAnswerInput) (*review.CheckAnswerResult, error) {
			if input.SessionID != sessionID {
				t.Errorf("expected session id %s, got %s", sessionID, input.SessionID)
			}
			if input.QuestionID != questionID {
				t.Errorf("expected question id %s, got %s", questionID, input.QuestionID)
			}
			return &review.CheckAnswerResult{
				IsCorrect:       false,
				WordCorrect:     true,
				CorrectWord:     "happy",
				UserWord:        "Happy",
				CorrectSynonyms: []string{"joyful", "glad"},
				UserSynonyms:    []string{"joyful", "content"},
				MissingSynonyms: []string{"glad"},
				ExtraSynonyms:   []string{"content"},
			}, nil
		},
	}

	body := `{"question_id":"` + questionID.String() + `","user_word":"Happy","user_synonyms":"joyful, content"}`
	req := httptest.NewRequest(http.MethodPost, "/api/reviews/"+sessionID.String()+"/check",
		strings.NewReader(body))
	rec := httptest.NewRecorder()

	newReviewMux(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp checkAnswerResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.IsCorrect {
		t.Error("expected is_correct=false")
	}
	if !resp.WordCorrect {
		t.Error("expected word_correct=true")
	}
	if len(resp.MissingSynonyms) != 1 || resp.MissingSynonyms[0] != "glad" {
		t.Errorf("expected missing_synonyms [glad], got %v", resp.MissingSynonyms)
	}
	if len(resp.ExtraSynonyms) != 1 || resp.ExtraSynonyms[0] != "content" {
		t.Errorf("expected extra_synonyms [content], got %v", resp.ExtraSynonyms)
	}
}

func TestReviewHandler_CheckAnswer_Conflict(t *testing.T) {
	t.Parallel()

	svc := &reviewServiceMock{
		CheckAnswerFunc: func(ctx context.Context, input review.CheckAnswerInput) (*review.CheckAnswerResult, error) {
			return nil, domain.ErrConflict
		},
	}

	body := `{"question_id":"` + uuid.New().String() + `","user_word":"happy"}`
	req := httptest.NewRequest(http.MethodPost, "/api/reviews/"+uuid.New().String()+"/check",
		strings.NewReader(body))
	rec := httptest.NewRecorder()

	newReviewMux(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", rec.Code)
	}
}

func TestReviewHandler_ListSessions(t *testing.T) {
	t.Parallel()

	svc := &reviewServiceMock{
		ListSessionsFunc: func(ctx context.Context) ([]review.SessionSummary, error) {
			return []review.SessionSummary{
				{
					Session: &domain.ReviewSession{
						ID:             uuid.New(),
						TotalQuestions: 4,
						CorrectAnswers: 3,
						CreatedAt:      time.Now().UTC(),
					},
					ScorePercentage: 75,
				},
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/reviews", nil)
	rec := httptest.NewRecorder()

	newReviewMux(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp []sessionSummaryResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(resp))
	}
	if resp[0].ScorePercentage != 75 {
		t.Errorf("expected score_percentage 75, got %d", resp[0].ScorePercentage)
	}
}

func TestReviewHandler_InternalError(t *testing.T) {
	t.Parallel()

	svc := &reviewServiceMock{
		ListSessionsFunc: func(ctx context.Context) ([]review.SessionSummary, error) {
			return nil, errors.New("boom")
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/reviews", nil)
	rec := httptest.NewRecorder()

	newReviewMux(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
}
