package vocabulary

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toevol/toevol-backend/internal/config"
	"github.com/toevol/toevol-backend/internal/domain"
)

// Hand-written mock with overridable function fields. A nil field means the
// test does not expect that call.
type vocabularyRepoMock struct {
	CreateFunc          func(ctx context.Context, v *domain.Vocabulary) (*domain.Vocabulary, error)
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Vocabulary, error)
	ListFunc            func(ctx context.Context, filter domain.VocabularyFilter) ([]*domain.Vocabulary, int, error)
	UpdateFunc          func(ctx context.Context, id uuid.UUID, upd domain.VocabularyUpdate) (*domain.Vocabulary, error)
	ReplaceSynonymsFunc func(ctx context.Context, vocabularyID uuid.UUID, words []string) error
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error
}

func (m *vocabularyRepoMock) Create(ctx context.Context, v *domain.Vocabulary) (*domain.Vocabulary, error) {
	return m.CreateFunc(ctx, v)
}

func (m *vocabularyRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vocabulary, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *vocabularyRepoMock) List(ctx context.Context, filter domain.VocabularyFilter) ([]*domain.Vocabulary, int, error) {
	return m.ListFunc(ctx, filter)
}

func (m *vocabularyRepoMock) Update(ctx context.Context, id uuid.UUID, upd domain.VocabularyUpdate) (*domain.Vocabulary, error) {
	return m.UpdateFunc(ctx, id, upd)
}

func (m *vocabularyRepoMock) ReplaceSynonyms(ctx context.Context, vocabularyID uuid.UUID, words []string) error {
	return m.ReplaceSynonymsFunc(ctx, vocabularyID, words)
}

func (m *vocabularyRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}

type txManagerMock struct{}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService(repo *vocabularyRepoMock) *Service {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(log, repo, &txManagerMock{}, config.PaginationConfig{
		DefaultLimit: 20,
		MaxLimit:     100,
	})
}

func strPtr(s string) *string { return &s }

func TestService_Create(t *testing.T) {
	t.Parallel()

	t.Run("normalizes the word and synonym set", func(t *testing.T) {
		t.Parallel()

		var stored *domain.Vocabulary
		repo := &vocabularyRepoMock{
			CreateFunc: func(ctx context.Context, v *domain.Vocabulary) (*domain.Vocabulary, error) {
				stored = v
				return v, nil
			},
		}
		svc := newTestService(repo)

		got, err := svc.Create(context.Background(), CreateInput{
			Word:          "  Ephemeral ",
			Meaning:       " phù du ",
			PartOfSpeech:  "adjective",
			ExampleSource: "",
			Synonyms:      []string{" Fleeting", "TRANSIENT ", "  "},
		})
		require.NoError(t, err)
		require.NotNil(t, stored)

		assert.Equal(t, "ephemeral", got.Word)
		assert.Equal(t, "phù du", got.Meaning)
		require.NotNil(t, got.PartOfSpeech)
		assert.Equal(t, "adjective", *got.PartOfSpeech)
		assert.Nil(t, got.ExampleSource)

		words := got.SynonymWords()
		assert.Equal(t, []string{"fleeting", "transient"}, words)
	})

	t.Run("missing word and meaning fail validation together", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(&vocabularyRepoMock{})

		_, err := svc.Create(context.Background(), CreateInput{Word: "  ", Meaning: ""})
		require.ErrorIs(t, err, domain.ErrValidation)

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Errors, 2)
	})

	t.Run("duplicate word surfaces as already exists", func(t *testing.T) {
		t.Parallel()

		repo := &vocabularyRepoMock{
			CreateFunc: func(ctx context.Context, v *domain.Vocabulary) (*domain.Vocabulary, error) {
				return nil, domain.ErrAlreadyExists
			},
		}
		svc := newTestService(repo)

		_, err := svc.Create(context.Background(), CreateInput{Word: "happy", Meaning: "vui"})
		require.ErrorIs(t, err, domain.ErrAlreadyExists)
	})
}

func TestService_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      ListInput
		total      int
		wantFilter domain.VocabularyFilter
		wantPage   int
		wantPages  int
	}{
		{
			name:       "defaults",
			input:      ListInput{},
			total:      45,
			wantFilter: domain.VocabularyFilter{Limit: 20, Offset: 0},
			wantPage:   1,
			wantPages:  3,
		},
		{
			name:       "explicit page and limit",
			input:      ListInput{Page: 3, Limit: 10},
			total:      45,
			wantFilter: domain.VocabularyFilter{Limit: 10, Offset: 20},
			wantPage:   3,
			wantPages:  5,
		},
		{
			name:       "limit capped at the maximum",
			input:      ListInput{Limit: 500},
			total:      45,
			wantFilter: domain.VocabularyFilter{Limit: 100, Offset: 0},
			wantPage:   1,
			wantPages:  1,
		},
		{
			name:  "word filter passed through",
			input: ListInput{Word: "eph"},
			total: 1,
			wantFilter: domain.VocabularyFilter{
				Word:  strPtr("eph"),
				Limit: 20,
			},
			wantPage:  1,
			wantPages: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotFilter domain.VocabularyFilter
			repo := &vocabularyRepoMock{
				ListFunc: func(ctx context.Context, filter domain.VocabularyFilter) ([]*domain.Vocabulary, int, error) {
					gotFilter = filter
					return []*domain.Vocabulary{}, tt.total, nil
				},
			}
			svc := newTestService(repo)

			got, err := svc.List(context.Background(), tt.input)
			require.NoError(t, err)

			assert.Equal(t, tt.wantFilter, gotFilter)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.total, got.Total)
			assert.Equal(t, tt.wantPages, got.TotalPages)
		})
	}

	t.Run("negative page fails validation", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(&vocabularyRepoMock{})

		_, err := svc.List(context.Background(), ListInput{Page: -1})
		require.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestService_Update(t *testing.T) {
	t.Parallel()

	t.Run("replaces the synonym set in the same transaction", func(t *testing.T) {
		t.Parallel()

		id := uuid.New()
		var (
			gotUpdate   domain.VocabularyUpdate
			gotReplaced []string
		)
		updated := &domain.Vocabulary{ID: id, Word: "happy", Meaning: "vui"}

		repo := &vocabularyRepoMock{
			UpdateFunc: func(ctx context.Context, gotID uuid.UUID, upd domain.VocabularyUpdate) (*domain.Vocabulary, error) {
				assert.Equal(t, id, gotID)
				gotUpdate = upd
				return updated, nil
			},
			ReplaceSynonymsFunc: func(ctx context.Context, vocabularyID uuid.UUID, words []string) error {
				gotReplaced = words
				return nil
			},
			GetByIDFunc: func(ctx context.Context, gotID uuid.UUID) (*domain.Vocabulary, error) {
				return updated, nil
			},
		}
		svc := newTestService(repo)

		got, err := svc.Update(context.Background(), UpdateInput{
			ID:       id,
			Word:     strPtr(" HAPPY "),
			Synonyms: []string{"Joyful ", "", "glad"},
		})
		require.NoError(t, err)

		require.NotNil(t, gotUpdate.Word)
		assert.Equal(t, "happy", *gotUpdate.Word)
		assert.Nil(t, gotUpdate.Meaning)
		assert.Equal(t, []string{"joyful", "glad"}, gotReplaced)
		assert.Equal(t, updated, got)
	})

	t.Run("nil synonyms leave the set untouched", func(t *testing.T) {
		t.Parallel()

		id := uuid.New()
		entry := &domain.Vocabulary{ID: id, Word: "happy", Meaning: "vui"}

		repo := &vocabularyRepoMock{
			UpdateFunc: func(ctx context.Context, gotID uuid.UUID, upd domain.VocabularyUpdate) (*domain.Vocabulary, error) {
				return entry, nil
			},
			ReplaceSynonymsFunc: func(ctx context.Context, vocabularyID uuid.UUID, words []string) error {
				t.Fatal("synonyms must not be replaced when none were provided")
				return nil
			},
			GetByIDFunc: func(ctx context.Context, gotID uuid.UUID) (*domain.Vocabulary, error) {
				return entry, nil
			},
		}
		svc := newTestService(repo)

		_, err := svc.Update(context.Background(), UpdateInput{
			ID:      id,
			Meaning: strPtr("hạnh phúc"),
		})
		require.NoError(t, err)
	})

	t.Run("blank word fails validation", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(&vocabularyRepoMock{})

		_, err := svc.Update(context.Background(), UpdateInput{
			ID:   uuid.New(),
			Word: strPtr("   "),
		})
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("unknown id surfaces as not found", func(t *testing.T) {
		t.Parallel()

		repo := &vocabularyRepoMock{
			UpdateFunc: func(ctx context.Context, gotID uuid.UUID, upd domain.VocabularyUpdate) (*domain.Vocabulary, error) {
				return nil, domain.ErrNotFound
			},
		}
		svc := newTestService(repo)

		_, err := svc.Update(context.Background(), UpdateInput{
			ID:      uuid.New(),
			Meaning: strPtr("vui"),
		})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	t.Parallel()

	t.Run("nil id fails validation", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(&vocabularyRepoMock{})
		err := svc.Delete(context.Background(), uuid.Nil)
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("unknown id surfaces as not found", func(t *testing.T) {
		t.Parallel()

		repo := &vocabularyRepoMock{
			DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
				return domain.ErrNotFound
			},
		}
		svc := newTestService(repo)

		err := svc.Delete(context.Background(), uuid.New())
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}
