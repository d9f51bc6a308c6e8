// Package vocabulary implements the vocabulary repository using PostgreSQL.
// Fixed-shape queries use raw SQL constants; the library search builds its
// WHERE clause dynamically with squirrel (optional ILIKE filters + pagination).
package vocabulary

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/toevol/toevol-backend/internal/adapter/postgres"
	"github.com/toevol/toevol-backend/internal/domain"
)

// Repo provides vocabulary persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new vocabulary repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const vocabularyColumns = `id, word, meaning, part_of_speech, example_source, example_target, image_url, created_at, updated_at`

const createSQL = `
INSERT INTO vocabularies (id, word, meaning, part_of_speech, example_source, example_target, image_url, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
RETURNING ` + vocabularyColumns

const getByIDSQL = `
SELECT ` + vocabularyColumns + `
FROM vocabularies
WHERE id = $1`

const deleteSQL = `DELETE FROM vocabularies WHERE id = $1`

const listIDsSQL = `SELECT id FROM vocabularies`

const getByIDsSQL = `
SELECT ` + vocabularyColumns + `
FROM vocabularies
WHERE id = ANY($1::uuid[])`

const synonymsByVocabularyIDsSQL = `
SELECT id, vocabulary_id, word
FROM synonyms
WHERE vocabulary_id = ANY($1::uuid[])
ORDER BY vocabulary_id`

const deleteSynonymsSQL = `DELETE FROM synonyms WHERE vocabulary_id = $1`

const insertSynonymSQL = `INSERT INTO synonyms (id, vocabulary_id, word) VALUES ($1, $2, $3)`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a vocabulary entry with its synonym set.
// Returns domain.ErrNotFound if the entry does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vocabulary, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, id)

	v, err := scanVocabulary(row)
	if err != nil {
		return nil, postgres.MapError(err, "vocabulary", id)
	}

	if err := r.attachSynonyms(ctx, []*domain.Vocabulary{v}); err != nil {
		return nil, err
	}

	return v, nil
}

// GetByIDs returns vocabulary entries with synonyms for the given ids.
// Missing ids are silently omitted; order is unspecified.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Vocabulary, error) {
	if len(ids) == 0 {
		return []*domain.Vocabulary{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("get vocabularies by ids: %w", err)
	}
	defer rows.Close()

	vocabs, err := scanVocabularies(rows)
	if err != nil {
		return nil, fmt.Errorf("get vocabularies by ids: %w", err)
	}

	if err := r.attachSynonyms(ctx, vocabs); err != nil {
		return nil, err
	}

	return vocabs, nil
}

// List returns a page of the library matching the filter, newest first,
// plus the total match count. Word/Meaning filters are case-insensitive
// substring matches.
func (r *Repo) List(ctx context.Context, filter domain.VocabularyFilter) ([]*domain.Vocabulary, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	where := sq.And{}
	if filter.Word != nil && *filter.Word != "" {
		where = append(where, sq.ILike{"word": "%" + *filter.Word + "%"})
	}
	if filter.Meaning != nil && *filter.Meaning != "" {
		where = append(where, sq.ILike{"meaning": "%" + *filter.Meaning + "%"})
	}

	countQuery := psql.Select("count(*)").From("vocabularies")
	if len(where) > 0 {
		countQuery = countQuery.Where(where)
	}
	countSQLStr, countArgs, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQLStr, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count vocabularies: %w", err)
	}

	listQuery := psql.Select(vocabularyColumns).
		From("vocabularies").
		OrderBy("created_at DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))
	if len(where) > 0 {
		listQuery = listQuery.Where(where)
	}
	listSQLStr, listArgs, err := listQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := querier.Query(ctx, listSQLStr, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list vocabularies: %w", err)
	}
	defer rows.Close()

	vocabs, err := scanVocabularies(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list vocabularies: %w", err)
	}

	if err := r.attachSynonyms(ctx, vocabs); err != nil {
		return nil, 0, err
	}

	return vocabs, total, nil
}

// ListIDs returns the ids of every entry in the pool. Used by the session
// sampler, which needs the full pool for uniform selection.
func (r *Repo) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listIDsSQL)
	if err != nil {
		return nil, fmt.Errorf("list vocabulary ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan vocabulary id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vocabulary ids: %w", err)
	}

	return ids, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a vocabulary entry together with its synonym set.
// Returns domain.ErrAlreadyExists when the word is already in the library.
func (r *Repo) Create(ctx context.Context, v *domain.Vocabulary) (*domain.Vocabulary, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		v.ID, v.Word, v.Meaning, v.PartOfSpeech, v.ExampleSource, v.ExampleTarget, v.ImageURL, v.CreatedAt,
	)

	created, err := scanVocabulary(row)
	if err != nil {
		return nil, postgres.MapError(err, "vocabulary", v.ID)
	}

	if err := r.insertSynonyms(ctx, created.ID, synonymWords(v.Synonyms)); err != nil {
		return nil, err
	}

	if err := r.attachSynonyms(ctx, []*domain.Vocabulary{created}); err != nil {
		return nil, err
	}

	return created, nil
}

// Update applies a partial update built dynamically from non-nil fields and
// returns the updated entry without synonyms reattached; callers that also
// replace synonyms re-read afterwards. Returns domain.ErrNotFound if the
// entry does not exist and domain.ErrAlreadyExists on a word collision.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, upd domain.VocabularyUpdate) (*domain.Vocabulary, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	q := psql.Update("vocabularies").Set("updated_at", time.Now().UTC())
	if upd.Word != nil {
		q = q.Set("word", *upd.Word)
	}
	if upd.Meaning != nil {
		q = q.Set("meaning", *upd.Meaning)
	}
	if upd.PartOfSpeech != nil {
		q = q.Set("part_of_speech", nullable(*upd.PartOfSpeech))
	}
	if upd.ExampleSource != nil {
		q = q.Set("example_source", nullable(*upd.ExampleSource))
	}
	if upd.ExampleTarget != nil {
		q = q.Set("example_target", nullable(*upd.ExampleTarget))
	}
	if upd.ImageURL != nil {
		q = q.Set("image_url", nullable(*upd.ImageURL))
	}
	q = q.Where(sq.Eq{"id": id}).Suffix("RETURNING " + vocabularyColumns)

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	row := querier.QueryRow(ctx, sqlStr, args...)

	v, err := scanVocabulary(row)
	if err != nil {
		return nil, postgres.MapError(err, "vocabulary", id)
	}

	return v, nil
}

// ReplaceSynonyms swaps the whole synonym set for an entry: full delete then
// reinsert, so the stored set always mirrors the latest edit. Callers run it
// inside a transaction together with Update.
func (r *Repo) ReplaceSynonyms(ctx context.Context, vocabularyID uuid.UUID, words []string) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteSynonymsSQL, vocabularyID); err != nil {
		return postgres.MapError(err, "synonyms", vocabularyID)
	}

	return r.insertSynonyms(ctx, vocabularyID, words)
}

// Delete removes an entry; synonyms go with it by cascade.
// Returns domain.ErrNotFound if the entry does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "vocabulary", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("vocabulary %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) insertSynonyms(ctx context.Context, vocabularyID uuid.UUID, words []string) error {
	if len(words) == 0 {
		return nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for _, w := range words {
		batch.Queue(insertSynonymSQL, uuid.New(), vocabularyID, w)
	}

	results := querier.SendBatch(ctx, batch)
	defer results.Close()

	for range words {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "synonym", vocabularyID)
		}
	}

	return nil
}

// attachSynonyms loads the synonym sets for the given entries in one query.
func (r *Repo) attachSynonyms(ctx context.Context, vocabs []*domain.Vocabulary) error {
	if len(vocabs) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(vocabs))
	byID := make(map[uuid.UUID]*domain.Vocabulary, len(vocabs))
	for i, v := range vocabs {
		ids[i] = v.ID
		byID[v.ID] = v
		v.Synonyms = []domain.Synonym{}
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, synonymsByVocabularyIDsSQL, ids)
	if err != nil {
		return fmt.Errorf("get synonyms: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s domain.Synonym
		if err := rows.Scan(&s.ID, &s.VocabularyID, &s.Word); err != nil {
			return fmt.Errorf("scan synonym: %w", err)
		}
		if v, ok := byID[s.VocabularyID]; ok {
			v.Synonyms = append(v.Synonyms, s)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate synonyms: %w", err)
	}

	return nil
}

func scanVocabulary(row pgx.Row) (*domain.Vocabulary, error) {
	var v domain.Vocabulary
	err := row.Scan(
		&v.ID, &v.Word, &v.Meaning, &v.PartOfSpeech,
		&v.ExampleSource, &v.ExampleTarget, &v.ImageURL,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func scanVocabularies(rows pgx.Rows) ([]*domain.Vocabulary, error) {
	vocabs := []*domain.Vocabulary{}
	for rows.Next() {
		v, err := scanVocabulary(rows)
		if err != nil {
			return nil, err
		}
		vocabs = append(vocabs, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return vocabs, nil
}

func synonymWords(syns []domain.Synonym) []string {
	words := make([]string, len(syns))
	for i, s := range syns {
		words[i] = s.Word
	}
	return words
}

// nullable maps an empty string to NULL for optional text columns.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
