package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// PG implements Store on Postgres. Each collection is a table shaped
// (id uuid, doc jsonb, created_at, updated_at); partial updates are JSONB
// merges, so the store never needs to understand the documents it holds.
type PG struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

func NewPG(pool *pgxpool.Pool, logger zerolog.Logger) *PG {
	return &PG{pool: pool, log: logger}
}

func table(collection string) string {
	return pgx.Identifier{collection}.Sanitize()
}

// clean returns doc without the reserved gateway keys, so a caller echoing
// back a previously fetched document cannot clobber them.
func clean(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		switch k {
		case "id", "created_at", "updated_at":
			continue
		}
		out[k] = v
	}
	return out
}

func (s *PG) Insert(ctx context.Context, collection string, doc Document) (string, error) {
	id := uuid.New()
	_, err := s.pool.Exec(ctx,
		`INSERT INTO `+table(collection)+` (id, doc, created_at) VALUES ($1, $2, now())`,
		id, clean(doc))
	if err != nil {
		s.log.Error().Err(err).Str("collection", collection).Msg("insert document")
		return "", ErrPersistence
	}
	return id.String(), nil
}

func (s *PG) scan(row pgx.Row) (Document, error) {
	var (
		id        uuid.UUID
		doc       Document
		createdAt time.Time
		updatedAt *time.Time
	)
	if err := row.Scan(&id, &doc, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	if doc == nil {
		doc = Document{}
	}
	doc["id"] = id.String()
	doc["created_at"] = createdAt.UTC().Format(time.RFC3339)
	if updatedAt != nil {
		doc["updated_at"] = updatedAt.UTC().Format(time.RFC3339)
	}
	return doc, nil
}

func (s *PG) FindAll(ctx context.Context, collection string, filter Document) ([]Document, error) {
	if filter == nil {
		filter = Document{}
	}
	rows, err := s.pool.Query(ctx,
		`SELECT id, doc, created_at, updated_at FROM `+table(collection)+
			` WHERE doc @> $1 ORDER BY created_at`,
		filter)
	if err != nil {
		s.log.Error().Err(err).Str("collection", collection).Msg("find documents")
		return nil, ErrPersistence
	}
	defer rows.Close()

	docs := []Document{}
	for rows.Next() {
		doc, err := s.scan(rows)
		if err != nil {
			s.log.Error().Err(err).Str("collection", collection).Msg("scan document")
			return nil, ErrPersistence
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (s *PG) FindByID(ctx context.Context, collection, id string) (Document, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	doc, err := s.scan(s.pool.QueryRow(ctx,
		`SELECT id, doc, created_at, updated_at FROM `+table(collection)+` WHERE id = $1`, uid))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		s.log.Error().Err(err).Str("collection", collection).Str("id", id).Msg("find document by id")
		return nil, ErrPersistence
	}
	return doc, nil
}

func (s *PG) Update(ctx context.Context, collection, id string, fields Document) (bool, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}
	patch := clean(fields)
	// NOT (doc @> patch) mirrors the modified-count contract: a merge that
	// changes no field leaves the row (and its update timestamp) untouched.
	tag, err := s.pool.Exec(ctx,
		`UPDATE `+table(collection)+` SET doc = doc || $2, updated_at = now()
		 WHERE id = $1 AND NOT (doc @> $2)`,
		uid, patch)
	if err != nil {
		s.log.Error().Err(err).Str("collection", collection).Str("id", id).Msg("update document")
		return false, ErrPersistence
	}
	return tag.RowsAffected() > 0, nil
}

func (s *PG) Delete(ctx context.Context, collection, id string) (bool, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}
	tag, err := s.pool.Exec(ctx, `DELETE FROM `+table(collection)+` WHERE id = $1`, uid)
	if err != nil {
		s.log.Error().Err(err).Str("collection", collection).Str("id", id).Msg("delete document")
		return false, ErrPersistence
	}
	return tag.RowsAffected() > 0, nil
}
