package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/vaultpass/passgen-go/internal/model"
)

// GenerationRepository persists generation events. It never sees passwords.
type GenerationRepository struct {
	db *sql.DB
}

// NewGenerationRepository creates a new GenerationRepository.
func NewGenerationRepository(db *sql.DB) *GenerationRepository {
	return &GenerationRepository{db: db}
}

// Record inserts an event, assigning an ID and timestamp when missing.
func (r *GenerationRepository) Record(ctx context.Context, event *model.GenerationEvent) error {
	if r.db == nil {
		return ErrNoDatabase
	}

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO generation_events (id, length, classes, strength, created_at) VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		event.ID,
		event.Length,
		event.Classes,
		event.Strength,
		event.CreatedAt,
	)
	return err
}

// CountByStrength returns the number of recorded events per strength tier.
func (r *GenerationRepository) CountByStrength(ctx context.Context) (map[string]int64, error) {
	if r.db == nil {
		return nil, ErrNoDatabase
	}

	query := `SELECT strength, COUNT(*) FROM generation_events GROUP BY strength`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var (
			strength string
			n        int64
		)
		if err := rows.Scan(&strength, &n); err != nil {
			return nil, err
		}
		counts[strength] = n
	}

	return counts, rows.Err()
}
