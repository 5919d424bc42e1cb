package repository

import (
	"context"
	"fmt"

	"github.com/ewint814/nba-game-tracker/internal/store"
)

// PhotoRepository handles photo data access
type PhotoRepository struct {
	db *store.Database
}

// NewPhotoRepository creates a new photo repository
func NewPhotoRepository(db *store.Database) *PhotoRepository {
	return &PhotoRepository{db: db}
}

// Add attaches a photo to a game
func (r *PhotoRepository) Add(ctx context.Context, photo *store.Photo) error {
	query := `
		INSERT INTO photos (game_id, file_path, caption)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.DB().QueryRowContext(ctx, query,
		photo.GameID, photo.FilePath, photo.Caption,
	).Scan(&photo.ID, &photo.CreatedAt)

	if err != nil {
		return fmt.Errorf("inserting photo: %w", err)
	}

	return nil
}

// ListByGame returns all photos attached to a game
func (r *PhotoRepository) ListByGame(ctx context.Context, gameID int) ([]*store.Photo, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT id, game_id, file_path, caption, created_at
		FROM photos
		WHERE game_id = $1
		ORDER BY created_at
	`, gameID)
	if err != nil {
		return nil, fmt.Errorf("querying photos: %w", err)
	}
	defer rows.Close()

	var photos []*store.Photo
	for rows.Next() {
		photo := &store.Photo{}
		if err := rows.Scan(&photo.ID, &photo.GameID, &photo.FilePath, &photo.Caption, &photo.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning photo: %w", err)
		}
		photos = append(photos, photo)
	}

	return photos, rows.Err()
}

// Delete removes a photo record
func (r *PhotoRepository) Delete(ctx context.Context, photoID int) error {
	result, err := r.db.DB().ExecContext(ctx, `DELETE FROM photos WHERE id = $1`, photoID)
	if err != nil {
		return fmt.Errorf("deleting photo: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("photo not found: %d", photoID)
	}

	return nil
}
