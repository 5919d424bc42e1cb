package service

import (
	"context"
	"fmt"

	"github.com/ewint814/nba-game-tracker/internal/store"
	"github.com/ewint814/nba-game-tracker/internal/store/repository"
)

// PhotoService handles photos attached to attended games
type PhotoService struct {
	photoRepo *repository.PhotoRepository
	gameRepo  *repository.GameRepository
}

// NewPhotoService creates a new photo service
func NewPhotoService(db *store.Database) *PhotoService {
	return &PhotoService{
		photoRepo: repository.NewPhotoRepository(db),
		gameRepo:  repository.NewGameRepository(db),
	}
}

// AddPhoto attaches a photo to an attended game. The image file itself
// lives on disk; only the path and caption are stored.
func (s *PhotoService) AddPhoto(ctx context.Context, gameID int, filePath, caption string) (*store.Photo, error) {
	if filePath == "" {
		return nil, fmt.Errorf("file path is required")
	}

	// Verify the game exists before attaching
	if _, err := s.gameRepo.GetByID(ctx, gameID); err != nil {
		return nil, err
	}

	photo := &store.Photo{
		GameID:   gameID,
		FilePath: filePath,
		Caption:  toNullString(caption),
	}

	if err := s.photoRepo.Add(ctx, photo); err != nil {
		return nil, err
	}

	return photo, nil
}

// ListPhotos returns all photos for a game
func (s *PhotoService) ListPhotos(ctx context.Context, gameID int) ([]*store.Photo, error) {
	return s.photoRepo.ListByGame(ctx, gameID)
}

// DeletePhoto removes a photo record
func (s *PhotoService) DeletePhoto(ctx context.Context, photoID int) error {
	return s.photoRepo.Delete(ctx, photoID)
}
