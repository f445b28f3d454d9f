package repositories

import (
	"errors"
	"socketPaint/internal/models"
	"time"

	"gorm.io/gorm"
)

// PaintRepository is the persistence gateway: typed queries over the rooms
// and strokes tables, no business logic.
type PaintRepository struct {
	db *gorm.DB
}

func NewPaintRepository(db *gorm.DB) *PaintRepository {
	return &PaintRepository{
		db: db,
	}
}

// FindRoomByName returns nil without an error when no room has that name.
func (pr *PaintRepository) FindRoomByName(name string) (*models.Room, error) {
	var room models.Room
	result := pr.db.Where("name = ?", name).First(&room)
	if err := result.Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

func (pr *PaintRepository) CreateRoom(name string) (*models.Room, error) {
	room := models.Room{
		Name: name,
	}
	result := pr.db.Create(&room)
	if err := result.Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (pr *PaintRepository) ListRooms() ([]models.Room, error) {
	var rooms []models.Room
	result := pr.db.Find(&rooms)
	if err := result.Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (pr *PaintRepository) ListRoomsOrderedByUpdate() ([]models.Room, error) {
	var rooms []models.Room
	result := pr.db.Order("updated_at DESC").Find(&rooms)
	if err := result.Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (pr *PaintRepository) InsertStroke(stroke *models.Stroke) error {
	return pr.db.Create(stroke).Error
}

// ListStrokes returns the room's history in insertion order. The id
// tie-breaker keeps replay deterministic when timestamps collide.
func (pr *PaintRepository) ListStrokes(roomId uint) ([]models.Stroke, error) {
	var strokes []models.Stroke
	result := pr.db.Where("room_id = ?", roomId).Order("created_at ASC, id ASC").Find(&strokes)
	if err := result.Error; err != nil {
		return nil, err
	}
	return strokes, nil
}

// DeleteStrokes removes the room's history for real. Without Unscoped the
// embedded DeletedAt would turn every clear into a soft delete and cleared
// rows would pile up forever.
func (pr *PaintRepository) DeleteStrokes(roomId uint) error {
	return pr.db.Unscoped().Where("room_id = ?", roomId).Delete(&models.Stroke{}).Error
}

func (pr *PaintRepository) UpdateThumbnail(roomId uint, thumbnail string) error {
	return pr.db.Model(&models.Room{}).Where("id = ?", roomId).Update("thumbnail", thumbnail).Error
}

func (pr *PaintRepository) TouchRoom(roomId uint) error {
	return pr.db.Model(&models.Room{}).Where("id = ?", roomId).Update("updated_at", time.Now()).Error
}
