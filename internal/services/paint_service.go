package services

import (
	"strings"

	"socketPaint/internal/errs"
	"socketPaint/internal/models"
)

// PaintRepository is the slice of the persistence gateway the paint service
// consumes. Declared here so tests can run against an in-memory fake.
type PaintRepository interface {
	FindRoomByName(name string) (*models.Room, error)
	CreateRoom(name string) (*models.Room, error)
	ListRooms() ([]models.Room, error)
	ListRoomsOrderedByUpdate() ([]models.Room, error)
	InsertStroke(stroke *models.Stroke) error
	ListStrokes(roomId uint) ([]models.Stroke, error)
	DeleteStrokes(roomId uint) error
	UpdateThumbnail(roomId uint, thumbnail string) error
	TouchRoom(roomId uint) error
}

// PaintService is the store-facing half of the room session coordinator:
// it owns room lookup-or-create, history loading, stroke persistence,
// clears, thumbnails and room summaries. Broadcast fan-out stays with the
// socket handler.
type PaintService struct {
	paintRepo PaintRepository
	roomCache *RoomCacheService
}

func NewPaintService(paintRepo PaintRepository, roomCache *RoomCacheService) *PaintService {
	return &PaintService{
		paintRepo: paintRepo,
		roomCache: roomCache,
	}
}

// ResolveRoom resolves a room name to an existing or freshly created room.
// The returned flag reports whether the room was created by this call.
//
// Lookup and create are deliberately not wrapped in a transaction: two
// simultaneous first-joins may race, and the unique constraint on the name
// column is the backstop.
func (ps *PaintService) ResolveRoom(roomName string) (*models.Room, bool, error) {
	name := strings.TrimSpace(roomName)
	if name == "" {
		return nil, false, errs.ErrInvalidRoomName
	}

	room, err := ps.paintRepo.FindRoomByName(name)
	if err != nil {
		return nil, false, err
	}
	if room != nil {
		return room, false, nil
	}

	room, err = ps.paintRepo.CreateRoom(name)
	if err != nil {
		// Lost a duplicate-create race: the other join's row wins.
		room, err = ps.paintRepo.FindRoomByName(name)
		if err != nil {
			return nil, false, err
		}
		if room == nil {
			return nil, false, errs.ErrRoomNotFound
		}
		return room, false, nil
	}
	ps.roomCache.Add(name)
	return room, true, nil
}

// LoadHistory returns the room's full stroke history in insertion order.
func (ps *PaintService) LoadHistory(roomId uint) ([]models.Stroke, error) {
	return ps.paintRepo.ListStrokes(roomId)
}

// SaveStroke appends the stroke and bumps the room's activity timestamp.
func (ps *PaintService) SaveStroke(roomId uint, payload *models.StrokePayload) error {
	if err := ps.paintRepo.InsertStroke(payload.ToStroke(roomId)); err != nil {
		return err
	}
	return ps.paintRepo.TouchRoom(roomId)
}

// ClearRoom deletes the room's persisted history. A stroke whose insert
// lands after the delete survives the clear; that interleaving is accepted,
// not masked.
func (ps *PaintService) ClearRoom(roomId uint) error {
	if err := ps.paintRepo.DeleteStrokes(roomId); err != nil {
		return err
	}
	return ps.paintRepo.TouchRoom(roomId)
}

// SaveThumbnail persists the thumbnail and keeps the room cache in step.
func (ps *PaintService) SaveThumbnail(room models.RoomRef, thumbnail string) error {
	if thumbnail == "" {
		return errs.ErrInvalidThumbnail
	}
	if err := ps.paintRepo.UpdateThumbnail(room.ID, thumbnail); err != nil {
		return err
	}
	ps.roomCache.UpsertThumbnail(room.Name, thumbnail)
	return ps.paintRepo.TouchRoom(room.ID)
}

// RoomSummaries assembles the externally visible room list, most recently
// updated first. Participant counts come live from the session registry via
// countInGroup and are never persisted.
func (ps *PaintService) RoomSummaries(countInGroup func(roomName string) int) ([]models.RoomSummary, error) {
	rooms, err := ps.paintRepo.ListRoomsOrderedByUpdate()
	if err != nil {
		return nil, err
	}
	summaries := make([]models.RoomSummary, 0, len(rooms))
	for _, room := range rooms {
		summary := room.ToRoomSummary(countInGroup(room.Name))
		if entry, ok := ps.roomCache.Get(room.Name); ok && entry.Thumbnail != nil {
			summary.Thumbnail = entry.Thumbnail
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
