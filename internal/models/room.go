package models

import (
	"gorm.io/gorm"
)

// Room is a named, persistent drawing canvas. UpdatedAt doubles as the
// last-activity timestamp and is bumped on every mutation touching the room.
type Room struct {
	gorm.Model
	Name      string   `gorm:"unique;not null" json:"name"`
	Thumbnail *string  `json:"thumbnail"`
	Strokes   []Stroke `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}

func (room *Room) ToRoomSummary(participantCount int) RoomSummary {
	return RoomSummary{
		Name:             room.Name,
		ParticipantCount: participantCount,
		Thumbnail:        room.Thumbnail,
	}
}
