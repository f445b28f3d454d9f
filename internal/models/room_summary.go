package models

type RoomSummary struct {
	Name             string  `json:"name"`
	ParticipantCount int     `json:"participant_count"`
	Thumbnail        *string `json:"thumbnail"`
}
