package models

import (
	"gorm.io/gorm"
)

// Stroke is one line segment of drawing history. Coordinates and line width
// are device pixels, already resolution-adjusted by the producing client.
// Strokes are append-only; the only deletion path is a full-room clear.
type Stroke struct {
	gorm.Model
	RoomID    uint    `gorm:"index;not null" json:"-"`
	X1        float64 `json:"x1"`
	Y1        float64 `json:"y1"`
	X2        float64 `json:"x2"`
	Y2        float64 `json:"y2"`
	Color     string  `json:"color"`
	LineWidth float64 `json:"line_width"`
	IsEraser  bool    `json:"is_eraser"`
}

func (stroke *Stroke) ToStrokePayload() StrokePayload {
	return StrokePayload{
		X1:        stroke.X1,
		Y1:        stroke.Y1,
		X2:        stroke.X2,
		Y2:        stroke.Y2,
		Color:     stroke.Color,
		LineWidth: stroke.LineWidth,
		IsEraser:  stroke.IsEraser,
	}
}
