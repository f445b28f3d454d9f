package models

import (
	"encoding/json"
)

type PaintSocketEvent struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func NewPaintSocketEvent(event string, payload interface{}) (PaintSocketEvent, error) {
	if payload == nil {
		return PaintSocketEvent{Event: event}, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return PaintSocketEvent{}, err
	}
	return PaintSocketEvent{Event: event, Payload: raw}, nil
}

// StrokePayload is the wire form of a stroke, both for inbound draw events
// and for the records replayed in load_history. Field names match the
// strokes table columns.
type StrokePayload struct {
	X1        float64 `json:"x1"`
	Y1        float64 `json:"y1"`
	X2        float64 `json:"x2"`
	Y2        float64 `json:"y2"`
	Color     string  `json:"color"`
	LineWidth float64 `json:"line_width"`
	IsEraser  bool    `json:"is_eraser"`
}

func (payload *StrokePayload) ToStroke(roomId uint) *Stroke {
	return &Stroke{
		RoomID:    roomId,
		X1:        payload.X1,
		Y1:        payload.Y1,
		X2:        payload.X2,
		Y2:        payload.Y2,
		Color:     payload.Color,
		LineWidth: payload.LineWidth,
		IsEraser:  payload.IsEraser,
	}
}

type ThumbnailPayload struct {
	Thumbnail string `json:"thumbnail"`
}
