package models

import (
	"encoding/json"
)

const REDIS_CHANNEL_PAINT = "paint_events"

// RedisPublishedEvent carries a relayed paint event between instances. The
// instance id lets a subscriber skip events it published itself.
type RedisPublishedEvent struct {
	InstanceId string          `json:"instance_id"`
	RoomName   string          `json:"room_name,omitempty"`
	Event      string          `json:"event"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}
