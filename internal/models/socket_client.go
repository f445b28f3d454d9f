package models

import (
	"sync"

	"github.com/gorilla/websocket"
)

// SocketClient is one live connection. Writes are serialized through the
// mutex because broadcasts and the room-list ticker share the connection.
type SocketClient struct {
	Conn      *websocket.Conn
	SessionId string
	writeMu   sync.Mutex
}

func (client *SocketClient) Send(event PaintSocketEvent) error {
	client.writeMu.Lock()
	defer client.writeMu.Unlock()
	return client.Conn.WriteJSON(event)
}
