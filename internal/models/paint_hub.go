package models

import (
	"sync"
)

// RoomRef is the room a session currently occupies: the store-assigned id
// plus the human-chosen name used as the broadcast routing key.
type RoomRef struct {
	ID   uint
	Name string
}

// PaintHub is the session registry: every live connection, plus the
// membership group of each room. A client belongs to at most one room at a
// time. Clients inside a group are kept in join order, which is also the
// broadcast delivery order.
type PaintHub struct {
	mu      sync.Mutex
	clients map[string]*SocketClient
	rooms   map[string][]*SocketClient
	current map[*SocketClient]*RoomRef
}

func NewPaintHub() *PaintHub {
	return &PaintHub{
		clients: make(map[string]*SocketClient),
		rooms:   make(map[string][]*SocketClient),
		current: make(map[*SocketClient]*RoomRef),
	}
}

// Register adds a freshly connected client with no current room.
func (hub *PaintHub) Register(client *SocketClient) {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	hub.clients[client.SessionId] = client
}

// Unregister forgets a disconnected client, leaving its group first if it
// still occupies one. Safe to call for clients that never joined a room.
func (hub *PaintHub) Unregister(client *SocketClient) {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	hub.leaveGroupLocked(client)
	delete(hub.clients, client.SessionId)
}

// JoinGroup puts the client into the named room's group. A join supersedes
// any prior membership: the client leaves its old group first. Re-joining
// the room it already occupies only refreshes the room ref.
func (hub *PaintHub) JoinGroup(client *SocketClient, room RoomRef) {
	hub.mu.Lock()
	defer hub.mu.Unlock()

	if ref := hub.current[client]; ref != nil {
		if ref.Name == room.Name {
			hub.current[client] = &room
			return
		}
		hub.leaveGroupLocked(client)
	}

	hub.rooms[room.Name] = append(hub.rooms[room.Name], client)
	hub.current[client] = &room
}

// LeaveGroup removes the client from its current group, if any.
func (hub *PaintHub) LeaveGroup(client *SocketClient) {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	hub.leaveGroupLocked(client)
}

func (hub *PaintHub) leaveGroupLocked(client *SocketClient) {
	ref := hub.current[client]
	if ref == nil {
		return
	}
	members := hub.rooms[ref.Name]
	for i, member := range members {
		if member == client {
			hub.rooms[ref.Name] = append(members[:i], members[i+1:]...)
			break
		}
	}
	if len(hub.rooms[ref.Name]) == 0 {
		delete(hub.rooms, ref.Name)
	}
	delete(hub.current, client)
}

// CurrentRoomOf returns the room the client occupies, or nil.
func (hub *PaintHub) CurrentRoomOf(client *SocketClient) *RoomRef {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	return hub.current[client]
}

func (hub *PaintHub) CountInGroup(roomName string) int {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	return len(hub.rooms[roomName])
}

// ClientsInGroup returns a snapshot of the room's members in join order.
func (hub *PaintHub) ClientsInGroup(roomName string) []*SocketClient {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	members := hub.rooms[roomName]
	snapshot := make([]*SocketClient, len(members))
	copy(snapshot, members)
	return snapshot
}

// AllClients returns a snapshot of every live connection, joined or not.
func (hub *PaintHub) AllClients() []*SocketClient {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	snapshot := make([]*SocketClient, 0, len(hub.clients))
	for _, client := range hub.clients {
		snapshot = append(snapshot, client)
	}
	return snapshot
}
