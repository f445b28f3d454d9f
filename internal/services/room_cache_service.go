package services

import (
	"sync"

	"socketPaint/internal/models"
)

type RoomCacheEntry struct {
	Name      string
	Thumbnail *string
}

// RoomCacheService is the process-wide room summary cache: name to
// {name, thumbnail}, rebuilt from the store at startup. It is a derived
// projection and never the source of truth; it may lag the store by at most
// one broadcast cycle.
type RoomCacheService struct {
	mu      sync.RWMutex
	entries map[string]RoomCacheEntry
	repo    RoomListerRepository
}

type RoomListerRepository interface {
	ListRooms() ([]models.Room, error)
}

func NewRoomCacheService(repo RoomListerRepository) *RoomCacheService {
	return &RoomCacheService{
		entries: make(map[string]RoomCacheEntry),
		repo:    repo,
	}
}

// Load bulk-populates the cache from the store. Called once at startup;
// safe to call again at any time to rebuild.
func (rcs *RoomCacheService) Load() error {
	rooms, err := rcs.repo.ListRooms()
	if err != nil {
		return err
	}
	rcs.mu.Lock()
	defer rcs.mu.Unlock()
	rcs.entries = make(map[string]RoomCacheEntry, len(rooms))
	for _, room := range rooms {
		rcs.entries[room.Name] = RoomCacheEntry{
			Name:      room.Name,
			Thumbnail: room.Thumbnail,
		}
	}
	return nil
}

func (rcs *RoomCacheService) Get(name string) (RoomCacheEntry, bool) {
	rcs.mu.RLock()
	defer rcs.mu.RUnlock()
	entry, ok := rcs.entries[name]
	return entry, ok
}

// Add registers a room that was just created, before it has a thumbnail.
func (rcs *RoomCacheService) Add(name string) {
	rcs.mu.Lock()
	defer rcs.mu.Unlock()
	if _, ok := rcs.entries[name]; !ok {
		rcs.entries[name] = RoomCacheEntry{Name: name}
	}
}

func (rcs *RoomCacheService) UpsertThumbnail(name string, thumbnail string) {
	rcs.mu.Lock()
	defer rcs.mu.Unlock()
	rcs.entries[name] = RoomCacheEntry{
		Name:      name,
		Thumbnail: &thumbnail,
	}
}
