package services

import (
	"testing"

	"socketPaint/internal/models"
)

func TestRoomCacheLoadPopulatesFromStore(t *testing.T) {
	repo := newFakePaintRepository()
	thumb := "data:image/png;base64,BBBB"
	withThumb := &models.Room{Name: "alpha", Thumbnail: &thumb}
	withThumb.ID = 1
	bare := &models.Room{Name: "beta"}
	bare.ID = 2
	repo.rooms = []*models.Room{withThumb, bare}

	cache := NewRoomCacheService(repo)
	if err := cache.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}

	entry, ok := cache.Get("alpha")
	if !ok || entry.Thumbnail == nil || *entry.Thumbnail != thumb {
		t.Fatal("alpha entry missing or missing thumbnail")
	}
	entry, ok = cache.Get("beta")
	if !ok || entry.Thumbnail != nil {
		t.Fatal("beta entry missing or has unexpected thumbnail")
	}
	if _, ok := cache.Get("nope"); ok {
		t.Fatal("unknown room must miss")
	}
}

func TestRoomCacheAddDoesNotClobberThumbnail(t *testing.T) {
	cache := NewRoomCacheService(newFakePaintRepository())
	cache.UpsertThumbnail("alpha", "data:image/png;base64,CCCC")

	cache.Add("alpha")
	entry, _ := cache.Get("alpha")
	if entry.Thumbnail == nil {
		t.Fatal("Add must not erase an existing thumbnail")
	}

	cache.Add("beta")
	entry, ok := cache.Get("beta")
	if !ok || entry.Thumbnail != nil {
		t.Fatal("Add should register a bare entry")
	}
}

func TestRoomCacheRebuildIsSafe(t *testing.T) {
	repo := newFakePaintRepository()
	cache := NewRoomCacheService(repo)
	cache.UpsertThumbnail("stale", "data:image/png;base64,DDDD")

	room := &models.Room{Name: "fresh"}
	room.ID = 1
	repo.rooms = []*models.Room{room}

	if err := cache.Load(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if _, ok := cache.Get("stale"); ok {
		t.Fatal("reload must discard entries absent from the store")
	}
	if _, ok := cache.Get("fresh"); !ok {
		t.Fatal("reload must pick up store rooms")
	}
}
