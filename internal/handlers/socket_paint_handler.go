package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"socketPaint/configs"
	"socketPaint/internal/enums"
	"socketPaint/internal/errs"
	"socketPaint/internal/models"
	redisModels "socketPaint/internal/models/redis"
	"socketPaint/internal/services"
	"socketPaint/internal/validators"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const maxSocketMessageSize = 4 << 20 // thumbnails are inline data URLs

// SocketPaintHandler is the room session coordinator: it owns the session
// registry, dispatches inbound events, relays strokes inside a room, drives
// persistence through the paint service and pushes the room list to every
// connection. Each connection's events are handled in read order by its own
// reader goroutine; different connections interleave freely, including
// across persistence calls.
type SocketPaintHandler struct {
	ctx          context.Context
	upgrader     websocket.Upgrader
	hub          *models.PaintHub
	redis        *redis.Client
	paintService *services.PaintService
	instanceId   string

	settleDelay      time.Duration
	roomListInterval time.Duration
}

func NewSocketPaintHandler(redis *redis.Client, ctx context.Context, paintService *services.PaintService, cfg *configs.Config) *SocketPaintHandler {
	sph := &SocketPaintHandler{
		ctx:          ctx,
		hub:          models.NewPaintHub(),
		redis:        redis,
		paintService: paintService,
		instanceId:   uuid.NewString(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		settleDelay:      cfg.Viper.GetDuration("paint.settle_delay"),
		roomListInterval: cfg.Viper.GetDuration("paint.room_list_interval"),
	}
	go sph.handleRedisMessages()
	go sph.runRoomListTicker()
	return sph
}

func (sph *SocketPaintHandler) HandleSocketPaintRoute(ctx *gin.Context) {
	ws, err := sph.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := &models.SocketClient{
		Conn:      ws,
		SessionId: uuid.NewString(),
	}
	sph.hub.Register(client)
	log.Info().Str("session", client.SessionId).Msg("client connected")

	// A fresh connection lands on the room list page, so push it the
	// current list right away.
	sph.sendRoomList(client)

	sph.handleIncomingEvents(client)

	sph.handleDisconnect(client)
}

func (sph *SocketPaintHandler) handleIncomingEvents(client *models.SocketClient) {
	client.Conn.SetReadLimit(maxSocketMessageSize)
	for {
		var event models.PaintSocketEvent
		if err := client.Conn.ReadJSON(&event); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug().Err(err).Str("session", client.SessionId).Msg("socket read failed")
			}
			return
		}

		switch event.Event {
		case enums.SOCKET_EVENT_JOIN_ROOM:
			sph.handleJoinRoom(client, event.Payload)
		case enums.SOCKET_EVENT_DRAW:
			sph.handleDraw(client, event.Payload)
		case enums.SOCKET_EVENT_CLEAR_CANVAS:
			sph.handleClearCanvas(client)
		case enums.SOCKET_EVENT_UPDATE_THUMBNAIL:
			sph.handleUpdateThumbnail(client, event.Payload)
		case enums.SOCKET_EVENT_LEAVE_ROOM:
			sph.handleLeaveRoom(client)
		default:
			log.Warn().Str("event", event.Event).Str("session", client.SessionId).Msg("unknown socket event")
		}
	}
}

// handleJoinRoom resolves the room (creating it on first join), moves the
// session into its group and replays the full history to the joiner only.
// A blank name is rejected before any store call: the client never gets a
// load_history and stays where it is.
func (sph *SocketPaintHandler) handleJoinRoom(client *models.SocketClient, payload json.RawMessage) {
	var roomName string
	if err := json.Unmarshal(payload, &roomName); err != nil {
		log.Warn().Err(err).Str("session", client.SessionId).Msg("join_room: bad payload")
		return
	}
	if errors := validators.ValidateRoomName(roomName); len(errors) > 0 {
		log.Warn().Errs("errors", errors).Str("session", client.SessionId).Msg("join_room: rejected")
		return
	}

	room, created, err := sph.paintService.ResolveRoom(roomName)
	if err != nil {
		log.Error().Err(err).Str("room", roomName).Str("op", "join_room").Msg("store failure")
		return
	}

	// The session enters the broadcast group before the history snapshot is
	// taken. A stroke persisted while the load is in flight then reaches
	// the joiner through the relay; the worst case is a duplicate delivery,
	// never a lost stroke.
	sph.hub.JoinGroup(client, models.RoomRef{ID: room.ID, Name: room.Name})

	history, err := sph.paintService.LoadHistory(room.ID)
	if err != nil {
		log.Error().Err(err).Str("room", room.Name).Str("op", "join_room").Msg("store failure")
		return
	}

	records := make([]models.StrokePayload, 0, len(history))
	for _, stroke := range history {
		records = append(records, stroke.ToStrokePayload())
	}
	event, err := models.NewPaintSocketEvent(enums.SOCKET_EVENT_LOAD_HISTORY, records)
	if err != nil {
		log.Error().Err(err).Str("room", room.Name).Msg("load_history: marshal failed")
		return
	}
	if err := client.Send(event); err != nil {
		log.Debug().Err(err).Str("session", client.SessionId).Msg("load_history: send failed")
	}

	if created {
		sph.broadcastRoomList()
	}
}

// handleDraw relays the stroke to the rest of the room before persistence
// completes: the live path never waits on the store. A draw from a session
// with no current room is a benign ordering artifact and is dropped.
func (sph *SocketPaintHandler) handleDraw(client *models.SocketClient, payload json.RawMessage) {
	room := sph.hub.CurrentRoomOf(client)
	if room == nil {
		log.Debug().Err(errs.ErrNoActiveRoom).Str("session", client.SessionId).Msg("draw dropped")
		return
	}

	var stroke models.StrokePayload
	if err := json.Unmarshal(payload, &stroke); err != nil {
		log.Warn().Err(err).Str("room", room.Name).Msg("draw: bad payload")
		return
	}
	if errors := validators.ValidateStroke(&stroke); len(errors) > 0 {
		log.Warn().Errs("errors", errors).Str("room", room.Name).Msg("draw: rejected")
		return
	}

	event := models.PaintSocketEvent{Event: enums.SOCKET_EVENT_DRAW, Payload: payload}
	sph.broadcastToRoom(room.Name, event, client)
	sph.publishToRedis(room.Name, event)

	if err := sph.paintService.SaveStroke(room.ID, &stroke); err != nil {
		// Already relayed; durability loses to latency here.
		log.Error().Err(err).Str("room", room.Name).Str("op", "draw").Msg("store failure")
	}
}

// handleClearCanvas resets everyone's view first, then deletes the
// persisted history. A stroke whose insert races past the delete survives;
// that interleaving is accepted rather than masked with a transaction.
func (sph *SocketPaintHandler) handleClearCanvas(client *models.SocketClient) {
	room := sph.hub.CurrentRoomOf(client)
	if room == nil {
		log.Debug().Err(errs.ErrNoActiveRoom).Str("session", client.SessionId).Msg("clear_canvas dropped")
		return
	}

	event := models.PaintSocketEvent{Event: enums.SOCKET_EVENT_CLEAR_CANVAS}
	// The sender's view resets too, so no exclusion here.
	sph.broadcastToRoom(room.Name, event, nil)
	sph.publishToRedis(room.Name, event)

	if err := sph.paintService.ClearRoom(room.ID); err != nil {
		log.Error().Err(err).Str("room", room.Name).Str("op", "clear_canvas").Msg("store failure")
	}
}

func (sph *SocketPaintHandler) handleUpdateThumbnail(client *models.SocketClient, payload json.RawMessage) {
	room := sph.hub.CurrentRoomOf(client)
	if room == nil {
		log.Debug().Err(errs.ErrNoActiveRoom).Str("session", client.SessionId).Msg("update_thumbnail dropped")
		return
	}

	var thumbnail models.ThumbnailPayload
	if err := json.Unmarshal(payload, &thumbnail); err != nil {
		log.Warn().Err(err).Str("room", room.Name).Msg("update_thumbnail: bad payload")
		return
	}

	if err := sph.paintService.SaveThumbnail(*room, thumbnail.Thumbnail); err != nil {
		log.Error().Err(err).Str("room", room.Name).Str("op", "update_thumbnail").Msg("store failure")
		return
	}
	sph.broadcastRoomList()
}

func (sph *SocketPaintHandler) handleLeaveRoom(client *models.SocketClient) {
	room := sph.hub.CurrentRoomOf(client)
	if room == nil {
		return
	}
	sph.hub.LeaveGroup(client)
	sph.scheduleRoomListBroadcast()
}

// handleDisconnect is an implicit leave and must be safe for sessions that
// never joined a room.
func (sph *SocketPaintHandler) handleDisconnect(client *models.SocketClient) {
	sph.hub.Unregister(client)
	if err := client.Conn.Close(); err != nil {
		log.Debug().Err(err).Str("session", client.SessionId).Msg("close failed")
	}
	log.Info().Str("session", client.SessionId).Msg("client disconnected")
	sph.scheduleRoomListBroadcast()
}

// broadcastToRoom fans an event out to the room's members in join order.
// Delivery is fire and forget; send failures are left for the recipient's
// own read loop to clean up.
func (sph *SocketPaintHandler) broadcastToRoom(roomName string, event models.PaintSocketEvent, exclude *models.SocketClient) {
	for _, member := range sph.hub.ClientsInGroup(roomName) {
		if member == exclude {
			continue
		}
		if err := member.Send(event); err != nil {
			log.Debug().Err(err).Str("room", roomName).Str("session", member.SessionId).Msg("broadcast send failed")
		}
	}
}

// RoomSummaries builds the externally visible room list with live
// participant counts from the registry.
func (sph *SocketPaintHandler) RoomSummaries() ([]models.RoomSummary, error) {
	return sph.paintService.RoomSummaries(sph.hub.CountInGroup)
}

func (sph *SocketPaintHandler) roomListEvent() (models.PaintSocketEvent, error) {
	summaries, err := sph.RoomSummaries()
	if err != nil {
		return models.PaintSocketEvent{}, err
	}
	return models.NewPaintSocketEvent(enums.SOCKET_EVENT_UPDATE_ROOM_LIST, summaries)
}

func (sph *SocketPaintHandler) broadcastRoomList() {
	sph.broadcastRoomListLocal()
	// Other instances recompute with their own registries.
	sph.publishToRedis("", models.PaintSocketEvent{Event: enums.SOCKET_EVENT_UPDATE_ROOM_LIST})
}

func (sph *SocketPaintHandler) sendRoomList(client *models.SocketClient) {
	event, err := sph.roomListEvent()
	if err != nil {
		log.Error().Err(err).Str("op", "update_room_list").Msg("room list build failed")
		return
	}
	if err := client.Send(event); err != nil {
		log.Debug().Err(err).Str("session", client.SessionId).Msg("room list send failed")
	}
}

// scheduleRoomListBroadcast debounces list recomputation after a leave or
// disconnect so membership bookkeeping settles before counts are read. The
// callback re-reads the registry at fire time, so it stays correct when the
// membership it was scheduled for is already gone.
func (sph *SocketPaintHandler) scheduleRoomListBroadcast() {
	time.AfterFunc(sph.settleDelay, sph.broadcastRoomList)
}

// runRoomListTicker is the self-healing sweep against missed explicit
// broadcasts.
func (sph *SocketPaintHandler) runRoomListTicker() {
	ticker := time.NewTicker(sph.roomListInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			sph.broadcastRoomList()
		case <-sph.ctx.Done():
			return
		}
	}
}

func (sph *SocketPaintHandler) publishToRedis(roomName string, event models.PaintSocketEvent) {
	published := redisModels.RedisPublishedEvent{
		InstanceId: sph.instanceId,
		RoomName:   roomName,
		Event:      event.Event,
		Payload:    event.Payload,
	}
	data, err := json.Marshal(published)
	if err != nil {
		log.Error().Err(err).Str("event", event.Event).Msg("redis publish: marshal failed")
		return
	}
	if err := sph.redis.Publish(sph.ctx, redisModels.REDIS_CHANNEL_PAINT, data).Err(); err != nil {
		log.Debug().Err(err).Str("event", event.Event).Msg("redis publish failed")
	}
}

// handleRedisMessages applies events relayed by other instances to local
// room members. Losing redis only disables cross-instance relay; local
// clients keep working.
func (sph *SocketPaintHandler) handleRedisMessages() {
	pubsub := sph.redis.Subscribe(sph.ctx, redisModels.REDIS_CHANNEL_PAINT)
	if _, err := pubsub.Receive(sph.ctx); err != nil {
		log.Warn().Err(err).Msg("redis subscribe failed, cross-instance relay disabled")
		return
	}
	for msg := range pubsub.Channel() {
		var published redisModels.RedisPublishedEvent
		if err := json.Unmarshal([]byte(msg.Payload), &published); err != nil {
			log.Warn().Err(err).Msg("redis message unmarshal failed")
			continue
		}
		if published.InstanceId == sph.instanceId {
			continue
		}

		switch published.Event {
		case enums.SOCKET_EVENT_DRAW, enums.SOCKET_EVENT_CLEAR_CANVAS:
			event := models.PaintSocketEvent{Event: published.Event, Payload: published.Payload}
			sph.broadcastToRoom(published.RoomName, event, nil)
		case enums.SOCKET_EVENT_UPDATE_ROOM_LIST:
			sph.broadcastRoomListLocal()
		}
	}
}

// broadcastRoomListLocal recomputes and pushes the list to local clients
// without republishing, to avoid an echo loop between instances.
func (sph *SocketPaintHandler) broadcastRoomListLocal() {
	event, err := sph.roomListEvent()
	if err != nil {
		log.Error().Err(err).Str("op", "update_room_list").Msg("room list build failed")
		return
	}
	for _, client := range sph.hub.AllClients() {
		if err := client.Send(event); err != nil {
			log.Debug().Err(err).Str("session", client.SessionId).Msg("room list send failed")
		}
	}
}

// CloseAllClients tears down every live socket during server shutdown.
func (sph *SocketPaintHandler) CloseAllClients() {
	for _, client := range sph.hub.AllClients() {
		if err := client.Conn.Close(); err != nil {
			log.Debug().Err(err).Str("session", client.SessionId).Msg("close failed")
		}
		sph.hub.Unregister(client)
	}
}
