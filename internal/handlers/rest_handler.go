package handlers

import (
	"net/http"

	"socketPaint/internal/models"
	"socketPaint/internal/msgs"
	"socketPaint/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type RestHandler struct {
	paintService       *services.PaintService
	socketPaintHandler *SocketPaintHandler
}

func NewRestHandler(paintService *services.PaintService, socketPaintHandler *SocketPaintHandler) *RestHandler {
	return &RestHandler{
		paintService:       paintService,
		socketPaintHandler: socketPaintHandler,
	}
}

// Rooms returns the same summary view the socket pushes, for clients that
// want a snapshot without holding a connection.
func (rh *RestHandler) Rooms(ctx *gin.Context) {
	summaries, err := rh.socketPaintHandler.RoomSummaries()
	if err != nil {
		log.Error().Err(err).Str("op", "list_rooms").Msg("store failure")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
		})
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    summaries,
	})
}

func (rh *RestHandler) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
