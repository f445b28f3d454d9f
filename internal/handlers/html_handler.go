package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HtmlHandler struct{}

func NewHtmlHandler() *HtmlHandler {
	return &HtmlHandler{}
}

func (hh *HtmlHandler) Index(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "index.html", nil)
}
