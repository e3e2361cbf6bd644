package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"police-bot-backend/internal/features/interaction/models"
	"police-bot-backend/internal/features/interaction/service"
)

// Discord присылает небольшие payload, все что больше считаем мусором
const maxBodySize = 1 << 20

type InteractionHandler struct {
	dispatcher *service.Dispatcher
}

func NewInteractionHandler(dispatcher *service.Dispatcher) *InteractionHandler {
	return &InteractionHandler{
		dispatcher: dispatcher,
	}
}

// RegisterRoutes вешает обработчик на все методы: метод разбирает диспетчер
func (h *InteractionHandler) RegisterRoutes(router gin.IRoutes, path string) {
	router.Any(path, h.HandleInteraction)
}

// @Summary Discord interaction webhook
// @Description Receives Discord interactions: PING handshakes and slash commands. Domain errors are returned as 200 with a text reply.
// @Tags interactions
// @Accept json
// @Produce json
// @Param interaction body models.Interaction true "Discord interaction payload"
// @Success 200 {object} models.InteractionResponse "Interaction response"
// @Failure 400 {object} models.ErrorResponse "Invalid JSON or unknown interaction type"
// @Failure 405 {object} models.ErrorResponse "Method not allowed"
// @Router /interactions [post]
func (h *InteractionHandler) HandleInteraction(c *gin.Context) {
	var body []byte
	if c.Request.Body != nil {
		var err error
		body, err = io.ReadAll(io.LimitReader(c.Request.Body, maxBodySize))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid JSON"})
			return
		}
	}

	resp := h.dispatcher.Handle(c.Request.Context(), c.Request.Method, body)

	for k, v := range resp.Headers {
		c.Header(k, v)
	}
	c.Status(resp.Status)
	if len(resp.Body) > 0 {
		_, _ = c.Writer.Write(resp.Body)
	}
}
