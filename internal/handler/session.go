package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rkashyapa/automanage-industrial-hub/internal/service"
)

type SessionHandler struct{ svc service.SessionService }

func NewSessionHandler(svc service.SessionService) *SessionHandler {
	return &SessionHandler{svc: svc}
}

// Open POST /v1/session
// Issues a fresh anonymous session. No credentials, no body.
func (h *SessionHandler) Open(c *gin.Context) {
	resp, err := h.svc.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
