package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lokaclean/backoffice/internal/domain"
	"github.com/lokaclean/backoffice/internal/middleware"
	"github.com/lokaclean/backoffice/internal/phone"
	"github.com/lokaclean/backoffice/internal/response"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

type loginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type resetRequest struct {
	Phone string `json:"phone" binding:"required"`
}

// normalizePhone runs the shared normalization and translates a failure to
// the user-facing validation message.
func (h *Handlers) normalizePhone(c *gin.Context, raw string) (string, bool) {
	normalized, err := phone.Normalize(raw, h.countryCC)
	if err != nil {
		msg := "phone number is not valid"
		if errors.Is(err, phone.ErrEmpty) {
			msg = "phone number is required"
		}
		response.Error(c, http.StatusBadRequest, msg)
		return "", false
	}
	return normalized, true
}

// Register forwards a new customer to the core API after normalizing the
// phone number.
func (h *Handlers) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "name, phone and password (min 8 chars) are required")
		return
	}
	normalized, ok := h.normalizePhone(c, req.Phone)
	if !ok {
		return
	}

	user, err := h.up.Register(c.Request.Context(), req.Name, normalized, req.Password)
	if err != nil {
		h.upstreamError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "registered", gin.H{"user": user})
}

// Login authenticates upstream, opens a gateway session holding the core
// token, and answers with the gateway's own access token.
func (h *Handlers) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "phone and password are required")
		return
	}
	normalized, ok := h.normalizePhone(c, req.Phone)
	if !ok {
		return
	}

	res, err := h.up.Login(c.Request.Context(), normalized, req.Password)
	if err != nil {
		h.upstreamError(c, err)
		return
	}
	if res.User.Role != domain.ActorUser && res.User.Role != domain.ActorAdmin {
		h.logger.Error("upstream login returned unknown role", zap.String("role", string(res.User.Role)))
		response.Error(c, http.StatusBadGateway, "unexpected response from core service")
		return
	}

	s, err := h.sessions.Create(c.Request.Context(), res.Token, res.User.Role)
	if err != nil {
		h.logger.Error("session create failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "could not open session")
		return
	}

	access, expiresIn, err := h.jwt.Issue(s.ID, s.Actor)
	if err != nil {
		h.logger.Error("token issue failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "could not open session")
		return
	}

	response.Success(c, http.StatusOK, "", gin.H{
		"access_token": access,
		"expires_in":   expiresIn,
		"actor":        s.Actor,
		"user":         res.User,
	})
}

// ResetPassword normalizes the phone and forwards the reset request.
func (h *Handlers) ResetPassword(c *gin.Context) {
	var req resetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "phone is required")
		return
	}
	normalized, ok := h.normalizePhone(c, req.Phone)
	if !ok {
		return
	}

	if err := h.up.ResetPassword(c.Request.Context(), normalized); err != nil {
		h.upstreamError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "reset instructions sent", nil)
}

// Logout tears the gateway session down.
func (h *Handlers) Logout(c *gin.Context) {
	if sid := c.GetString(middleware.CtxSessionID); sid != "" {
		if err := h.sessions.Destroy(c.Request.Context(), sid); err != nil {
			h.logger.Warn("logout teardown failed", zap.Error(err))
		}
	}
	response.Success(c, http.StatusOK, "logged out", nil)
}
