package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lokaclean/backoffice/internal/middleware"
	"github.com/lokaclean/backoffice/internal/response"
	"github.com/lokaclean/backoffice/internal/session"
	"github.com/lokaclean/backoffice/internal/theme"
)

// RecordUsage notes "the app was opened around now" (gateway locale) on the
// session and answers with the current recommendation.
func (h *Handlers) RecordUsage(c *gin.Context) {
	s, ok := h.loadSession(c)
	if !ok {
		return
	}

	s.RecordUsage(time.Now().In(h.loc).Hour())
	if err := s.Save(c.Request.Context()); err != nil {
		h.logger.Warn("usage sample not saved", zap.Error(err))
	}

	h.respondTheme(c, s)
}

// ThemeSuggestion answers the current recommendation without recording.
func (h *Handlers) ThemeSuggestion(c *gin.Context) {
	s, ok := h.loadSession(c)
	if !ok {
		return
	}
	h.respondTheme(c, s)
}

func (h *Handlers) respondTheme(c *gin.Context, s *session.Session) {
	suggestion, ok := theme.Recommend(s.UsageSamples)
	body := gin.H{"samples": len(s.UsageSamples)}
	if ok {
		body["suggestion"] = suggestion
	}
	response.Success(c, http.StatusOK, "", body)
}

func (h *Handlers) loadSession(c *gin.Context) (*session.Session, bool) {
	sid := c.GetString(middleware.CtxSessionID)
	s, err := h.sessions.Load(c.Request.Context(), sid)
	if err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			h.logger.Error("session load failed", zap.Error(err))
		}
		response.Error(c, http.StatusUnauthorized, "session expired")
		return nil, false
	}
	return s, true
}
