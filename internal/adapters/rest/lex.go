package rest

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jch254/muzo-fulfillment-handler/internal/core/domain"
)

// HeaderUserID selects the stored session for a harness request.
const HeaderUserID = "X-User-Id"

// Fulfill handles POST /lex: one Lex event in, one Lex response out.
func (h *Handler) Fulfill(w http.ResponseWriter, r *http.Request) {
	if !isJSONContentType(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	// 1. Decode the Lex event
	var event domain.LexEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if event.CurrentIntent.Name == "" {
		writeError(w, http.StatusBadRequest, "currentIntent.name is required")
		return
	}

	// 2. Resolve the user and restore the session the host would carry
	userID := r.Header.Get(HeaderUserID)
	if userID == "" {
		userID = event.UserID
	}
	if userID == "" {
		userID = uuid.NewString()
	}
	event.UserID = userID

	if h.sessions != nil && len(event.SessionAttributes) == 0 {
		attrs, err := h.sessions.Load(r.Context(), userID)
		if err != nil {
			h.log.Error("loading session", zap.String("user_id", userID), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to load session")
			return
		}
		event.SessionAttributes = attrs
	}

	// 3. Run the turn
	resp, err := h.dispatcher.Dispatch(r.Context(), event)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownIntent) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	// 4. Persist the session for the next turn
	if h.sessions != nil {
		if err := h.sessions.Save(r.Context(), userID, resp.SessionAttributes); err != nil {
			h.log.Error("saving session", zap.String("user_id", userID), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to save session")
			return
		}
	}

	w.Header().Set(HeaderUserID, userID)
	writeJSON(w, http.StatusOK, resp)
}

func isJSONContentType(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}
