package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/obazhan/sportclub/internal/domain"
	"github.com/obazhan/sportclub/internal/service"
)

// MessageHandler handles chat-related HTTP requests. All routes sit behind
// RequireAuth.
type MessageHandler struct {
	messages *service.MessageService
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(messages *service.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

// HandleContacts lists every user except the caller for the chat sidebar.
// GET /api/messages/users
func (h *MessageHandler) HandleContacts(w http.ResponseWriter, r *http.Request) {
	identity := UserFromContext(r.Context())
	if identity == nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized - No Token Provided")
		return
	}

	users, err := h.messages.Contacts(r.Context(), identity.ID)
	if err != nil {
		slog.Error("list contacts", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, toUserDTOs(users))
}

// HandleGetMessages returns the conversation with the user in the path.
// GET /api/messages/{id}
func (h *MessageHandler) HandleGetMessages(w http.ResponseWriter, r *http.Request) {
	identity := UserFromContext(r.Context())
	if identity == nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized - No Token Provided")
		return
	}

	otherID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	messages, err := h.messages.History(r.Context(), identity.ID, otherID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		slog.Error("get messages", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, toMessageDTOs(messages))
}

// HandleSendMessage stores a message for the user in the path.
// POST /api/messages/send/{id}
// Request: {"text":"...","image":"data:image/png;base64,..."} (either optional)
func (h *MessageHandler) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	identity := UserFromContext(r.Context())
	if identity == nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized - No Token Provided")
		return
	}

	receiverID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req struct {
		Text  string `json:"text"`
		Image string `json:"image"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	message, err := h.messages.Send(r.Context(), identity.ID, receiverID, req.Text, req.Image)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "Message text or image is required")
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "User not found")
		default:
			slog.Error("send message", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, toMessageDTO(*message))
}
