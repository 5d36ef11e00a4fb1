package handlers

import (
	"errors"
	"net/http"

	"socialapi/dto"
	"socialapi/monitoring"
	"socialapi/services"
)

// MessageHandler handles message-related endpoints
type MessageHandler struct {
	Messages *services.MessageService
}

// NewMessageHandler initializes a new MessageHandler
func NewMessageHandler(messages *services.MessageService) *MessageHandler {
	return &MessageHandler{Messages: messages}
}

// CreateMessage posts a message: 200 with the stored message, 400 when the
// text or author is rejected.
func (h *MessageHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var body dto.MessageDTO
	if err := decodeJSON(r, &body); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		monitoring.MessagePostFailure.WithLabelValues("invalid json").Inc()
		return
	}

	message, err := h.Messages.Submit(r.Context(), body.Model())
	switch {
	case errors.Is(err, services.ErrRejected):
		w.WriteHeader(http.StatusBadRequest)
		monitoring.MessagePostFailure.WithLabelValues("rejected").Inc()
	case err != nil:
		writeStoreError(w, r, err)
		monitoring.MessagePostFailure.WithLabelValues("store error").Inc()
	default:
		writeJSON(w, http.StatusOK, dto.FromMessage(message))
		monitoring.MessagesPosted.Inc()
	}
}

// GetMessages lists every message.
func (h *MessageHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Messages.GetAll(r.Context())
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.FromMessages(messages))
}

// GetMessage answers 200 with the message, or 200 with an empty body when
// there is none.
func (h *MessageHandler) GetMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "messageId")
	if !ok {
		http.Error(w, "Invalid message ID", http.StatusBadRequest)
		return
	}

	message, err := h.Messages.GetByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	if message == nil {
		w.WriteHeader(http.StatusOK)
		return
	}
	writeJSON(w, http.StatusOK, dto.FromMessage(*message))
}

// DeleteMessage answers 200 with 1 when a message was removed and 200 with
// an empty body otherwise.
func (h *MessageHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "messageId")
	if !ok {
		http.Error(w, "Invalid message ID", http.StatusBadRequest)
		return
	}

	rows, err := h.Messages.DeleteByID(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	if rows > 0 {
		monitoring.MessagesDeleted.Inc()
	}
	writeRows(w, rows)
}

// UpdateMessage replaces a message's text: 200 with 1, or 400 when the text
// is invalid or the message does not exist.
func (h *MessageHandler) UpdateMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "messageId")
	if !ok {
		http.Error(w, "Invalid message ID", http.StatusBadRequest)
		return
	}

	var body dto.UpdateMessageDTO
	if err := decodeJSON(r, &body); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	rows, err := h.Messages.UpdateText(r.Context(), id, body.MessageText)
	switch {
	case errors.Is(err, services.ErrRejected):
		w.WriteHeader(http.StatusBadRequest)
	case err != nil:
		writeStoreError(w, r, err)
	default:
		monitoring.MessagesUpdated.Inc()
		writeRows(w, rows)
	}
}

// MessagesPerAccount lists the messages posted by one account.
func (h *MessageHandler) MessagesPerAccount(w http.ResponseWriter, r *http.Request) {
	accountID, ok := pathID(r, "accountId")
	if !ok {
		http.Error(w, "Invalid account ID", http.StatusBadRequest)
		return
	}

	messages, err := h.Messages.ListByAccount(r.Context(), accountID)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.FromMessages(messages))
}
