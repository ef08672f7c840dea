package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/chat"
	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/metrics"
)

func sendChatMessageHandler(ctrl *chat.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		userID, _ := GetUserID(r.Context())
		userMsg, replyMsg, err := ctrl.Submit(r.Context(), userID.String(), req.Message)
		if err != nil {
			handleChatError(w, err)
			return
		}

		metrics.RecordChatTurn()
		writeJSON(w, http.StatusCreated, ChatTurnResponse{
			UserMessage:      userMsg,
			AssistantMessage: replyMsg,
		})
	}
}

func chatHistoryHandler(ctrl *chat.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := GetUserID(r.Context())
		msgs, err := ctrl.History(r.Context(), userID.String())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}
		writeJSON(w, http.StatusOK, msgs)
	}
}

func clearChatHandler(ctrl *chat.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := GetUserID(r.Context())
		if err := ctrl.Clear(r.Context(), userID.String()); err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleChatError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		writeError(w, http.StatusBadRequest, "empty_message", err.Error())
	case errors.Is(err, chat.ErrReplyPending):
		writeError(w, http.StatusConflict, "reply_pending", "wait for the current reply before sending another message")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusRequestTimeout, "request_cancelled", "request was cancelled before the reply was ready")
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}
