package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	apperrors "modelarena/internal/errors"
	"modelarena/internal/interfaces"
	"modelarena/internal/model"
)

// ChatHandler handles the chat-completion proxy endpoints.
type ChatHandler struct {
	chat    interfaces.ChatService
	compare interfaces.CompareService
}

func NewChatHandler(chatSvc interfaces.ChatService, compareSvc interfaces.CompareService) *ChatHandler {
	return &ChatHandler{chat: chatSvc, compare: compareSvc}
}

// HandleChat godoc
// @Summary      Create a chat completion
// @Description  Forwards a conversation to a single upstream model and returns its normalized reply.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        chatRequest  body  model.ChatRequest  true  "Conversation and optional generation parameters"
// @Success      200  {object}  model.ChatResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /chat [post]
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: malformed JSON body", apperrors.ErrInvalidRequest))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	resp, err := h.chat.CreateCompletion(r.Context(), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// HandleCompare godoc
// @Summary      Compare multiple models
// @Description  Sends the same conversation to up to 5 models concurrently. Each result reports success or failure independently; one failing model never fails the batch.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        compareRequest  body  model.CompareRequest  true  "Conversation and 1-5 model identifiers"
// @Success      200  {object}  model.CompareResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /compare [post]
func (h *ChatHandler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	var req model.CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: malformed JSON body", apperrors.ErrInvalidRequest))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	resp, err := h.compare.Compare(r.Context(), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}
