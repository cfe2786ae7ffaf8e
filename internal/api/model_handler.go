package api

import (
	"net/http"

	"modelarena/internal/interfaces"
)

// ModelHandler handles HTTP requests for the model catalog.
type ModelHandler struct {
	service interfaces.ModelService
}

func NewModelHandler(svc interfaces.ModelService) *ModelHandler {
	return &ModelHandler{service: svc}
}

// HandleListModels godoc
// @Summary      List models
// @Description  Returns the configured default model and all identifiers available for chat and comparison.
// @Tags         Models
// @Produce      json
// @Success      200  {object}  model.ModelsInfo
// @Router       /models [get]
func (h *ModelHandler) HandleListModels(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.service.List(r.Context()))
}
