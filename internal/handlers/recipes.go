package handlers

import (
	"net/http"

	"github.com/lifeofnimah/host-with-nimah/internal/recipe"
)

// ListRecipes serves the curated signature recipes.
func (h *Handler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	h.JSON(w, http.StatusOK, map[string]interface{}{
		"recipes": recipe.Signature(),
	})
}
