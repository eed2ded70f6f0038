package http

import (
	"net/http"

	"github.com/abcall/user-management-gateway/internal/utils"
)

// liveness answers the constant identity payload used by the blue/green
// deployment checks.
func (h *Handler) liveness(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"message": "User Management Blue Green"}, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"status": "OK"}, http.StatusOK)
}
