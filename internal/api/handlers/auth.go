package handlers

import (
	"net/http"

	"github.com/Chimelu/hafak-surgicals-backend/internal/api/middleware"
	appErrors "github.com/Chimelu/hafak-surgicals-backend/internal/errors"
	"github.com/Chimelu/hafak-surgicals-backend/internal/models"
	service "github.com/Chimelu/hafak-surgicals-backend/internal/services"
	"github.com/Chimelu/hafak-surgicals-backend/internal/utils/response"
	"github.com/Chimelu/hafak-surgicals-backend/internal/validation"
)

type AuthHandler struct {
	authService service.AuthService
	validator   *validation.Validator
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService, validator: validation.New()}
}

func (h *AuthHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.LoginRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		if err := validate(r.Context(), h.validator, &req, false); err != nil {
			writeError(w, r, err)
			return
		}

		resp, err := h.authService.Login(r.Context(), &req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		response.Success(w, http.StatusOK, resp)
	}
}

func (h *AuthHandler) Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			writeError(w, r, appErrors.UnauthorizedError("Authentication required"))
			return
		}

		user, err := h.authService.Me(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		response.Success(w, http.StatusOK, user)
	}
}
