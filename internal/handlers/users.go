package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type changePasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required"`
}

// @Summary      Current account
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "message, user"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/users/me [get]
// @Security     BearerAuth
func (h *Handler) me(c *gin.Context) {
	user, ok := userFromContext(c)
	if !ok {
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "me_no_user_in_context", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Utilisateur authentifié",
		"user":    user,
	})
}

// @Summary      Log out
// @Description  Revokes the presented token. Repeating the call is a no-op.
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /users/logout [delete]
// @Security     BearerAuth
func (h *Handler) logout(c *gin.Context) {
	if err := h.services.Authorization.Logout(c.Request.Context(), bearerToken(c)); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "logout_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgLoggedOut})
}

// @Summary      Change password
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  changePasswordRequest  true  "New password"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /users/change-password [put]
// @Security     BearerAuth
func (h *Handler) changePassword(c *gin.Context) {
	var input changePasswordRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	user, ok := userFromContext(c)
	if !ok {
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "change_password_no_user_in_context", nil)
		return
	}

	if err := h.services.Authorization.ChangePassword(c.Request.Context(), user.Email, input.NewPassword); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "change_password_failed", err, "email", user.Email)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgPasswordChanged})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
