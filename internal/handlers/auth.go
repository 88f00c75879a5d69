package handlers

import (
	"errors"
	"net/http"

	"gamestore/internal/service"

	"github.com/gin-gonic/gin"
)

// Client-facing messages. French strings are kept as the storefront ships
// a French UI; error keys in logs stay English.
const (
	msgUserCreated     = "L'utilisateur a été créé"
	msgDuplicateUser   = "Le couple email/mot de passe existe déjà"
	msgInvalidCreds    = "Le couple email/mot de passe est invalide"
	msgLoggedOut       = "Déconnexion réussie"
	msgPasswordChanged = "Le mot de passe a été modifié"

	errInternal = "internal error"
)

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// @Summary      Register account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  registerRequest  true  "Credentials"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /api/auth/local/register [post]
func (h *Handler) register(c *gin.Context) {
	var input registerRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	_, err := h.services.Authorization.Register(c.Request.Context(), input.Username, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateCredential) {
			c.JSON(http.StatusBadRequest, gin.H{"message": msgDuplicateUser})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "register_failed", err, "email", input.Email)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgUserCreated})
}

// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  loginRequest  true  "Credentials"
// @Success      200  {object}  map[string]string  "token"
// @Failure      400  {object}  map[string]string
// @Router       /api/auth/local/ [post]
func (h *Handler) login(c *gin.Context) {
	var input loginRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, err := h.services.Authorization.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// same message and status whichever field was wrong
			c.JSON(http.StatusBadRequest, gin.H{"message": msgInvalidCreds})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "login_failed", err, "email", input.Email)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
