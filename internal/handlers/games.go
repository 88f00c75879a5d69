package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"gamestore/internal/models"
	"gamestore/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgFreeGameMissing     = "Le jeu gratuit n'existe pas"
	msgFreeGameUpdated     = "Le jeu gratuit a été modifié"
	msgOfficialGameMissing = "Le jeu payant n'existe pas"
	msgOfficialGameUpdated = "Le jeu payant a été modifié"
	msgGameDeleted         = "Le jeu a été supprimé"

	errInvalidGameID = "invalid game id"
)

// Request DTO shared by create and update of free games.
type freeGameRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	ImageURL    string `json:"urlimage" binding:"required"`
}

// Paid games additionally carry a price. A zero price is still a paid
// catalog entry, so the field is a pointer to distinguish absent from 0.
type officialGameRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	ImageURL    string   `json:"urlimage" binding:"required"`
	Price       *float64 `json:"price" binding:"required"`
}

// parseIDParam reads the :id path segment; writes a 400 and returns false
// when it is not a number.
func (h *Handler) parseIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidGameID})
		return 0, false
	}
	return id, true
}

// --- free games ---

// @Summary      Create free game
// @Tags         free-games
// @Accept       json
// @Produce      json
// @Param        body  body  freeGameRequest  true  "Game"
// @Success      200  {object}  models.FreeGame
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/free-games/ [post]
// @Security     BearerAuth
func (h *Handler) createFreeGame(c *gin.Context) {
	var input freeGameRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	created, err := h.services.FreeGames.Create(c.Request.Context(), models.FreeGame{
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	})
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "free_game_create_failed", err, "name", input.Name)
		return
	}
	c.JSON(http.StatusOK, created)
}

// @Summary      List free games
// @Tags         free-games
// @Produce      json
// @Success      200  {array}  models.FreeGame
// @Failure      500  {object}  map[string]string
// @Router       /api/free-games/ [get]
func (h *Handler) listFreeGames(c *gin.Context) {
	games, err := h.services.FreeGames.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "free_game_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, games)
}

// @Summary      Get free game by name
// @Tags         free-games
// @Produce      json
// @Param        name  path  string  true  "Game name"
// @Success      200  {object}  models.FreeGame
// @Failure      400  {object}  map[string]string
// @Router       /api/free-games/{name} [get]
func (h *Handler) getFreeGame(c *gin.Context) {
	game, err := h.services.FreeGames.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"message": msgFreeGameMissing})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "free_game_get_failed", err, "name", c.Param("name"))
		return
	}
	c.JSON(http.StatusOK, game)
}

// @Summary      Update free game
// @Description  Full field replacement of the row with the given id.
// @Tags         free-games
// @Accept       json
// @Produce      json
// @Param        id    path  int              true  "Game id"
// @Param        body  body  freeGameRequest  true  "Game"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/free-games/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateFreeGame(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}
	var input freeGameRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	err := h.services.FreeGames.Update(c.Request.Context(), id, models.FreeGame{
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"message": msgFreeGameMissing})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "free_game_update_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgFreeGameUpdated})
}

// @Summary      Delete free games by name
// @Description  Removes every row with that name. Zero matches still returns 200.
// @Tags         free-games
// @Produce      json
// @Param        name  path  string  true  "Game name"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/free-games/{name} [delete]
// @Security     BearerAuth
func (h *Handler) deleteFreeGame(c *gin.Context) {
	if _, err := h.services.FreeGames.DeleteByName(c.Request.Context(), c.Param("name")); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "free_game_delete_failed", err, "name", c.Param("name"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgGameDeleted})
}

// --- official (paid) games ---

// @Summary      Create official game
// @Tags         official-games
// @Accept       json
// @Produce      json
// @Param        body  body  officialGameRequest  true  "Game"
// @Success      200  {object}  models.OfficialGame
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/official-games/ [post]
// @Security     BearerAuth
func (h *Handler) createOfficialGame(c *gin.Context) {
	var input officialGameRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	created, err := h.services.OfficialGames.Create(c.Request.Context(), models.OfficialGame{
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Price:       *input.Price,
	})
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "official_game_create_failed", err, "name", input.Name)
		return
	}
	c.JSON(http.StatusOK, created)
}

// @Summary      List official games
// @Tags         official-games
// @Produce      json
// @Success      200  {array}  models.OfficialGame
// @Failure      500  {object}  map[string]string
// @Router       /api/official-games/ [get]
func (h *Handler) listOfficialGames(c *gin.Context) {
	games, err := h.services.OfficialGames.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "official_game_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, games)
}

// @Summary      Get official game by name
// @Tags         official-games
// @Produce      json
// @Param        name  path  string  true  "Game name"
// @Success      200  {object}  models.OfficialGame
// @Failure      400  {object}  map[string]string
// @Router       /api/official-games/{name} [get]
func (h *Handler) getOfficialGame(c *gin.Context) {
	game, err := h.services.OfficialGames.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"message": msgOfficialGameMissing})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "official_game_get_failed", err, "name", c.Param("name"))
		return
	}
	c.JSON(http.StatusOK, game)
}

// @Summary      Update official game
// @Tags         official-games
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "Game id"
// @Param        body  body  officialGameRequest  true  "Game"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/official-games/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateOfficialGame(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}
	var input officialGameRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	err := h.services.OfficialGames.Update(c.Request.Context(), id, models.OfficialGame{
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Price:       *input.Price,
	})
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"message": msgOfficialGameMissing})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "official_game_update_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgOfficialGameUpdated})
}

// @Summary      Delete official games by name
// @Tags         official-games
// @Produce      json
// @Param        name  path  string  true  "Game name"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/official-games/{name} [delete]
// @Security     BearerAuth
func (h *Handler) deleteOfficialGame(c *gin.Context) {
	if _, err := h.services.OfficialGames.DeleteByName(c.Request.Context(), c.Param("name")); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, "official_game_delete_failed", err, "name", c.Param("name"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgGameDeleted})
}
