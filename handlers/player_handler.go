package handlers

import (
	"net/http"
	"strconv"

	"rei-da-quadra-api/models"
	"rei-da-quadra-api/services"

	"github.com/gin-gonic/gin"
)

type PlayerHandler struct {
	playerService *services.PlayerService
	pointsService *services.PointsService
}

func NewPlayerHandler(playerService *services.PlayerService, pointsService *services.PointsService) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
		pointsService: pointsService,
	}
}

// GetPlayer retrieves a single player
// @Summary Get a player by ID
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} models.Player
// @Failure 404 {object} map[string]string
// @Router /players/{id} [get]
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	playerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	player, err := h.playerService.GetPlayerByID(playerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, player)
}

// CreatePlayer creates a player with the default rating
// @Summary Create a player
// @Tags players
// @Accept json
// @Produce json
// @Param request body models.CreatePlayerRequest true "Player data"
// @Success 201 {object} models.Player
// @Failure 400 {object} map[string]string
// @Router /players [post]
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	var req models.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := h.playerService.CreatePlayer(req.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, player)
}

// GetTopPlayers retrieves the highest rated players
// @Summary Get top players
// @Tags players
// @Produce json
// @Param limit query int false "Number of players to retrieve (default: 10, max: 100)"
// @Success 200 {array} models.Player
// @Failure 400 {object} map[string]string
// @Router /players/top [get]
func (h *PlayerHandler) GetTopPlayers(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "10")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
		return
	}

	// Cap the limit to prevent excessive queries
	if limit > 100 {
		limit = 100
	}

	players, err := h.playerService.GetTopPlayers(limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, players)
}

// GetPointsHistory returns a player's rating statement
// @Summary Get a player's points history
// @Description Append-only ledger of every rating change, newest first
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {array} models.PointsHistory
// @Failure 404 {object} map[string]string
// @Router /players/{id}/points-history [get]
func (h *PlayerHandler) GetPointsHistory(c *gin.Context) {
	playerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	history, err := h.pointsService.GetPlayerHistory(playerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

// ApplyAction applies a standalone rating adjustment
// @Summary Apply a rating action outside a match
// @Description Apply the fixed delta of an action directly to a player, with a ledger entry carrying no match reference
// @Tags players
// @Accept json
// @Produce json
// @Param id path int true "Player ID"
// @Param request body models.PlayerActionRequest true "Action data"
// @Success 200 {object} models.PointsHistory
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /players/{id}/actions [post]
func (h *PlayerHandler) ApplyAction(c *gin.Context) {
	playerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.PlayerActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.pointsService.ApplyAction(playerID, req.Action)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}
