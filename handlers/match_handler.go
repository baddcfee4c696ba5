package handlers

import (
	"net/http"
	"strconv"

	"rei-da-quadra-api/models"
	"rei-da-quadra-api/services"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchService *services.MatchService
}

func NewMatchHandler(matchService *services.MatchService) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
	}
}

// GetMatch retrieves a single match
// @Summary Get a match by ID
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} models.Match
// @Failure 404 {object} map[string]string
// @Router /matches/{id} [get]
func (h *MatchHandler) GetMatch(c *gin.Context) {
	matchID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	match, err := h.matchService.GetMatchByID(matchID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, match)
}

// GetEventMatches lists the matches of an event
// @Summary List matches of an event
// @Tags matches
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {array} models.Match
// @Failure 400 {object} map[string]string
// @Router /events/{id}/matches [get]
func (h *MatchHandler) GetEventMatches(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	matches, err := h.matchService.ListEventMatches(eventID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, matches)
}

// CreateMatch creates a match between two teams
// @Summary Create a match
// @Description Create a match in awaiting_start between two non-inactive teams of an event
// @Tags matches
// @Accept json
// @Produce json
// @Param request body models.CreateMatchRequest true "Match data"
// @Success 201 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /matches [post]
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req models.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	match, err := h.matchService.CreateMatch(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, match)
}

// StartMatch moves a match to in_progress
// @Summary Start a match
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} models.Match
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /matches/{id}/start [patch]
func (h *MatchHandler) StartMatch(c *gin.Context) {
	matchID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	match, err := h.matchService.StartMatch(matchID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, match)
}

// RecordAction records an in-game action for a player
// @Summary Record an in-game action
// @Description Record a goal, assist, save, foul or offside: updates the player's participation counters, the score for goals, and the player's rating
// @Tags matches
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param request body models.MatchActionRequest true "Action data"
// @Success 200 {object} models.PerformanceParticipation
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /matches/{id}/actions [post]
func (h *MatchHandler) RecordAction(c *gin.Context) {
	matchID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.MatchActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	participation, err := h.matchService.RecordAction(matchID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, participation)
}

// RemoveAction undoes a recorded action counter
// @Summary Remove an in-game action
// @Description Decrement a recorded counter (and the score for goals). The rating ledger is intentionally left untouched
// @Tags matches
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param request body models.MatchActionRequest true "Action data"
// @Success 200 {object} models.PerformanceParticipation
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /matches/{id}/actions [delete]
func (h *MatchHandler) RemoveAction(c *gin.Context) {
	matchID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.MatchActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	participation, err := h.matchService.RemoveAction(matchID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, participation)
}

// FinalizeMatch settles a match and chains the next one
// @Summary Finalize a match
// @Description Close an in-progress match, settle ratings, run the rotation and start the next match between the winner and the chosen challenger
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} models.FinalizedMatchResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /matches/{id}/finalize [patch]
func (h *MatchHandler) FinalizeMatch(c *gin.Context) {
	matchID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.matchService.FinalizeMatch(matchID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// parseIDParam reads a positive integer path parameter, answering 400 itself
// when the value is unusable.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " parameter"})
		return 0, false
	}
	return uint(id), true
}
