package handlers

import (
	"net/http"

	"rei-da-quadra-api/models"
	"rei-da-quadra-api/services"

	"github.com/gin-gonic/gin"
)

type TeamHandler struct {
	teamService       *services.TeamService
	enrollmentService *services.EnrollmentService
}

func NewTeamHandler(teamService *services.TeamService, enrollmentService *services.EnrollmentService) *TeamHandler {
	return &TeamHandler{
		teamService:       teamService,
		enrollmentService: enrollmentService,
	}
}

// GetTeam retrieves a single team
// @Summary Get a team by ID
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} models.Team
// @Failure 404 {object} map[string]string
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	teamID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	team, err := h.teamService.GetTeamByID(teamID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// GetTeamRoster lists the players currently assigned to a team
// @Summary Get a team's current roster
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {array} models.Enrollment
// @Failure 404 {object} map[string]string
// @Router /teams/{id}/roster [get]
func (h *TeamHandler) GetTeamRoster(c *gin.Context) {
	teamID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.teamService.GetTeamByID(teamID); err != nil {
		respondServiceError(c, err)
		return
	}

	roster, err := h.enrollmentService.ListByTeam(teamID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, roster)
}

// GetEventTeams lists the teams of an event with their rosters
// @Summary List teams of an event
// @Tags teams
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {array} models.TeamWithRoster
// @Failure 404 {object} map[string]string
// @Router /events/{id}/teams [get]
func (h *TeamHandler) GetEventTeams(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	teams, err := h.teamService.ListEventTeams(eventID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// GetWaitingTeam fetches the waiting pool of an event
// @Summary Get the waiting pool of an event
// @Tags teams
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} models.Team
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /events/{id}/waiting-team [get]
func (h *TeamHandler) GetWaitingTeam(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	team, err := h.teamService.GetWaitingTeam(eventID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// UpdateTeam updates a team's name or color
// @Summary Update a team
// @Tags teams
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Param request body models.UpdateTeamRequest true "Fields to update"
// @Success 200 {object} models.Team
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /teams/{id} [patch]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	teamID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.UpdateTeam(teamID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}
