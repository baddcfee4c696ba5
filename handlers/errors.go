package handlers

import (
	"errors"
	"net/http"

	"rei-da-quadra-api/services"

	"github.com/gin-gonic/gin"
)

// respondServiceError translates core sentinel errors to HTTP statuses. Every
// failure is a rejected operation with a specific reason, never a generic 500
// unless the error really is unexpected.
func respondServiceError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, services.ErrEventNotFound),
		errors.Is(err, services.ErrMatchNotFound),
		errors.Is(err, services.ErrTeamNotFound),
		errors.Is(err, services.ErrPlayerNotFound),
		errors.Is(err, services.ErrEnrollmentNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrInvalidMatchState),
		errors.Is(err, services.ErrTeamsAlreadyAllocated),
		errors.Is(err, services.ErrEnrollmentExists):
		status = http.StatusConflict
	case errors.Is(err, services.ErrInsufficientPlayers),
		errors.Is(err, services.ErrTeamInactive),
		errors.Is(err, services.ErrPlayerNotInMatch),
		errors.Is(err, services.ErrNoCountersToRemove):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrWaitingTeamNotConfigured):
		// Data-integrity gap, not a client mistake.
		status = http.StatusInternalServerError
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
