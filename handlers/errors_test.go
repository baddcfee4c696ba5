package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rei-da-quadra-api/services"

	"github.com/gin-gonic/gin"
)

func TestRespondServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		err    error
		status int
	}{
		{services.ErrEventNotFound, http.StatusNotFound},
		{services.ErrMatchNotFound, http.StatusNotFound},
		{services.ErrPlayerNotFound, http.StatusNotFound},
		{services.ErrInvalidMatchState, http.StatusConflict},
		{services.ErrTeamsAlreadyAllocated, http.StatusConflict},
		{services.ErrEnrollmentExists, http.StatusConflict},
		{services.ErrInsufficientPlayers, http.StatusUnprocessableEntity},
		{services.ErrTeamInactive, http.StatusUnprocessableEntity},
		{services.ErrPlayerNotInMatch, http.StatusUnprocessableEntity},
		{services.ErrNoCountersToRemove, http.StatusUnprocessableEntity},
		{services.ErrWaitingTeamNotConfigured, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.err.Error(), func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondServiceError(c, tc.err)

			if w.Code != tc.status {
				t.Errorf("expected status %d for %q, got %d", tc.status, tc.err, w.Code)
			}
			if !strings.Contains(w.Body.String(), "error") {
				t.Errorf("response should carry an error field, got %s", w.Body.String())
			}
		})
	}
}
