package services

import (
	"testing"

	"github.com/ajshan23/alghazal-b-p/models"
	"github.com/stretchr/testify/assert"
)

func TestResolveProgressStatus(t *testing.T) {
	tests := []struct {
		name        string
		current     models.ProjectStatus
		progress    int
		wantStatus  models.ProjectStatus
		wantChanged bool
	}{
		{
			name:        "hundred percent forces work_completed",
			current:     models.StatusInProgress,
			progress:    100,
			wantStatus:  models.StatusWorkCompleted,
			wantChanged: true,
		},
		{
			name:        "hundred percent forces work_completed even from team_assigned",
			current:     models.StatusTeamAssigned,
			progress:    100,
			wantStatus:  models.StatusWorkCompleted,
			wantChanged: true,
		},
		{
			name:        "hundred percent is idempotent at work_completed",
			current:     models.StatusWorkCompleted,
			progress:    100,
			wantStatus:  models.StatusWorkCompleted,
			wantChanged: false,
		},
		{
			name:        "team_assigned advances to work_started on zero progress",
			current:     models.StatusTeamAssigned,
			progress:    0,
			wantStatus:  models.StatusWorkStarted,
			wantChanged: true,
		},
		{
			name:        "team_assigned advances to work_started on partial progress",
			current:     models.StatusTeamAssigned,
			progress:    10,
			wantStatus:  models.StatusWorkStarted,
			wantChanged: true,
		},
		{
			name:        "work_started stays put at zero progress",
			current:     models.StatusWorkStarted,
			progress:    0,
			wantStatus:  models.StatusWorkStarted,
			wantChanged: false,
		},
		{
			name:        "work_started advances to in_progress on positive progress",
			current:     models.StatusWorkStarted,
			progress:    1,
			wantStatus:  models.StatusInProgress,
			wantChanged: true,
		},
		{
			name:        "in_progress stays put below hundred",
			current:     models.StatusInProgress,
			progress:    99,
			wantStatus:  models.StatusInProgress,
			wantChanged: false,
		},
		{
			name:        "statuses outside the working phase are untouched",
			current:     models.StatusDraft,
			progress:    50,
			wantStatus:  models.StatusDraft,
			wantChanged: false,
		},
		{
			name:        "on_hold is untouched by partial progress",
			current:     models.StatusOnHold,
			progress:    40,
			wantStatus:  models.StatusOnHold,
			wantChanged: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := resolveProgressStatus(tt.current, tt.progress)
			assert.Equal(t, tt.wantStatus, got)
			assert.Equal(t, tt.wantChanged, changed)
		})
	}
}
