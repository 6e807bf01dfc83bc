package services

import (
	"testing"

	"election-monitor-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingForRoleProjection(t *testing.T) {
	fx := setupTestDB(t)
	openGlobalWindow(t, fx.Admin)

	incident := reportTestIncident(t, fx.Officer, "medium")
	_, err := SubmitVote(fx.Officer, "PC-001", map[string]int{"PA": 10, "PB": 5}, 15)
	require.NoError(t, err)
	_, err = RequestCorrection(fx.Officer, "PC-001")
	require.NoError(t, err)

	// Police see the un-acknowledged incident.
	policeItems, err := PendingForRole(models.RolePolice)
	require.NoError(t, err)
	require.Len(t, policeItems, 1)
	assert.Equal(t, "incident", policeItems[0].Kind)
	assert.Equal(t, incident.IncidentID, policeItems[0].Incident.IncidentID)

	// Admins see the pending correction request.
	adminItems, err := PendingForRole(models.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, adminItems, 1)
	assert.Equal(t, "correction_request", adminItems[0].Kind)
	assert.Equal(t, "PC-001", adminItems[0].Correction.CenterID)

	// Officers have no pending queue.
	officerItems, err := PendingForRole(models.RoleOfficer)
	require.NoError(t, err)
	assert.Empty(t, officerItems)
}

func TestPendingForRoleReflectsCommittedState(t *testing.T) {
	fx := setupTestDB(t)
	openGlobalWindow(t, fx.Admin)

	incident := reportTestIncident(t, fx.Officer, "high")
	_, err := SubmitVote(fx.Officer, "PC-001", map[string]int{"PA": 10, "PB": 5}, 15)
	require.NoError(t, err)
	_, err = RequestCorrection(fx.Officer, "PC-001")
	require.NoError(t, err)

	_, err = AcknowledgeIncident(fx.Police, incident.IncidentID, "On it")
	require.NoError(t, err)
	require.NoError(t, ApproveCorrection(fx.Admin, "PC-001"))

	// Both queues drain as soon as the transitions commit; the projection
	// holds no state of its own.
	policeItems, err := PendingForRole(models.RolePolice)
	require.NoError(t, err)
	assert.Empty(t, policeItems)

	adminItems, err := PendingForRole(models.RoleAdmin)
	require.NoError(t, err)
	assert.Empty(t, adminItems)
}
