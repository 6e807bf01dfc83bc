package services

import (
	"testing"
	"time"

	"election-monitor-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryAuditLogsFilters(t *testing.T) {
	fx := setupTestDB(t)

	require.NoError(t, AppendAudit(fx.Admin, models.AuditDashboardAccessed, "first"))
	require.NoError(t, AppendAudit(fx.Police, models.AuditDashboardAccessed, "second"))
	require.NoError(t, AppendAudit(fx.Admin, models.AuditUserLogin, "third"))

	all, err := QueryAuditLogs(AuditFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Newest first.
	assert.Equal(t, "third", all[0].Details)
	assert.Equal(t, "first", all[2].Details)

	byActor, err := QueryAuditLogs(AuditFilter{ActorID: fx.Police.UserID})
	require.NoError(t, err)
	require.Len(t, byActor, 1)
	assert.Equal(t, "second", byActor[0].Details)

	byAction, err := QueryAuditLogs(AuditFilter{Action: models.AuditUserLogin})
	require.NoError(t, err)
	require.Len(t, byAction, 1)
	assert.Equal(t, fx.Admin.UserID, byAction[0].ActorID)

	limited, err := QueryAuditLogs(AuditFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestQueryAuditLogsDateRange(t *testing.T) {
	fx := setupTestDB(t)

	require.NoError(t, AppendAudit(fx.Admin, models.AuditDashboardAccessed, "old"))
	cutoff := time.Now()
	require.NoError(t, configDB(t).Model(&models.AuditLog{}).
		Where("details = ?", "old").
		Update("created_at", cutoff.Add(-48*time.Hour)).Error)
	require.NoError(t, AppendAudit(fx.Admin, models.AuditDashboardAccessed, "recent"))

	from := cutoff.Add(-time.Hour)
	recent, err := QueryAuditLogs(AuditFilter{From: &from})
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "recent", recent[0].Details)

	to := cutoff.Add(-time.Hour)
	old, err := QueryAuditLogs(AuditFilter{To: &to})
	require.NoError(t, err)
	require.Len(t, old, 1)
	assert.Equal(t, "old", old[0].Details)
}

func TestQueryAuditLogsLimitClamp(t *testing.T) {
	fx := setupTestDB(t)

	require.NoError(t, AppendAudit(fx.Admin, models.AuditDashboardAccessed, "entry"))

	// Oversized limits are clamped rather than rejected.
	entries, err := QueryAuditLogs(AuditFilter{Limit: 1_000_000})
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
