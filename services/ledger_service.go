package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"election-monitor-api/config"
	"election-monitor-api/models"

	"gorm.io/gorm"
)

// SubmissionView is the read shape returned to callers: the active tally
// version plus how many versions the center has recorded.
type SubmissionView struct {
	Submission     *models.VoteSubmission    `json:"submission"`
	PartyVotes     map[string]int            `json:"party_votes"`
	HistoryLength  int                       `json:"history_length"`
	PendingRequest *models.CorrectionRequest `json:"pending_request,omitempty"`
}

// SubmitVote records a polling center's tally. At most one active
// submission may exist per center; after a correction approval exactly one
// replacement version is accepted. The precondition check and the write
// happen under the center's lock inside one transaction, together with the
// audit entry.
func SubmitVote(actor Actor, centerID string, counts map[string]int, totalVotes int) (*models.VoteSubmission, error) {
	if len(counts) == 0 {
		return nil, validationErr("party vote counts are required")
	}
	sum := 0
	for partyID, votes := range counts {
		if strings.TrimSpace(partyID) == "" {
			return nil, validationErr("party id must not be empty")
		}
		if votes < 0 {
			return nil, validationErr(fmt.Sprintf("votes for party %s must not be negative", partyID))
		}
		sum += votes
	}
	if sum != totalVotes {
		return nil, validationErr(fmt.Sprintf("total_votes %d does not match the sum of party counts %d", totalVotes, sum))
	}

	unlock := centerLocks.Lock(centerID)
	defer unlock()

	var created *models.VoteSubmission
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var center models.PollingCenter
		if err := tx.First(&center, "center_id = ?", centerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundErr("polling center not found")
			}
			return storageErr(err)
		}

		officer, err := requireAssignedOfficer(tx, actor, centerID)
		if err != nil {
			return err
		}

		open, err := windowOpenForCenter(tx, &center)
		if err != nil {
			return err
		}
		if !open {
			return conflictErr("submission window is closed for this center")
		}

		if totalVotes > center.RegisteredVoters {
			return validationErr(fmt.Sprintf("total_votes %d exceeds %d registered voters", totalVotes, center.RegisteredVoters))
		}

		if err := validatePartyIDs(tx, counts); err != nil {
			return err
		}

		active, err := activeSubmission(tx, centerID)
		if err != nil {
			return err
		}

		version := 1
		resubmission := false
		if active != nil {
			if active.Status != models.SubmissionStatusCorrectionApproved {
				return conflictErr("a tally has already been submitted for this center")
			}
			resubmission = true
			version = active.Version + 1
		}

		now := time.Now()
		submission := models.VoteSubmission{
			CenterID:      centerID,
			Version:       version,
			SubmittedBy:   actor.UserID,
			SubmitterName: officer.DisplayName(),
			TotalVotes:    totalVotes,
			Status:        models.SubmissionStatusSubmitted,
			SubmittedAt:   now,
		}
		if err := tx.Create(&submission).Error; err != nil {
			return storageErr(err)
		}

		for _, partyID := range sortedPartyIDs(counts) {
			count := models.VoteCount{
				SubmissionID: submission.SubmissionID,
				PartyID:      partyID,
				Votes:        counts[partyID],
			}
			if err := tx.Create(&count).Error; err != nil {
				return storageErr(err)
			}
			submission.Counts = append(submission.Counts, count)
		}

		if resubmission {
			// The prior version stays in the table as history.
			if err := tx.Model(&models.VoteSubmission{}).
				Where("submission_id = ?", active.SubmissionID).
				Update("status", models.SubmissionStatusCorrected).Error; err != nil {
				return storageErr(err)
			}
			// The one-shot window opened by the approval closes again.
			if center.WindowOpen {
				if err := tx.Model(&models.PollingCenter{}).
					Where("center_id = ?", centerID).
					Update("window_open", false).Error; err != nil {
					return storageErr(err)
				}
			}
		}

		details := fmt.Sprintf("center %s: %d total votes across %d parties (version %d)",
			centerID, totalVotes, len(counts), version)
		if err := AppendAuditTx(tx, actor, models.AuditVoteSubmitted, details); err != nil {
			return err
		}

		created = &submission
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// RequestCorrection opens the admin-gated correction cycle for a center.
func RequestCorrection(actor Actor, centerID string) (*models.CorrectionRequest, error) {
	unlock := centerLocks.Lock(centerID)
	defer unlock()

	var created *models.CorrectionRequest
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := ensureCenterExists(tx, centerID); err != nil {
			return err
		}
		if _, err := requireAssignedOfficer(tx, actor, centerID); err != nil {
			return err
		}

		active, err := activeSubmission(tx, centerID)
		if err != nil {
			return err
		}
		if active == nil {
			return conflictErr("no submission exists for this center to correct")
		}
		if active.Status == models.SubmissionStatusCorrectionApproved {
			return conflictErr("a correction has already been approved for this center; submit the corrected tally")
		}

		var pending int64
		if err := tx.Model(&models.CorrectionRequest{}).
			Where("center_id = ? AND state = ?", centerID, models.CorrectionStatePending).
			Count(&pending).Error; err != nil {
			return storageErr(err)
		}
		if pending > 0 {
			return conflictErr("a correction request is already pending for this center")
		}

		request := models.CorrectionRequest{
			CenterID:     centerID,
			SubmissionID: active.SubmissionID,
			RequestedBy:  actor.UserID,
			RequestedAt:  time.Now(),
			State:        models.CorrectionStatePending,
		}
		if err := tx.Create(&request).Error; err != nil {
			return storageErr(err)
		}

		if err := tx.Model(&models.VoteSubmission{}).
			Where("submission_id = ?", active.SubmissionID).
			Update("status", models.SubmissionStatusCorrectionRequested).Error; err != nil {
			return storageErr(err)
		}

		details := fmt.Sprintf("center %s: correction requested for submission version %d", centerID, active.Version)
		if err := AppendAuditTx(tx, actor, models.AuditCorrectionRequested, details); err != nil {
			return err
		}

		created = &request
		return nil
	})
	if err != nil {
		return nil, err
	}

	go notifyCorrectionRequested(centerID, actor.Name)
	return created, nil
}

// ApproveCorrection resolves the pending request and reopens the window
// for that center only, permitting exactly one replacement submission.
func ApproveCorrection(actor Actor, centerID string) error {
	return resolveCorrection(actor, centerID, true)
}

// RejectCorrection resolves the pending request leaving submission and
// window state untouched.
func RejectCorrection(actor Actor, centerID string) error {
	return resolveCorrection(actor, centerID, false)
}

func resolveCorrection(actor Actor, centerID string, approve bool) error {
	unlock := centerLocks.Lock(centerID)
	defer unlock()

	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := ensureCenterExists(tx, centerID); err != nil {
			return err
		}

		var request models.CorrectionRequest
		err := tx.Where("center_id = ? AND state = ?", centerID, models.CorrectionStatePending).
			First(&request).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return conflictErr("no pending correction request for this center")
			}
			return storageErr(err)
		}

		now := time.Now()
		state := models.CorrectionStateRejected
		submissionStatus := models.SubmissionStatusSubmitted
		action := models.AuditCorrectionRejected
		if approve {
			state = models.CorrectionStateApproved
			submissionStatus = models.SubmissionStatusCorrectionApproved
			action = models.AuditCorrectionApproved
		}

		updates := map[string]any{
			"state":       state,
			"resolved_by": actor.UserID,
			"resolved_at": now,
		}
		if err := tx.Model(&models.CorrectionRequest{}).
			Where("request_id = ?", request.RequestID).
			Updates(updates).Error; err != nil {
			return storageErr(err)
		}

		if err := tx.Model(&models.VoteSubmission{}).
			Where("submission_id = ?", request.SubmissionID).
			Update("status", submissionStatus).Error; err != nil {
			return storageErr(err)
		}

		if approve {
			if err := tx.Model(&models.PollingCenter{}).
				Where("center_id = ?", centerID).
				Update("window_open", true).Error; err != nil {
				return storageErr(err)
			}
		}

		details := fmt.Sprintf("center %s: correction request #%d %s", centerID, request.RequestID, state)
		return AppendAuditTx(tx, actor, action, details)
	})
}

// SetSubmissionWindow toggles the election-wide gate, or a single
// center's override when centerID is non-empty.
func SetSubmissionWindow(actor Actor, centerID string, open bool) error {
	action := models.AuditWindowClosed
	if open {
		action = models.AuditWindowOpened
	}

	if centerID == "" {
		return config.DB.Transaction(func(tx *gorm.DB) error {
			setting, err := loadSettings(tx)
			if err != nil {
				return err
			}
			now := time.Now()
			updates := map[string]any{
				"submission_window": open,
				"updated_by":        actor.UserID,
				"update_at":         now,
			}
			if err := tx.Model(&models.SystemSetting{}).
				Where("setting_id = ?", setting.SettingID).
				Updates(updates).Error; err != nil {
				return storageErr(err)
			}
			return AppendAuditTx(tx, actor, action, "election-wide submission window")
		})
	}

	unlock := centerLocks.Lock(centerID)
	defer unlock()

	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := ensureCenterExists(tx, centerID); err != nil {
			return err
		}
		if err := tx.Model(&models.PollingCenter{}).
			Where("center_id = ?", centerID).
			Update("window_open", open).Error; err != nil {
			return storageErr(err)
		}
		return AppendAuditTx(tx, actor, action, fmt.Sprintf("submission window for center %s", centerID))
	})
}

// GetSubmission returns the active tally for a center, or a nil submission
// when none has been recorded yet.
func GetSubmission(centerID string) (*SubmissionView, error) {
	if err := ensureCenterExists(config.DB, centerID); err != nil {
		return nil, err
	}

	view := &SubmissionView{}

	var total int64
	if err := config.DB.Model(&models.VoteSubmission{}).
		Where("center_id = ?", centerID).
		Count(&total).Error; err != nil {
		return nil, storageErr(err)
	}
	view.HistoryLength = int(total)
	if total == 0 {
		return view, nil
	}

	var submission models.VoteSubmission
	if err := config.DB.Preload("Counts").
		Where("center_id = ?", centerID).
		Order("version DESC").
		First(&submission).Error; err != nil {
		return nil, storageErr(err)
	}
	view.Submission = &submission
	view.PartyVotes = submission.CountsByParty()

	var request models.CorrectionRequest
	err := config.DB.Where("center_id = ? AND state = ?", centerID, models.CorrectionStatePending).
		First(&request).Error
	if err == nil {
		view.PendingRequest = &request
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storageErr(err)
	}

	return view, nil
}

// SubmissionWindowOpen reports the effective gate for a center.
func SubmissionWindowOpen(centerID string) (bool, error) {
	var center models.PollingCenter
	if err := config.DB.First(&center, "center_id = ?", centerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, notFoundErr("polling center not found")
		}
		return false, storageErr(err)
	}
	return windowOpenForCenter(config.DB, &center)
}

func windowOpenForCenter(tx *gorm.DB, center *models.PollingCenter) (bool, error) {
	if center.WindowOpen {
		return true, nil
	}
	setting, err := loadSettings(tx)
	if err != nil {
		return false, err
	}
	return setting.SubmissionWindow, nil
}

func loadSettings(tx *gorm.DB) (*models.SystemSetting, error) {
	var setting models.SystemSetting
	err := tx.Order("setting_id").First(&setting).Error
	if err == nil {
		return &setting, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storageErr(err)
	}
	// First use: the row is created closed.
	setting = models.SystemSetting{SubmissionWindow: false}
	if err := tx.Create(&setting).Error; err != nil {
		return nil, storageErr(err)
	}
	return &setting, nil
}

func activeSubmission(tx *gorm.DB, centerID string) (*models.VoteSubmission, error) {
	var submission models.VoteSubmission
	err := tx.Where("center_id = ?", centerID).
		Order("version DESC").
		First(&submission).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageErr(err)
	}
	return &submission, nil
}

func ensureCenterExists(tx *gorm.DB, centerID string) error {
	var count int64
	if err := tx.Model(&models.PollingCenter{}).
		Where("center_id = ?", centerID).
		Count(&count).Error; err != nil {
		return storageErr(err)
	}
	if count == 0 {
		return notFoundErr("polling center not found")
	}
	return nil
}

func requireAssignedOfficer(tx *gorm.DB, actor Actor, centerID string) (*models.User, error) {
	var user models.User
	if err := tx.Where("user_id = ? AND delete_at IS NULL", actor.UserID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, authorizationErr("user not found")
		}
		return nil, storageErr(err)
	}
	if user.RoleID != models.RoleOfficer {
		return nil, authorizationErr("only polling officers may perform this action")
	}
	if user.AssignedCenterID == nil || *user.AssignedCenterID != centerID {
		return nil, authorizationErr("officer is not assigned to this polling center")
	}
	return &user, nil
}

func validatePartyIDs(tx *gorm.DB, counts map[string]int) error {
	ids := sortedPartyIDs(counts)

	var active []string
	if err := tx.Model(&models.Party{}).
		Where("party_id IN ? AND is_active = ?", ids, true).
		Pluck("party_id", &active).Error; err != nil {
		return storageErr(err)
	}

	known := make(map[string]bool, len(active))
	for _, id := range active {
		known[id] = true
	}
	for _, id := range ids {
		if !known[id] {
			return validationErr(fmt.Sprintf("unknown or inactive party: %s", id))
		}
	}
	return nil
}

func sortedPartyIDs(counts map[string]int) []string {
	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
