package reminder

import (
	"fmt"
	"strconv"
	"time"

	vo "github.com/reminderly/reminderly/internal/domain/reminder/valueobjects"
	"github.com/reminderly/reminderly/internal/shared/biztime"
)

// ReasonClaimExpired is recorded on a pending entry whose run never finalized it.
const ReasonClaimExpired = "claim expired before the dispatch was finalized"

// AttemptedRecipient is one address a dispatch tried to reach.
type AttemptedRecipient struct {
	Email     string           `json:"email"`
	Name      string           `json:"name"`
	Role      vo.RecipientRole `json:"role"`
	Success   bool             `json:"success"`
	MessageID string           `json:"message_id,omitempty"`
	Error     string           `json:"error,omitempty"`
}

// DispatchLog records one dispatch attempt for a (reminder, interval) pair.
// Scheduled attempts start as a pending claim and are finalized exactly once.
type DispatchLog struct {
	id           uint
	reminderID   uint
	daysBefore   int
	manual       bool
	status       vo.DispatchStatus
	recipients   []AttemptedRecipient
	messageID    string
	errorDetails string
	attemptedAt  time.Time
	createdAt    time.Time
}

// NewDispatchClaim opens a pending log entry for a send that is about to happen.
func NewDispatchClaim(reminderID uint, daysBefore int, manual bool, attemptedAt time.Time) (*DispatchLog, error) {
	if reminderID == 0 {
		return nil, fmt.Errorf("reminder ID is required")
	}
	return &DispatchLog{
		reminderID:  reminderID,
		daysBefore:  daysBefore,
		manual:      manual,
		status:      vo.DispatchStatusPending,
		attemptedAt: attemptedAt,
		createdAt:   biztime.NowUTC(),
	}, nil
}

// NewFailedDispatch records an attempt that failed before any send (e.g. no recipients).
func NewFailedDispatch(reminderID uint, daysBefore int, manual bool, details string, attemptedAt time.Time) (*DispatchLog, error) {
	l, err := NewDispatchClaim(reminderID, daysBefore, manual, attemptedAt)
	if err != nil {
		return nil, err
	}
	l.status = vo.DispatchStatusFailed
	l.errorDetails = details
	return l, nil
}

func ReconstructDispatchLog(
	id uint,
	reminderID uint,
	daysBefore int,
	manual bool,
	status vo.DispatchStatus,
	recipients []AttemptedRecipient,
	messageID string,
	errorDetails string,
	attemptedAt, createdAt time.Time,
) (*DispatchLog, error) {
	if id == 0 {
		return nil, fmt.Errorf("dispatch log ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid dispatch status")
	}
	return &DispatchLog{
		id:           id,
		reminderID:   reminderID,
		daysBefore:   daysBefore,
		manual:       manual,
		status:       status,
		recipients:   recipients,
		messageID:    messageID,
		errorDetails: errorDetails,
		attemptedAt:  attemptedAt,
		createdAt:    createdAt,
	}, nil
}

func (l *DispatchLog) ID() uint {
	return l.id
}

func (l *DispatchLog) ReminderID() uint {
	return l.reminderID
}

func (l *DispatchLog) DaysBefore() int {
	return l.daysBefore
}

func (l *DispatchLog) IsManual() bool {
	return l.manual
}

func (l *DispatchLog) Status() vo.DispatchStatus {
	return l.status
}

func (l *DispatchLog) Recipients() []AttemptedRecipient {
	out := make([]AttemptedRecipient, len(l.recipients))
	copy(out, l.recipients)
	return out
}

// MessageID is the provider id of the first successful management send.
func (l *DispatchLog) MessageID() string {
	return l.messageID
}

func (l *DispatchLog) ErrorDetails() string {
	return l.errorDetails
}

func (l *DispatchLog) AttemptedAt() time.Time {
	return l.attemptedAt
}

func (l *DispatchLog) CreatedAt() time.Time {
	return l.createdAt
}

func (l *DispatchLog) SetID(id uint) error {
	if l.id != 0 {
		return fmt.Errorf("dispatch log ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("dispatch log ID cannot be zero")
	}
	l.id = id
	return nil
}

// ClaimKey identifies the idempotence slot this entry holds. Only scheduled
// entries that are pending or sent hold one; failed and manual entries return "".
func (l *DispatchLog) ClaimKey() string {
	if l.manual || l.status == vo.DispatchStatusFailed {
		return ""
	}
	return ClaimKeyFor(l.reminderID, l.daysBefore)
}

// ClaimKeyFor formats the idempotence key of a (reminder, interval) pair.
func ClaimKeyFor(reminderID uint, daysBefore int) string {
	return strconv.FormatUint(uint64(reminderID), 10) + ":" + strconv.Itoa(daysBefore)
}

// MarkSent finalizes a pending entry as delivered.
func (l *DispatchLog) MarkSent(recipients []AttemptedRecipient, messageID string) error {
	if l.status.IsTerminal() {
		return fmt.Errorf("dispatch log already finalized as %s", l.status)
	}
	l.status = vo.DispatchStatusSent
	l.recipients = recipients
	l.messageID = messageID
	return nil
}

// MarkFailed finalizes a pending entry as failed, releasing its claim.
func (l *DispatchLog) MarkFailed(recipients []AttemptedRecipient, details string) error {
	if l.status.IsTerminal() {
		return fmt.Errorf("dispatch log already finalized as %s", l.status)
	}
	l.status = vo.DispatchStatusFailed
	l.recipients = recipients
	l.errorDetails = details
	return nil
}
