package valueobjects

// DispatchStatus is the outcome recorded on a dispatch log entry.
type DispatchStatus string

const (
	// DispatchStatusPending marks a claimed (reminder, interval) slot whose send is in flight.
	DispatchStatusPending DispatchStatus = "pending"
	DispatchStatusSent    DispatchStatus = "sent"
	DispatchStatusFailed  DispatchStatus = "failed"
)

var validDispatchStatuses = map[DispatchStatus]bool{
	DispatchStatusPending: true,
	DispatchStatusSent:    true,
	DispatchStatusFailed:  true,
}

func (s DispatchStatus) String() string {
	return string(s)
}

func (s DispatchStatus) IsValid() bool {
	return validDispatchStatuses[s]
}

func (s DispatchStatus) IsTerminal() bool {
	return s == DispatchStatusSent || s == DispatchStatusFailed
}
