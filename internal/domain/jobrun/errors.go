package jobrun

import "errors"

var (
	ErrJobRunNotFound = errors.New("job run not found")
	// ErrJobAlreadyRunning means another run of the same job type holds the run slot.
	ErrJobAlreadyRunning = errors.New("job is already running")
)
