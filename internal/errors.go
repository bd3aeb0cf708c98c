package internal

import "errors"

var (
	// ErrNoTemplate indicates the campaign has no template configured.
	ErrNoTemplate = errors.New("campaign: no template configured")

	// ErrNoRoster indicates the campaign has no roster configured.
	ErrNoRoster = errors.New("campaign: no roster configured")

	// ErrNoSender indicates the campaign has no sender configured.
	ErrNoSender = errors.New("campaign: no sender configured")

	// ErrEmptyRoster indicates the roster holds no recipients.
	ErrEmptyRoster = errors.New("campaign: roster is empty")

	// ErrPreflightFailed indicates one or more preflight checks failed.
	ErrPreflightFailed = errors.New("campaign: preflight failed")

	// ErrRunAborted indicates a run stopped early because its context was
	// canceled. Recipients already processed keep their statuses.
	ErrRunAborted = errors.New("campaign: run aborted")

	// ErrInvalidSchedule indicates a cron expression could not be parsed.
	ErrInvalidSchedule = errors.New("campaign: invalid schedule")
)
