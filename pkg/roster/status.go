package roster

// Status tracks a recipient through the campaign delivery lifecycle.
type Status string

const (
	StatusPending Status = "pending"
	StatusSending Status = "sending"
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
)

// Final reports whether the status is a terminal one.
func (s Status) Final() bool {
	return s == StatusSent || s == StatusFailed
}
