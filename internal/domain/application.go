package domain

// Known application statuses. The store treats status as free-form short
// text, so values outside this set are persisted verbatim.
const (
	StatusApplied  = "APPLIED"
	StatusAccepted = "ACCEPTED"
	StatusRejected = "REJECTED"
)

// Application is a seeker's expressed interest in a job. The same seeker
// may apply to the same job more than once; each application is its own row.
type Application struct {
	ID       int64
	JobID    int64
	SeekerID int64
	Status   string
}
