package domain

// Job is a posting created by an employer. EmployerID is zero when the
// posting employer has been deleted; EmployerName is denormalized onto
// reads via a left join and is never written back.
type Job struct {
	ID           int64
	Title        string
	Description  string
	Location     string
	Salary       float64
	EmployerID   int64
	EmployerName string
}
