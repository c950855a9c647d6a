package domain

// Role distinguishes the three kinds of accounts.
type Role string

const (
	RoleEmployer  Role = "EMPLOYER"
	RoleJobSeeker Role = "JOB_SEEKER"
	RoleAdmin     Role = "ADMIN"
)

// User represents an account of any role. Company is meaningful for
// employers and Resume for job seekers, but neither is tied to the role;
// both columns are nullable in the store.
type User struct {
	ID       int64
	Name     string
	Email    string
	Password string
	Role     Role
	Company  string
	Resume   string
}
