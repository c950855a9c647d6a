package http

import "jobboard/internal/domain"

// UserResponse is the wire shape of a user; the password never leaves the server.
type UserResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Company string `json:"company,omitempty"`
	Resume  string `json:"resume,omitempty"`
}

type JobResponse struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Location     string  `json:"location"`
	Salary       float64 `json:"salary"`
	EmployerID   int64   `json:"employer_id,omitempty"`
	EmployerName string  `json:"employer_name,omitempty"`
}

type ApplicationResponse struct {
	ID       int64  `json:"id"`
	JobID    int64  `json:"job_id"`
	SeekerID int64  `json:"seeker_id"`
	Status   string `json:"status"`
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Role:    string(user.Role),
		Company: user.Company,
		Resume:  user.Resume,
	}
}

func jobToResponse(job domain.Job) JobResponse {
	return JobResponse{
		ID:           job.ID,
		Title:        job.Title,
		Description:  job.Description,
		Location:     job.Location,
		Salary:       job.Salary,
		EmployerID:   job.EmployerID,
		EmployerName: job.EmployerName,
	}
}

func applicationToResponse(app domain.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:       app.ID,
		JobID:    app.JobID,
		SeekerID: app.SeekerID,
		Status:   app.Status,
	}
}
