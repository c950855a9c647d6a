package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"jobboard/internal/domain"
	"jobboard/internal/repository"
	"jobboard/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	accounts     service.AccountService
	jobs         service.JobService
	applications service.ApplicationService
	tokens       tokenIssuer
	logger       *logrus.Logger
}

func NewHandler(accounts service.AccountService, jobs service.JobService, applications service.ApplicationService, jwtSecret string, tokenTTL time.Duration, logger *logrus.Logger) *Handler {
	return &Handler{
		accounts:     accounts,
		jobs:         jobs,
		applications: applications,
		tokens:       tokenIssuer{secret: []byte(jwtSecret), ttl: tokenTTL},
		logger:       logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware(), requestIDMiddleware(), requestLogger(h.logger))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": "ok"})
		})

		auth := api.Group("/auth")
		{
			auth.POST("/register/employer", h.registerEmployer)
			auth.POST("/register/seeker", h.registerSeeker)
			auth.POST("/login", h.login)
		}

		api.GET("/jobs", h.listJobs)
		api.GET("/jobs/:id", h.getJob)

		authed := api.Group("", h.authRequired())
		{
			authed.POST("/jobs", requireRole(domain.RoleEmployer), h.postJob)
			authed.DELETE("/jobs/:id", requireRole(domain.RoleAdmin), h.deleteJob)
			authed.POST("/jobs/:id/apply", requireRole(domain.RoleJobSeeker), h.applyToJob)

			authed.GET("/applications", h.listApplications)
			authed.PATCH("/applications/:id", h.updateApplicationStatus)

			authed.GET("/users", requireRole(domain.RoleAdmin), h.listUsers)
			authed.DELETE("/users/:id", requireRole(domain.RoleAdmin), h.deleteUser)

			authed.GET("/me", h.me)
			authed.PUT("/me", h.updateProfile)
		}
	}
}

type registerEmployerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Company  string `json:"company" binding:"required"`
}

type registerSeekerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Resume   string `json:"resume" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type postJobRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Location    string  `json:"location" binding:"required"`
	Salary      float64 `json:"salary"`
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type updateProfileRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Company  string `json:"company"`
	Resume   string `json:"resume"`
}

func (h *Handler) registerEmployer(c *gin.Context) {
	var req registerEmployerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.accounts.RegisterEmployer(c.Request.Context(), req.Name, req.Email, req.Password, req.Company)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, userToResponse(user))
}

func (h *Handler) registerSeeker(c *gin.Context) {
	var req registerSeekerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.accounts.RegisterJobSeeker(c.Request.Context(), req.Name, req.Email, req.Password, req.Resume)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, userToResponse(user))
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}

	token, err := h.tokens.issue(user)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  userToResponse(user),
	})
}

func (h *Handler) listJobs(c *gin.Context) {
	filter := service.JobFilter{
		Keyword:  c.Query("q"),
		Location: c.Query("location"),
	}
	if raw := c.Query("min_salary"); raw != "" {
		minSalary, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_salary"})
			return
		}
		filter.MinSalary = minSalary
	}

	jobs, err := h.jobs.Filter(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := make([]JobResponse, len(jobs))
	for i := range jobs {
		resp[i] = jobToResponse(jobs[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getJob(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	job, err := h.jobs.JobByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobToResponse(*job))
}

func (h *Handler) postJob(c *gin.Context) {
	var req postJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employer, err := h.accounts.UserByID(c.Request.Context(), callerID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	job, err := h.jobs.Post(c.Request.Context(), req.Title, req.Description, req.Location, req.Salary, employer)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, jobToResponse(*job))
}

func (h *Handler) deleteJob(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.jobs.DeleteJob(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) applyToJob(c *gin.Context) {
	jobID, ok := pathID(c)
	if !ok {
		return
	}

	seeker, err := h.accounts.UserByID(c.Request.Context(), callerID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	appID, err := h.applications.Apply(c.Request.Context(), jobID, seeker)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": appID, "status": domain.StatusApplied})
}

// listApplications returns the caller's view: an employer sees applications
// to their postings, a seeker sees their own applications.
func (h *Handler) listApplications(c *gin.Context) {
	var (
		apps []domain.Application
		err  error
	)
	switch callerRole(c) {
	case domain.RoleEmployer:
		apps, err = h.applications.ForEmployer(c.Request.Context(), callerID(c))
	case domain.RoleJobSeeker:
		apps, err = h.applications.ForSeeker(c.Request.Context(), callerID(c))
	default:
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := make([]ApplicationResponse, len(apps))
	for i := range apps {
		resp[i] = applicationToResponse(apps[i])
	}
	c.JSON(http.StatusOK, resp)
}

// updateApplicationStatus requires only a valid token; it does not verify
// that the caller owns the job behind the application.
func (h *Handler) updateApplicationStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.applications.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": req.Status})
}

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.accounts.Users(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := make([]UserResponse, len(users))
	for i := range users {
		resp[i] = userToResponse(&users[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) deleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.accounts.DeleteUser(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) me(c *gin.Context) {
	user, err := h.accounts.UserByID(c.Request.Context(), callerID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, userToResponse(user))
}

func (h *Handler) updateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.accounts.UserByID(c.Request.Context(), callerID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Password = req.Password
	user.Company = req.Company
	user.Resume = req.Resume

	if err := h.accounts.UpdateProfile(c.Request.Context(), user); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, userToResponse(user))
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrJobNotFound), errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.logger.WithError(err).WithField("request_id", c.GetString(headerRequestID)).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
