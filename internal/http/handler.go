package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"hackaton-backend/internal/domain"
	"hackaton-backend/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users         service.UserService
	projects      service.ProjectService
	tasks         service.TaskService
	events        service.EventService
	transactions  service.TransactionService
	contributions service.ContributionService
	jwtSecret     string
	tokenTTL      time.Duration
	logger        *logrus.Logger
}

func NewHandler(
	users service.UserService,
	projects service.ProjectService,
	tasks service.TaskService,
	events service.EventService,
	transactions service.TransactionService,
	contributions service.ContributionService,
	jwtSecret string,
	tokenTTL time.Duration,
	logger *logrus.Logger,
) *Handler {
	return &Handler{
		users:         users,
		projects:      projects,
		tasks:         tasks,
		events:        events,
		transactions:  transactions,
		contributions: contributions,
		jwtSecret:     jwtSecret,
		tokenTTL:      tokenTTL,
		logger:        logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())
	router.Use(h.requestLogger())

	api := router.Group("/api")
	{
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		auth := api.Group("/auth")
		{
			auth.POST("/register", h.register)
			auth.POST("/login", h.login)
		}

		authed := h.authRequired()
		admin := h.requireRole(domain.RoleAdmin)

		users := api.Group("/users")
		{
			users.GET("", authed, admin, h.listUsers)
			users.GET("/:id", authed, h.getUser)
			users.GET("/role/:role", authed, admin, h.listUsersByRole)
			users.PUT("/:id", authed, h.updateUser)
			users.DELETE("/:id", authed, admin, h.deleteUser)
		}

		projects := api.Group("/projects")
		{
			projects.POST("", authed, h.createProject)
			projects.GET("", h.listProjects)
			projects.GET("/:id", h.getProject)
			projects.GET("/user/:userId", authed, h.listProjectsByUser)
			projects.GET("/status/:status", h.listProjectsByStatus)
			projects.GET("/category/:category", h.listProjectsByCategory)
			projects.GET("/date-range", h.listProjectsByDateRange)
			projects.GET("/budget", h.listProjectsByBudget)
			projects.PUT("/:id", authed, h.updateProject)
			projects.DELETE("/:id", authed, admin, h.deleteProject)
			projects.POST("/:id/join", authed, h.joinProject)
			projects.POST("/:id/leave", authed, h.leaveProject)
			projects.GET("/:id/members", h.listProjectMembers)
		}

		tasks := api.Group("/tasks")
		{
			tasks.POST("", authed, h.createTask)
			tasks.GET("", h.listTasks)
			tasks.GET("/:id", h.getTask)
			tasks.GET("/user/:userId", authed, h.listTasksByUser)
			tasks.GET("/project/:projectId", h.listTasksByProject)
			tasks.GET("/status/:status", h.listTasksByStatus)
			tasks.GET("/priority/:priority", h.listTasksByPriority)
			tasks.GET("/overdue", h.listOverdueTasks)
			tasks.PUT("/:id", authed, h.updateTask)
			tasks.DELETE("/:id", authed, admin, h.deleteTask)
			tasks.POST("/:id/assign", authed, h.assignTask)
			tasks.POST("/:id/complete", authed, h.completeTask)
		}

		events := api.Group("/events")
		{
			events.POST("", authed, h.createEvent)
			events.GET("", h.listEvents)
			events.GET("/:id", h.getEvent)
			events.GET("/user/:userId", authed, h.listEventsByUser)
			events.GET("/status/:status", h.listEventsByStatus)
			events.GET("/category/:category", h.listEventsByCategory)
			events.GET("/date-range", h.listEventsByDateRange)
			events.GET("/upcoming", h.listUpcomingEvents)
			events.PUT("/:id", authed, h.updateEvent)
			events.DELETE("/:id", authed, admin, h.deleteEvent)
			events.POST("/:id/register", authed, h.registerForEvent)
			events.POST("/:id/unregister", authed, h.unregisterFromEvent)
			events.GET("/:id/attendees", h.listEventAttendees)
		}

		transactions := api.Group("/transactions")
		{
			transactions.POST("", authed, h.createTransaction)
			transactions.GET("", authed, admin, h.listTransactions)
			transactions.GET("/:id", authed, h.getTransaction)
			transactions.GET("/user/:userId", authed, h.listTransactionsByUser)
			transactions.GET("/type/:type", authed, admin, h.listTransactionsByType)
			transactions.GET("/status/:status", authed, admin, h.listTransactionsByStatus)
			transactions.GET("/date-range", authed, admin, h.listTransactionsByDateRange)
			transactions.GET("/amount", authed, admin, h.listTransactionsByAmount)
			transactions.PUT("/:id", authed, admin, h.updateTransaction)
			transactions.DELETE("/:id", authed, admin, h.deleteTransaction)
			transactions.POST("/:id/process", authed, admin, h.processTransaction)
			transactions.POST("/:id/cancel", authed, admin, h.cancelTransaction)
		}

		contributions := api.Group("/contributions")
		{
			contributions.POST("", authed, h.createContribution)
			contributions.GET("", authed, admin, h.listContributions)
			contributions.GET("/:id", authed, h.getContribution)
			contributions.GET("/user/:userId", authed, h.listContributionsByUser)
			contributions.GET("/type/:type", authed, admin, h.listContributionsByType)
			contributions.GET("/status/:status", authed, admin, h.listContributionsByStatus)
			contributions.GET("/date-range", authed, admin, h.listContributionsByDateRange)
			contributions.PUT("/:id", authed, h.updateContribution)
			contributions.DELETE("/:id", authed, admin, h.deleteContribution)
			contributions.POST("/:id/receipt", authed, h.attachContributionReceipt)
			contributions.GET("/:id/receipt", authed, h.getContributionReceiptLink)
		}
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func (h *Handler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set("requestID", requestID)
		start := time.Now()

		c.Next()

		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).String(),
		}).Info("request")
	}
}

// respondError translates the domain error taxonomy into HTTP statuses.
func (h *Handler) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case domain.IsNotFound(err):
		status = http.StatusNotFound
	case domain.IsConflict(err):
		status = http.StatusConflict
	case domain.IsValidation(err):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrStorageNotConfigured):
		status = http.StatusServiceUnavailable
	}
	if status == http.StatusInternalServerError {
		h.logger.WithError(err).Error("request failed")
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

func parseQueryID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Query(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// parseDateRange reads the startDate/endDate query parameters as RFC 3339
// timestamps. Both bounds are required.
func parseDateRange(c *gin.Context) (time.Time, time.Time, bool) {
	start, err := time.Parse(time.RFC3339, c.Query("startDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate"})
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse(time.RFC3339, c.Query("endDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endDate"})
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format(time.RFC3339)
	return &v
}
