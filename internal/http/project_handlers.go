package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"hackaton-backend/internal/domain"
	"hackaton-backend/internal/service"
)

type ProjectResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	StartDate   string          `json:"startDate"`
	EndDate     *string         `json:"endDate,omitempty"`
	Status      string          `json:"status"`
	Budget      decimal.Decimal `json:"budget"`
	UserID      int64           `json:"userId"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
}

func projectToResponse(p domain.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		StartDate:   formatTime(p.StartDate),
		EndDate:     formatTimePtr(p.EndDate),
		Status:      string(p.Status),
		Budget:      p.Budget,
		UserID:      p.UserID,
		CreatedAt:   formatTime(p.CreatedAt),
		UpdatedAt:   formatTime(p.UpdatedAt),
	}
}

func projectsToResponse(projects []domain.Project) []ProjectResponse {
	resp := make([]ProjectResponse, len(projects))
	for i := range projects {
		resp[i] = projectToResponse(projects[i])
	}
	return resp
}

type MemberResponse struct {
	UserID   int64  `json:"userId"`
	JoinedAt string `json:"joinedAt"`
}

type createProjectRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	StartDate   time.Time       `json:"startDate" binding:"required"`
	EndDate     *time.Time      `json:"endDate"`
	Status      string          `json:"status"`
	Budget      decimal.Decimal `json:"budget"`
	UserID      int64           `json:"userId" binding:"required"`
}

type updateProjectRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	StartDate   *time.Time       `json:"startDate"`
	EndDate     *time.Time       `json:"endDate"`
	Status      *string          `json:"status"`
	Budget      *decimal.Decimal `json:"budget"`
}

func (h *Handler) createProject(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projects.Create(c.Request.Context(), service.ProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      domain.ProjectStatus(req.Status),
		Budget:      req.Budget,
		UserID:      req.UserID,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, projectToResponse(*project))
}

func (h *Handler) listProjects(c *gin.Context) {
	projects, err := h.projects.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projectsToResponse(projects))
}

func (h *Handler) getProject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	project, err := h.projects.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projectToResponse(*project))
}

func (h *Handler) listProjectsByUser(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}
	projects, err := h.projects.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projectsToResponse(projects))
}

func (h *Handler) listProjectsByStatus(c *gin.Context) {
	projects, err := h.projects.ListByStatus(c.Request.Context(), domain.ProjectStatus(c.Param("status")))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projectsToResponse(projects))
}

func (h *Handler) listProjectsByCategory(c *gin.Context) {
	projects, err := h.projects.ListByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projectsToResponse(projects))
}

func (h *Handler) listProjectsByDateRange(c *gin.Context) {
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}
	projects, err := h.projects.ListByStartDateRange(c.Request.Context(), start, end)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projectsToResponse(projects))
}

func (h *Handler) listProjectsByBudget(c *gin.Context) {
	min, err := decimal.NewFromString(c.Query("min"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min"})
		return
	}
	projects, err := h.projects.ListByBudgetGreaterThan(c.Request.Context(), min)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projectsToResponse(projects))
}

func (h *Handler) updateProject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := service.ProjectUpdate{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      req.Budget,
	}
	if req.Status != nil {
		status := domain.ProjectStatus(*req.Status)
		patch.Status = &status
	}

	project, err := h.projects.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projectToResponse(*project))
}

func (h *Handler) deleteProject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.projects.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) joinProject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID, ok := parseQueryID(c, "userId")
	if !ok {
		return
	}
	if err := h.projects.Join(c.Request.Context(), id, userID); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"joined": userID})
}

func (h *Handler) leaveProject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID, ok := parseQueryID(c, "userId")
	if !ok {
		return
	}
	if err := h.projects.Leave(c.Request.Context(), id, userID); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"left": userID})
}

func (h *Handler) listProjectMembers(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	members, err := h.projects.Members(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]MemberResponse, len(members))
	for i := range members {
		resp[i] = MemberResponse{
			UserID:   members[i].UserID,
			JoinedAt: formatTime(members[i].JoinedAt),
		}
	}
	c.JSON(http.StatusOK, resp)
}
