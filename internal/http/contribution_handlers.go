package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"hackaton-backend/internal/domain"
	"hackaton-backend/internal/service"
)

type ContributionResponse struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"userId"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	Status      string          `json:"status"`
	ReceiptURL  string          `json:"receiptUrl,omitempty"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
}

func contributionToResponse(c domain.Contribution) ContributionResponse {
	return ContributionResponse{
		ID:          c.ID,
		UserID:      c.UserID,
		Type:        c.Type,
		Amount:      c.Amount,
		Description: c.Description,
		Date:        formatTime(c.Date),
		Status:      string(c.Status),
		ReceiptURL:  c.ReceiptURL,
		CreatedAt:   formatTime(c.CreatedAt),
		UpdatedAt:   formatTime(c.UpdatedAt),
	}
}

func contributionsToResponse(contributions []domain.Contribution) []ContributionResponse {
	resp := make([]ContributionResponse, len(contributions))
	for i := range contributions {
		resp[i] = contributionToResponse(contributions[i])
	}
	return resp
}

type createContributionRequest struct {
	UserID      int64           `json:"userId" binding:"required"`
	Type        string          `json:"type" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        *time.Time      `json:"date"`
	Status      string          `json:"status"`
}

type updateContributionRequest struct {
	Type        *string          `json:"type"`
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description"`
	Date        *time.Time       `json:"date"`
	Status      *string          `json:"status"`
}

func (h *Handler) createContribution(c *gin.Context) {
	var req createContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := service.ContributionInput{
		UserID:      req.UserID,
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		Status:      domain.ContributionStatus(req.Status),
	}
	if req.Date != nil {
		in.Date = *req.Date
	}

	contribution, err := h.contributions.Create(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, contributionToResponse(*contribution))
}

func (h *Handler) listContributions(c *gin.Context) {
	contributions, err := h.contributions.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contributionsToResponse(contributions))
}

func (h *Handler) getContribution(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	contribution, err := h.contributions.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contributionToResponse(*contribution))
}

func (h *Handler) listContributionsByUser(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}
	status := c.Query("status")
	if status != "" {
		contributions, err := h.contributions.ListByUserAndStatus(c.Request.Context(), userID, domain.ContributionStatus(status))
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, contributionsToResponse(contributions))
		return
	}

	contributions, err := h.contributions.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contributionsToResponse(contributions))
}

func (h *Handler) listContributionsByType(c *gin.Context) {
	contributions, err := h.contributions.ListByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contributionsToResponse(contributions))
}

func (h *Handler) listContributionsByStatus(c *gin.Context) {
	contributions, err := h.contributions.ListByStatus(c.Request.Context(), domain.ContributionStatus(c.Param("status")))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contributionsToResponse(contributions))
}

func (h *Handler) listContributionsByDateRange(c *gin.Context) {
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}
	contributions, err := h.contributions.ListByDateRange(c.Request.Context(), start, end)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contributionsToResponse(contributions))
}

func (h *Handler) updateContribution(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req updateContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := service.ContributionUpdate{
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        req.Date,
	}
	if req.Status != nil {
		status := domain.ContributionStatus(*req.Status)
		patch.Status = &status
	}

	contribution, err := h.contributions.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contributionToResponse(*contribution))
}

func (h *Handler) deleteContribution(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.contributions.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// attachContributionReceipt accepts a multipart form with a "file" part and
// stores it as the contribution's receipt.
func (h *Handler) attachContributionReceipt(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file"})
		return
	}
	defer file.Close()

	contribution, err := h.contributions.AttachReceipt(
		c.Request.Context(),
		id,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contributionToResponse(*contribution))
}

func (h *Handler) getContributionReceiptLink(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	url, err := h.contributions.ReceiptLink(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
