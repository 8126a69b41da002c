package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"hackaton-backend/internal/domain"
	"hackaton-backend/internal/service"
)

type TransactionResponse struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"userId"`
	Type      string          `json:"type"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	Date      string          `json:"date"`
	CreatedAt string          `json:"createdAt"`
	UpdatedAt string          `json:"updatedAt"`
}

func transactionToResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		Type:      string(t.Type),
		Category:  t.Category,
		Amount:    t.Amount,
		Status:    string(t.Status),
		Date:      formatTime(t.Date),
		CreatedAt: formatTime(t.CreatedAt),
		UpdatedAt: formatTime(t.UpdatedAt),
	}
}

func transactionsToResponse(txs []domain.Transaction) []TransactionResponse {
	resp := make([]TransactionResponse, len(txs))
	for i := range txs {
		resp[i] = transactionToResponse(txs[i])
	}
	return resp
}

type createTransactionRequest struct {
	UserID   int64           `json:"userId" binding:"required"`
	Type     string          `json:"type" binding:"required"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Status   string          `json:"status"`
	Date     *time.Time      `json:"date"`
}

type updateTransactionRequest struct {
	Type     *string          `json:"type"`
	Category *string          `json:"category"`
	Amount   *decimal.Decimal `json:"amount"`
	Date     *time.Time       `json:"date"`
}

func (h *Handler) createTransaction(c *gin.Context) {
	var req createTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := service.TransactionInput{
		UserID:   req.UserID,
		Type:     domain.TransactionType(req.Type),
		Category: req.Category,
		Amount:   req.Amount,
		Status:   domain.TransactionStatus(req.Status),
	}
	if req.Date != nil {
		in.Date = *req.Date
	}

	tx, err := h.transactions.Create(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, transactionToResponse(*tx))
}

func (h *Handler) listTransactions(c *gin.Context) {
	txs, err := h.transactions.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transactionsToResponse(txs))
}

func (h *Handler) getTransaction(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	tx, err := h.transactions.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transactionToResponse(*tx))
}

func (h *Handler) listTransactionsByUser(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	var (
		txs []domain.Transaction
		err error
	)
	switch {
	case c.Query("type") != "":
		txs, err = h.transactions.ListByUserAndType(c.Request.Context(), userID, domain.TransactionType(c.Query("type")))
	case c.Query("category") != "":
		txs, err = h.transactions.ListByUserAndCategory(c.Request.Context(), userID, c.Query("category"))
	default:
		txs, err = h.transactions.ListByUser(c.Request.Context(), userID)
	}
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transactionsToResponse(txs))
}

func (h *Handler) listTransactionsByType(c *gin.Context) {
	txs, err := h.transactions.ListByType(c.Request.Context(), domain.TransactionType(c.Param("type")))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transactionsToResponse(txs))
}

func (h *Handler) listTransactionsByStatus(c *gin.Context) {
	txs, err := h.transactions.ListByStatus(c.Request.Context(), domain.TransactionStatus(c.Param("status")))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transactionsToResponse(txs))
}

func (h *Handler) listTransactionsByDateRange(c *gin.Context) {
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}
	txs, err := h.transactions.ListByDateRange(c.Request.Context(), start, end)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transactionsToResponse(txs))
}

func (h *Handler) listTransactionsByAmount(c *gin.Context) {
	min, err := decimal.NewFromString(c.Query("min"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min"})
		return
	}
	txs, err := h.transactions.ListByAmountGreaterThan(c.Request.Context(), min)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transactionsToResponse(txs))
}

func (h *Handler) updateTransaction(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req updateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := service.TransactionUpdate{
		Category: req.Category,
		Amount:   req.Amount,
		Date:     req.Date,
	}
	if req.Type != nil {
		txType := domain.TransactionType(*req.Type)
		patch.Type = &txType
	}

	tx, err := h.transactions.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transactionToResponse(*tx))
}

func (h *Handler) deleteTransaction(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.transactions.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) processTransaction(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	tx, err := h.transactions.Process(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transactionToResponse(*tx))
}

func (h *Handler) cancelTransaction(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	tx, err := h.transactions.Cancel(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transactionToResponse(*tx))
}
