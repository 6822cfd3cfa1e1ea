package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shivamgupta-zluri/onboarding-project/internal/apperrors"
	portssvc "github.com/shivamgupta-zluri/onboarding-project/internal/core/ports/services"
	"github.com/shivamgupta-zluri/onboarding-project/internal/dto"
	"github.com/shivamgupta-zluri/onboarding-project/internal/middleware"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	txnService    portssvc.TransactionSvcFacade
	importService portssvc.ImportSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade, is portssvc.ImportSvcFacade) *transactionHandler {
	return &transactionHandler{
		txnService:    ts,
		importService: is,
	}
}

// registerTransactionRoutes registers routes related to transactions. The
// paths match what the web client already calls.
func registerTransactionRoutes(rg *gin.RouterGroup, txnService portssvc.TransactionSvcFacade, importService portssvc.ImportSvcFacade) {
	h := newTransactionHandler(txnService, importService)

	rg.GET("/getAllTransactions", h.getAllTransactions)
	rg.GET("/getTransactionById/:id", h.getTransactionByID)
	rg.POST("/createTransaction", h.createTransaction)
	rg.PUT("/updateTransaction/:id", h.updateTransaction)
	rg.DELETE("/deleteTransaction/:id", h.deleteTransaction)
	rg.POST("/uploadCSV", h.uploadCSV)
}

// getAllTransactions godoc
// @Summary List transactions
// @Description Retrieves transactions ordered most recent first, with optional cursor pagination
// @Tags transactions
// @Produce json
// @Param limit query int false "Page size; omit for all rows"
// @Param nextToken query string false "Cursor returned by a previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid pagination parameters"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /getAllTransactions [get]
func (h *transactionHandler) getAllTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	params := dto.ListTransactionsParams{
		Limit:     limit,
		NextToken: c.Query("nextToken"),
	}

	resp, err := h.txnService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid pagination token", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination token"})
			return
		}
		logger.Error("Failed to list transactions from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	logger.Info("Transactions listed successfully", slog.Int("count", len(resp.Transactions)))
	c.JSON(http.StatusOK, resp)
}

// getTransactionByID godoc
// @Summary Get a transaction by id
// @Tags transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Router /getTransactionById/{id} [get]
func (h *transactionHandler) getTransactionByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	logger = logger.With(slog.Int64("transaction_id", id))

	txn, err := h.txnService.GetTransactionByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Transaction not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		logger.Error("Failed to get transaction from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transaction"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// createTransaction godoc
// @Summary Create a transaction
// @Description Normalizes a form submission (INR amount computed server-side from cached rates) and persists it
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Validation failure"
// @Failure 502 {object} map[string]string "Rate provider unavailable"
// @Failure 500 {object} map[string]string "Failed to create transaction"
// @Router /createTransaction [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	created, err := h.txnService.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create transaction")
		return
	}

	logger.Info("Transaction created successfully", slog.Int64("transaction_id", created.ID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(created))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Re-normalizes the submitted fields against current rates and replaces the stored record
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path int true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "Transaction details"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Validation failure"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 502 {object} map[string]string "Rate provider unavailable"
// @Failure 500 {object} map[string]string "Failed to update transaction"
// @Router /updateTransaction/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	logger = logger.With(slog.Int64("transaction_id", id))

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	updated, err := h.txnService.UpdateTransaction(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Transaction not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		respondServiceError(c, logger, err, "Failed to update transaction")
		return
	}

	logger.Info("Transaction updated successfully")
	c.JSON(http.StatusOK, dto.ToTransactionResponse(updated))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Removes a transaction; deleting an absent id still succeeds
// @Tags transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string "Failed to delete transaction"
// @Router /deleteTransaction/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.txnService.DeleteTransaction(c.Request.Context(), id); err != nil {
		logger.Error("Failed to delete transaction in service", slog.Int64("transaction_id", id), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transaction"})
		return
	}

	logger.Info("Transaction deleted successfully", slog.Int64("transaction_id", id))
	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}

// uploadCSV godoc
// @Summary Import transactions from a CSV file
// @Description Validates every row against one rate snapshot; any invalid row rejects the whole batch
// @Tags transactions
// @Accept multipart/form-data
// @Produce json
// @Param uploadCSV formData file true "CSV file with Date, Description, Amount, Currency columns"
// @Success 201 {object} dto.BatchImportResponse
// @Failure 400 {object} dto.BatchImportResponse "One or more rows failed validation"
// @Failure 502 {object} map[string]string "Rate provider unavailable"
// @Failure 500 {object} map[string]string "Failed to process transactions"
// @Router /uploadCSV [post]
func (h *transactionHandler) uploadCSV(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	fileHeader, err := c.FormFile("uploadCSV")
	if err != nil {
		logger.Warn("Missing CSV file in upload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error uploading CSV file"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Warn("Failed to open uploaded CSV file", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error uploading CSV file"})
		return
	}
	defer file.Close()

	rows, err := readCSVRows(file)
	if err != nil {
		logger.Warn("Failed to parse uploaded CSV file", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid CSV file: %s", err.Error())})
		return
	}

	logger = logger.With(slog.Int("rows", len(rows)))
	logger.Info("Received CSV import request")

	result, err := h.importService.ImportBatch(c.Request.Context(), rows)
	if err != nil {
		if errors.Is(err, apperrors.ErrRateFetch) {
			logger.Error("Rate provider fetch failed during import", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch exchange rates"})
			return
		}
		logger.Error("Failed to import CSV batch", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process transactions"})
		return
	}

	if result.Rejected() {
		logger.Warn("CSV batch rejected", slog.Int("error_count", len(result.Errors)))
		c.JSON(http.StatusBadRequest, dto.ToBatchImportResponse(result))
		return
	}

	logger.Info("CSV batch imported successfully", slog.Int("imported", result.Imported))
	c.JSON(http.StatusCreated, dto.ToBatchImportResponse(result))
}

// parseIDParam parses the :id path parameter, writing a 400 response itself
// when the value is not a positive integer.
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction id"})
		return 0, false
	}
	return id, true
}

// bindingErrorMessage turns gin binding failures into readable messages.
func bindingErrorMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]string, len(validationErrs))
		for i, fieldErr := range validationErrs {
			fields[i] = fmt.Sprintf("%s failed on '%s'", fieldErr.Field(), fieldErr.Tag())
		}
		return "Invalid request: " + strings.Join(fields, ", ")
	}
	return "Invalid request format: " + err.Error()
}

func respondServiceError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrRateFetch):
		logger.Error("Rate provider fetch failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch exchange rates"})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
