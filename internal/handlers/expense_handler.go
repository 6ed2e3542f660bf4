package handlers

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"cobbler_crm/internal/models"
	"cobbler_crm/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ExpenseHandler struct {
	expenseService services.ExpenseService
	uploadDir      string
}

func NewExpenseHandler(expenseService services.ExpenseService, uploadDir string) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService, uploadDir: uploadDir}
}

// Create accepts multipart form data so a bill image can ride along with
// the expense fields.
func (h *ExpenseHandler) Create(c *gin.Context) {
	expense := &models.Expense{
		Title:       c.PostForm("title"),
		Category:    c.PostForm("category"),
		Description: c.PostForm("description"),
	}

	if amountStr := c.PostForm("amount"); amountStr != "" {
		amount, err := strconv.ParseFloat(amountStr, 64)
		if err != nil {
			respondBadRequest(c, "invalid amount")
			return
		}
		expense.Amount = amount
	}

	if dateStr := c.PostForm("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			respondBadRequest(c, "invalid date, expected YYYY-MM-DD")
			return
		}
		expense.Date = date
	}

	if employeeStr := c.PostForm("employee_id"); employeeStr != "" {
		employeeID, err := strconv.ParseUint(employeeStr, 10, 32)
		if err != nil {
			respondBadRequest(c, "invalid employee_id")
			return
		}
		id := uint(employeeID)
		expense.EmployeeID = &id
	}

	if file, err := c.FormFile("bill"); err == nil {
		path, err := h.saveBill(c, file)
		if err != nil {
			respondError(c, err)
			return
		}
		expense.BillPath = path
	}

	if err := h.expenseService.CreateExpense(expense); err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, expense)
}

func (h *ExpenseHandler) saveBill(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}
	dest := filepath.Join(h.uploadDir, uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, dest); err != nil {
		return "", fmt.Errorf("failed to save bill: %w", err)
	}
	return dest, nil
}

func (h *ExpenseHandler) List(c *gin.Context) {
	expenses, err := h.expenseService.GetAllExpenses()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, expenses)
}

func (h *ExpenseHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		Title       string     `json:"title"`
		Amount      float64    `json:"amount"`
		Category    string     `json:"category"`
		Date        *time.Time `json:"date"`
		Description string     `json:"description"`
		EmployeeID  *uint      `json:"employee_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format")
		return
	}

	existing, err := h.expenseService.GetExpenseByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	existing.Title = req.Title
	existing.Amount = req.Amount
	existing.Category = req.Category
	existing.Description = req.Description
	existing.EmployeeID = req.EmployeeID
	if req.Date != nil {
		existing.Date = *req.Date
	}

	if err := h.expenseService.UpdateExpense(existing); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, existing)
}

func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.expenseService.DeleteExpense(id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"id": id, "status": "deleted"})
}

func (h *ExpenseHandler) Stats(c *gin.Context) {
	var startDate, endDate *time.Time
	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			respondBadRequest(c, "invalid from date, expected YYYY-MM-DD")
			return
		}
		startDate = &from
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			respondBadRequest(c, "invalid to date, expected YYYY-MM-DD")
			return
		}
		endDate = &to
	}

	stats, err := h.expenseService.GetExpenseStats(startDate, endDate)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, stats)
}
