package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"pawplan/config"
	billingRepo "pawplan/database/repository/billing"
	clientsRepo "pawplan/database/repository/clients"
	planningRepo "pawplan/database/repository/planning"
	"pawplan/models"
	"pawplan/services/invoicing"
	"pawplan/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InvoicingHandler exposes invoice computation, reminders and reports.
type InvoicingHandler struct {
	Billing  billingRepo.BillingRepository
	Clients  clientsRepo.ClientRepository
	Planning planningRepo.PlanningRepository
	Logger   *zap.Logger
}

// NewInvoicingHandler returns an InvoicingHandler.
func NewInvoicingHandler(
	billing billingRepo.BillingRepository,
	clients clientsRepo.ClientRepository,
	planning planningRepo.PlanningRepository,
	logger *zap.Logger,
) *InvoicingHandler {
	return &InvoicingHandler{Billing: billing, Clients: clients, Planning: planning, Logger: logger}
}

func (h *InvoicingHandler) defaultOptions() invoicing.InvoiceOptions {
	return invoicing.InvoiceOptions{
		ApplyPackageDiscount: true,
		TaxRatePercent:       config.AppConfig.TaxRatePercent,
		PaymentDelayDays:     config.AppConfig.PaymentDelayDays,
		IssueDate:            time.Now(),
	}
}

func (h *InvoicingHandler) routineMap(ctx context.Context) (map[string]models.DogRoutine, error) {
	routines, err := h.Planning.ListActiveRoutines(ctx)
	if err != nil {
		return nil, err
	}
	byAnimal := make(map[string]models.DogRoutine, len(routines))
	for _, r := range routines {
		byAnimal[r.AnimalID] = r
	}
	return byAnimal, nil
}

// Preview computes one client's invoice for a month without persisting it.
func (h *InvoicingHandler) Preview(c *gin.Context) {
	var input struct {
		ClientID string `json:"clientId" binding:"required"`
		Year     int    `json:"year" binding:"required"`
		Month    int    `json:"month" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()
	activities, err := h.Billing.ListClientActivitiesForMonth(ctx, input.ClientID, input.Year, time.Month(input.Month))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load activities", err.Error())
		return
	}
	routines, err := h.routineMap(ctx)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load routines", err.Error())
		return
	}

	calc, err := invoicing.CalculateInvoice(input.ClientID, activities, routines, h.defaultOptions())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, calc)
}

// GenerateMonthly computes and persists one invoice per client with activity
// in the month. Clients without qualifying activities get no invoice.
func (h *InvoicingHandler) GenerateMonthly(c *gin.Context) {
	var input struct {
		Year  int `json:"year" binding:"required"`
		Month int `json:"month" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()
	clients, err := h.Clients.List(ctx)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load clients", err.Error())
		return
	}
	activities, err := h.Billing.ListActivitiesForMonth(ctx, input.Year, time.Month(input.Month))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load activities", err.Error())
		return
	}
	routines, err := h.routineMap(ctx)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load routines", err.Error())
		return
	}

	calcs, err := invoicing.GenerateMonthlyInvoices(clients, activities, routines, input.Year, time.Month(input.Month), h.defaultOptions())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created := make([]models.Invoice, 0, len(calcs))
	for _, calc := range calcs {
		inv := models.Invoice{
			ClientID:  calc.ClientID,
			Status:    models.InvoiceDraft,
			Subtotal:  calc.Subtotal,
			TaxAmount: calc.TaxAmount,
			Total:     calc.Total,
			IssueDate: calc.IssueDate,
			DueDate:   calc.DueDate,
		}
		id, err := h.Billing.CreateInvoice(ctx, inv)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to persist invoice", err.Error())
			return
		}
		inv.ID = id
		created = append(created, inv)
	}
	c.JSON(http.StatusCreated, gin.H{"invoices": created, "calculations": calcs})
}

// DueReminders lists the reminders currently due, without recording a send.
func (h *InvoicingHandler) DueReminders(c *gin.Context) {
	invoices, err := h.Billing.ListUnpaidInvoices(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load invoices", err.Error())
		return
	}
	reminders := invoicing.GeneratePaymentReminders(invoices, time.Now(), config.AppConfig.ReminderIntervalDays)
	c.JSON(http.StatusOK, gin.H{"reminders": reminders})
}

// MonthlyReport returns the month's financial summary.
func (h *InvoicingHandler) MonthlyReport(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
		return
	}

	ctx := c.Request.Context()
	invoices, err := h.Billing.ListInvoicesForMonth(ctx, year, time.Month(month))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load invoices", err.Error())
		return
	}
	activities, err := h.Billing.ListActivitiesForMonth(ctx, year, time.Month(month))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load activities", err.Error())
		return
	}
	expenses, err := h.Billing.ListExpensesForMonth(ctx, year, time.Month(month))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load expenses", err.Error())
		return
	}

	report, err := invoicing.GenerateMonthlyReport(year, time.Month(month), invoices, activities, expenses)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

// VolumeDiscount is the standalone what-if discount lookup.
func (h *InvoicingHandler) VolumeDiscount(c *gin.Context) {
	count, err := strconv.Atoi(c.Query("count"))
	if err != nil || count < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid count"})
		return
	}
	c.JSON(http.StatusOK, invoicing.CalculateVolumeDiscount(count))
}

// RevenueEstimate projects recurring monthly revenue from active routines.
func (h *InvoicingHandler) RevenueEstimate(c *gin.Context) {
	routines, err := h.Planning.ListActiveRoutines(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load routines", err.Error())
		return
	}
	estimate, err := invoicing.EstimateMonthlyRevenue(routines)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"estimatedMonthlyRevenue": estimate})
}
