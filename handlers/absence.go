package handlers

import (
	"net/http"
	"time"

	absencesRepo "pawplan/database/repository/absences"
	planningRepo "pawplan/database/repository/planning"
	"pawplan/models"
	"pawplan/services/absence"
	"pawplan/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AbsenceHandler records cancellations: it determines the billing policy,
// computes the charge, persists the absence record and proposes reschedules.
type AbsenceHandler struct {
	Absences absencesRepo.AbsenceRepository
	Planning planningRepo.PlanningRepository
	Logger   *zap.Logger
}

// NewAbsenceHandler returns an AbsenceHandler.
func NewAbsenceHandler(absences absencesRepo.AbsenceRepository, planning planningRepo.PlanningRepository, logger *zap.Logger) *AbsenceHandler {
	return &AbsenceHandler{Absences: absences, Planning: planning, Logger: logger}
}

// Create registers one cancellation event.
func (h *AbsenceHandler) Create(c *gin.Context) {
	var input struct {
		AnimalID         string             `json:"animalId" binding:"required"`
		ClientID         string             `json:"clientId" binding:"required"`
		GroupID          string             `json:"groupId"`
		OriginalDate     time.Time          `json:"originalDate" binding:"required"`
		CancellationTime time.Time          `json:"cancellationTime" binding:"required"`
		Type             models.AbsenceType `json:"type" binding:"required"`
		WalkType         models.WalkType    `json:"walkType"`
		CustomPrice      *float64           `json:"customPrice"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()
	routine, err := h.Planning.GetRoutineByAnimal(ctx, input.AnimalID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load routine", err.Error())
		return
	}
	isPackageClient := routine != nil && routine.Active && routine.PackageBilling

	decision := absence.DetermineCancellationPolicy(absence.PolicyInput{
		OriginalDate:     input.OriginalDate,
		CancellationTime: input.CancellationTime,
		Type:             input.Type,
		IsPackageClient:  isPackageClient,
	})
	chargeInput := absence.ChargeInput{
		WalkType:      input.WalkType,
		CustomPrice:   input.CustomPrice,
		ChargePercent: decision.ChargePercent,
	}
	record := models.AbsenceRecord{
		AnimalID:     input.AnimalID,
		ClientID:     input.ClientID,
		GroupID:      input.GroupID,
		OriginalDate: input.OriginalDate,
		Type:         input.Type,
		Policy:       decision.Policy,
		PolicyReason: decision.Reason,
		ChargeAmount: absence.CalculateCancellationCharge(chargeInput),
		BasePrice:    absence.BasePrice(chargeInput),
	}

	id, err := h.Absences.Create(ctx, record)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to persist absence", err.Error())
		return
	}
	record.ID = id
	c.JSON(http.StatusCreated, gin.H{"record": record, "decision": decision})
}

// Vacation expands a vacation period into absence records, one per affected
// regular assignment date.
func (h *AbsenceHandler) Vacation(c *gin.Context) {
	var vac models.VacationPeriod
	if err := c.ShouldBindJSON(&vac); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if vac.Type == "" {
		vac.Type = models.AbsenceVacation
	}

	ctx := c.Request.Context()
	regular, err := h.Planning.GetRegularSlots(ctx, vac.AnimalID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load regular slots", err.Error())
		return
	}

	records, err := absence.GenerateVacationAbsences(vac, regular)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ids, err := h.Absences.CreateMany(ctx, records)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to persist vacation absences", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"created": len(ids), "ids": ids})
}

// Stats aggregates the absence history over a date range.
func (h *AbsenceHandler) Stats(c *gin.Context) {
	from, err := parseDateParam(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from' date", "details": err.Error()})
		return
	}
	to, err := parseDateParam(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'to' date", "details": err.Error()})
		return
	}

	records, err := h.Absences.ListByPeriod(c.Request.Context(), from, to)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load absence records", err.Error())
		return
	}
	c.JSON(http.StatusOK, absence.CalculateAbsenceStats(records))
}

// RescheduleSuggestions ranks replacement slots for a recorded absence.
func (h *AbsenceHandler) RescheduleSuggestions(c *gin.Context) {
	id := c.Param("id")
	var input struct {
		Max int `json:"max"`
	}
	// Body is optional; the default suggestion count applies without one.
	_ = c.ShouldBindJSON(&input)

	ctx := c.Request.Context()
	record, err := h.Absences.GetByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "absence record not found"})
		return
	}
	routine, err := h.Planning.GetRoutineByAnimal(ctx, record.AnimalID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load routine", err.Error())
		return
	}
	if routine == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "animal has no routine"})
		return
	}

	y0, w0 := utils.ISOWeekOf(record.OriginalDate)
	y1, w1 := utils.NextISOWeek(y0, w0)
	y2, w2 := utils.NextISOWeek(y1, w1)
	slots, err := h.Planning.GetSlotsForWeeks(ctx, [][2]int{{y1, w1}, {y2, w2}})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load slot instances", err.Error())
		return
	}

	suggestions, err := absence.SuggestRescheduleDates(record.OriginalDate, *routine, slots, input.Max)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// ConfirmReschedule attaches the chosen replacement slot to an absence record.
func (h *AbsenceHandler) ConfirmReschedule(c *gin.Context) {
	id := c.Param("id")
	var input struct {
		SlotID string    `json:"slotId" binding:"required"`
		Date   time.Time `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Absences.ConfirmReschedule(c.Request.Context(), id, input.SlotID, input.Date); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to confirm reschedule", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"confirmed": id})
}

func parseDateParam(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
