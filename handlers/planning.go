package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	planningRepo "pawplan/database/repository/planning"
	"pawplan/models"
	"pawplan/services/planning"
	"pawplan/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const loadCacheTTL = time.Minute

// PlanningHandler exposes the planning engine over HTTP: it assembles week
// snapshots from the repository, runs the pure validation/suggestion
// functions, and applies the resulting mutations.
type PlanningHandler struct {
	Repo   planningRepo.PlanningRepository
	Cache  *redis.Client
	Logger *zap.Logger
}

// NewPlanningHandler returns a PlanningHandler.
func NewPlanningHandler(repo planningRepo.PlanningRepository, cache *redis.Client, logger *zap.Logger) *PlanningHandler {
	return &PlanningHandler{Repo: repo, Cache: cache, Logger: logger}
}

type assignmentInput struct {
	AnimalID string `json:"animalId" binding:"required"`
	SlotID   string `json:"slotId" binding:"required"`
	Year     int    `json:"year" binding:"required"`
	Week     int    `json:"week" binding:"required"`
}

// ValidateAssignment checks an assignment against the current week snapshot
// without applying it.
func (h *PlanningHandler) ValidateAssignment(c *gin.Context) {
	var input assignmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()
	slots, assignments, err := h.Repo.FreshSnapshot(ctx, input.Year, input.Week)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load week snapshot", err.Error())
		return
	}
	routine, err := h.Repo.GetRoutineByAnimal(ctx, input.AnimalID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load routine", err.Error())
		return
	}

	result, err := planning.ValidateDogAssignment(input.AnimalID, input.SlotID, assignments, slots, routine)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// WeeklyLoad returns per-slot occupancy for one ISO week, cached briefly in
// redis since the dashboard polls it.
func (h *PlanningHandler) WeeklyLoad(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}
	week, err := strconv.Atoi(c.Param("week"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid week"})
		return
	}

	ctx := c.Request.Context()
	cacheKey := loadCacheKey(year, week)
	if cached, err := h.Cache.Get(ctx, cacheKey).Result(); err == nil {
		var loads []planning.SlotLoad
		if json.Unmarshal([]byte(cached), &loads) == nil {
			c.JSON(http.StatusOK, gin.H{"loads": loads, "cached": true})
			return
		}
	}

	slots, err := h.Repo.GetSlotsForWeek(ctx, year, week)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load slot instances", err.Error())
		return
	}
	loads := planning.AnalyzeWeeklyLoad(slots)

	if data, err := json.Marshal(loads); err == nil {
		if err := h.Cache.Set(ctx, cacheKey, data, loadCacheTTL).Err(); err != nil {
			h.Logger.Warn("failed to cache weekly load", zap.Error(err))
		}
	}
	c.JSON(http.StatusOK, gin.H{"loads": loads, "cached": false})
}

// Suggest returns ranked open slots for an animal's routine.
func (h *PlanningHandler) Suggest(c *gin.Context) {
	var input struct {
		AnimalID string `json:"animalId" binding:"required"`
		Year     int    `json:"year" binding:"required"`
		Week     int    `json:"week" binding:"required"`
		Max      int    `json:"max"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()
	routine, err := h.Repo.GetRoutineByAnimal(ctx, input.AnimalID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load routine", err.Error())
		return
	}
	if routine == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "animal has no routine"})
		return
	}
	slots, err := h.Repo.GetSlotsForWeek(ctx, input.Year, input.Week)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load slot instances", err.Error())
		return
	}

	suggestions, err := planning.SuggestOptimalSlots(*routine, slots, input.Max)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// Compliance reports an animal's actual walks against its routine commitment
// for one ISO week.
func (h *PlanningHandler) Compliance(c *gin.Context) {
	var input struct {
		AnimalID string `json:"animalId" binding:"required"`
		Year     int    `json:"year" binding:"required"`
		Week     int    `json:"week" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()
	routine, err := h.Repo.GetRoutineByAnimal(ctx, input.AnimalID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load routine", err.Error())
		return
	}
	if routine == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "animal has no routine"})
		return
	}
	assignments, err := h.Repo.GetAssignmentsForWeek(ctx, input.Year, input.Week)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load assignments", err.Error())
		return
	}

	compliance, err := planning.CheckRoutineCompliance(*routine, assignments)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, compliance)
}

// Assign validates against a snapshot re-read just before the write, then
// creates the assignment. Blocking violations abort with 409.
func (h *PlanningHandler) Assign(c *gin.Context) {
	var input assignmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()
	slots, assignments, err := h.Repo.FreshSnapshot(ctx, input.Year, input.Week)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load week snapshot", err.Error())
		return
	}
	routine, err := h.Repo.GetRoutineByAnimal(ctx, input.AnimalID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load routine", err.Error())
		return
	}

	result, err := planning.ValidateDogAssignment(input.AnimalID, input.SlotID, assignments, slots, routine)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !result.IsValid {
		c.JSON(http.StatusConflict, result)
		return
	}

	var target models.WeeklySlotInstance
	for _, s := range slots {
		if s.ID == input.SlotID {
			target = s
			break
		}
	}
	id, err := h.Repo.CreateAssignment(ctx, models.Assignment{
		SlotID:   input.SlotID,
		AnimalID: input.AnimalID,
		Year:     input.Year,
		Week:     input.Week,
		Day:      target.Day,
	})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create assignment", err.Error())
		return
	}
	h.invalidateLoadCache(ctx, input.Year, input.Week)

	c.JSON(http.StatusCreated, gin.H{"assignmentId": id, "validation": result})
}

// Unassign removes an assignment and releases its slot seat.
func (h *PlanningHandler) Unassign(c *gin.Context) {
	id := c.Param("id")
	if err := h.Repo.DeleteAssignment(c.Request.Context(), id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete assignment", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func (h *PlanningHandler) invalidateLoadCache(ctx context.Context, year, week int) {
	if err := h.Cache.Del(ctx, loadCacheKey(year, week)).Err(); err != nil {
		h.Logger.Warn("failed to invalidate weekly load cache", zap.Error(err))
	}
}

func loadCacheKey(year, week int) string {
	return fmt.Sprintf("planning:load:%d:%d", year, week)
}
