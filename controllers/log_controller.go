package controllers

import (
	"net/http"
	"time"

	"nutritrack/store"

	"github.com/gin-gonic/gin"
)

// LogController is the write path for consumption events.
type LogController struct {
	Store *store.Store
}

func NewLogController(st *store.Store) *LogController {
	return &LogController{Store: st}
}

type MacroLogInput struct {
	FoodID    uint       `json:"food_id" binding:"required"`
	Quantity  float64    `json:"quantity" binding:"required,gt=0"`
	Timestamp *time.Time `json:"timestamp"` // optional backdating
}

func (l *LogController) CreateMacroLog(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input MacroLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := l.Store.CreateMacroLog(c.Request.Context(), userID, input.FoodID, input.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if input.Timestamp != nil {
		if err := l.Store.SetMacroLogTimestamp(c.Request.Context(), log.ID, input.Timestamp.UTC()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		log.Timestamp = input.Timestamp.UTC()
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":        log.ID,
		"food_id":   log.FoodID,
		"quantity":  log.Quantity,
		"timestamp": log.Timestamp,
	})
}

type MicroLogInput struct {
	MicronutrientID uint    `json:"micronutrient_id" binding:"required"`
	Amount          float64 `json:"amount" binding:"required,gt=0"`
}

func (l *LogController) CreateMicroLog(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input MicroLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := l.Store.CreateMicroLog(c.Request.Context(), userID, input.MicronutrientID, input.Amount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":               log.ID,
		"micronutrient_id": log.MicronutrientID,
		"amount":           log.Amount,
		"timestamp":        log.Timestamp,
	})
}
