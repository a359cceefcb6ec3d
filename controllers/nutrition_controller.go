package controllers

import (
	"net/http"
	"time"

	"nutritrack/services"

	"github.com/gin-gonic/gin"
)

type NutritionController struct {
	Svc *services.NutritionService
}

func NewNutritionController(svc *services.NutritionService) *NutritionController {
	return &NutritionController{Svc: svc}
}

// GetNutritionReport serves the authenticated user's report.
// ?start=YYYY-MM-DD&end=YYYY-MM-DD; both optional, the engine applies
// its trailing-week default. The end date covers the whole day.
func (n *NutritionController) GetNutritionReport(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	start, end, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := n.Svc.UserNutritionReport(c.Request.Context(), userID, start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if report == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (n *NutritionController) GetNutritionReportByUsername(c *gin.Context) {
	start, end, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := n.Svc.UserNutritionReportByUsername(c.Request.Context(), c.Param("username"), start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if report == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, report)
}

func parseDateRange(c *gin.Context) (start, end *time.Time, err error) {
	if v := c.Query("start"); v != "" {
		t, perr := time.ParseInLocation("2006-01-02", v, time.UTC)
		if perr != nil {
			return nil, nil, perr
		}
		start = &t
	}
	if v := c.Query("end"); v != "" {
		t, perr := time.ParseInLocation("2006-01-02", v, time.UTC)
		if perr != nil {
			return nil, nil, perr
		}
		// inclusive through the whole named day; logs are stamped with
		// nanosecond precision, so back off from the next midnight
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		end = &t
	}
	return start, end, nil
}

func userIDFromCtx(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
