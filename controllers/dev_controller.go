package controllers

import (
	"net/http"
	"time"

	"nutritrack/services"
	"nutritrack/store"

	"github.com/gin-gonic/gin"
)

// DevController hosts development-only helpers; the router only mounts
// it when the app runs in the development environment.
type DevController struct {
	Store *store.Store
}

func NewDevController(st *store.Store) *DevController {
	return &DevController{Store: st}
}

type seedReq struct {
	Users int `json:"users"`
	Days  int `json:"days"`
}

func (d *DevController) SeedTestData(c *gin.Context) {
	var req seedReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Users <= 0 {
		req.Users = 2
	}
	if req.Days <= 0 {
		req.Days = 3
	}

	gen := services.NewTestDataGenerator(d.Store, time.Now().UnixNano())
	data, err := gen.GenerateCompleteTestData(c.Request.Context(), req.Users, req.Days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	usernames := make([]string, 0, len(data.Users))
	for _, u := range data.Users {
		usernames = append(usernames, u.Username)
	}
	c.JSON(http.StatusCreated, gin.H{
		"users":          usernames,
		"foods":          len(data.Foods),
		"micronutrients": len(data.Micronutrients),
		"days":           req.Days,
	})
}
