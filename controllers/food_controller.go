package controllers

import (
	"net/http"
	"strconv"

	"nutritrack/store"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Store *store.Store
}

func NewFoodController(st *store.Store) *FoodController {
	return &FoodController{Store: st}
}

func (f *FoodController) ListFoods(c *gin.Context) {
	foods, err := f.Store.ListFoods(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, foods)
}

type FoodInput struct {
	Name     string  `json:"name" binding:"required"`
	Calories float64 `json:"calories" binding:"required"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func (f *FoodController) CreateFood(c *gin.Context) {
	var input FoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := f.Store.CreateFood(c.Request.Context(), input.Name, input.Calories, input.Protein, input.Carbs, input.Fat)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, food)
}

// GetFoodMicronutrients exposes the declared per-serving micronutrient
// content of a food. The report engine does not consume this; clients
// that want real per-food micro figures can.
func (f *FoodController) GetFoodMicronutrients(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}

	rows, err := f.Store.ListFoodMicronutrients(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}
