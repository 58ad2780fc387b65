package financing_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsabonet/milagre-car-site-sub000/financing"
	"github.com/jsabonet/milagre-car-site-sub000/models"
)

// SimulateFinancing godoc
// @Summary Simulate a car loan
// @Description Fixed-rate amortization with monthly payment, totals and the full schedule
// @Tags store
// @Accept json
// @Produce json
// @Param request body financing.Request true "Loan terms"
// @Success 200 {object} models.ApiResponse{data=financing.Result}
// @Failure 400 {object} models.ApiResponse
// @Router /store/financing/simulate [post]
func SimulateFinancing(c *gin.Context) {
	var req financing.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	result, err := financing.Simulate(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Simulation ready", result))
}
