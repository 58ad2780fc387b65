package financing_controller

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsabonet/milagre-car-site-sub000/cache"
	"github.com/jsabonet/milagre-car-site-sub000/financing"
	"github.com/jsabonet/milagre-car-site-sub000/models"
	"github.com/jsabonet/milagre-car-site-sub000/services"
)

// QuoteRequest is a simulation plus what to print on the quote.
type QuoteRequest struct {
	financing.Request
	CarID        string `json:"car_id" example:"018d1234-5678-7abc-def0-123456789abc"`
	CustomerName string `json:"customer_name" binding:"omitempty,max=120" example:"Ana Machava"`
}

var loadInventory = func(ctx context.Context) (*cache.Snapshot, error) {
	return services.GetInventoryService().Snapshot(ctx)
}

// DownloadFinancingQuote godoc
// @Summary Download a financing quote PDF
// @Description Runs the simulation and renders it, schedule included, as a PDF
// @Tags store
// @Accept json
// @Produce octet-stream
// @Param request body financing_controller.QuoteRequest true "Loan terms and quote details"
// @Success 200 "PDF file"
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/financing/quote [post]
func DownloadFinancingQuote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	result, err := financing.Simulate(req.Request)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	quote := services.FinancingQuote{
		Result:       result,
		CustomerName: strings.TrimSpace(req.CustomerName),
		IssuedAt:     time.Now(),
	}
	if req.CarID != "" {
		snap, err := loadInventory(c.Request.Context())
		if err != nil {
			log.Printf("[store.quote] %v", err)
		} else if car, ok := snap.ByID(req.CarID); ok {
			quote.CarTitle = fmt.Sprintf("%d %s", car.Year, car.ToVehicle().Title())
		}
	}

	pdfBuffer, err := services.GenerateFinancingQuotePDF(quote)
	if err != nil {
		log.Printf("[store.quote] %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate quote"))
		return
	}

	filename := fmt.Sprintf("financing-quote-%s.pdf", quote.IssuedAt.Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())
}
