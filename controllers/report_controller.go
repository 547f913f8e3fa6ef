package controllers

import (
	"fmt"
	"net/http"
	"time"

	"resort-backend/services"
	"resort-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Service *services.ReportService
}

func NewReportController(service *services.ReportService) *ReportController {
	return &ReportController{Service: service}
}

func (rc *ReportController) Dashboard(c *gin.Context) {
	summary, err := rc.Service.Dashboard()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, summary)
}

// RestaurantSalesExport streams the sales workbook as an xlsx attachment.
func (rc *ReportController) RestaurantSalesExport(c *gin.Context) {
	from, to, err := parseRangeQuery(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date format")
		return
	}

	f, err := rc.Service.RestaurantSalesWorkbook(from, to)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("restaurant-sales-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to write workbook")
	}
}
