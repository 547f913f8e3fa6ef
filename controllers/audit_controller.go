package controllers

import (
	"net/http"
	"strconv"

	"resort-backend/services"
	"resort-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuditController struct {
	Service *services.AuditService
}

func NewAuditController(service *services.AuditService) *AuditController {
	return &AuditController{Service: service}
}

// GetAuditLogs returns recent audit rows, newest first. Filters: ?from=, ?to=,
// ?table=, ?actor=, ?limit=.
func (ac *AuditController) GetAuditLogs(c *gin.Context) {
	from, to, err := parseRangeQuery(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date format")
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}

	logs, err := ac.Service.Query(services.AuditQuery{
		From:      from,
		To:        to,
		TableName: c.Query("table"),
		Actor:     c.Query("actor"),
		Limit:     limit,
	})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, logs)
}
