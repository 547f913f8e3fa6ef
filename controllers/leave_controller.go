package controllers

import (
	"net/http"
	"strconv"

	"resort-backend/middleware"
	"resort-backend/models"
	"resort-backend/services"
	"resort-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type LeaveController struct {
	Service *services.LeaveService
}

func NewLeaveController(service *services.LeaveService) *LeaveController {
	return &LeaveController{Service: service}
}

type createLeavePayload struct {
	StaffID   uint   `json:"staff_id" binding:"required"`
	Days      int    `json:"days" binding:"required"`
	LeaveType string `json:"leave_type"`
	Reason    string `json:"reason"`
}

type approveLeavePayload struct {
	LOPDays         *int             `json:"lop_days"`
	SalaryDeduction *decimal.Decimal `json:"salary_deduction"`
}

type rejectLeavePayload struct {
	Reason string `json:"reason"`
}

func (lc *LeaveController) CreateLeave(c *gin.Context) {
	var payload createLeavePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	req := models.LeaveRequest{
		StaffID:   payload.StaffID,
		Days:      payload.Days,
		LeaveType: payload.LeaveType,
		Reason:    payload.Reason,
	}
	if err := lc.Service.Create(&req); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, req)
}

func (lc *LeaveController) GetLeaves(c *gin.Context) {
	var staffID uint
	if raw := c.Query("staff_id"); raw != "" {
		if id, err := strconv.Atoi(raw); err == nil {
			staffID = uint(id)
		}
	}

	leaves, err := lc.Service.List(c.Query("status"), staffID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, leaves)
}

func (lc *LeaveController) GetLeave(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}

	req, err := lc.Service.GetByID(uint(id))
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, req)
}

func (lc *LeaveController) HRApprove(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}

	req, err := lc.Service.HRApprove(uint(id))
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, req)
}

func (lc *LeaveController) Approve(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}

	var payload approveLeavePayload
	_ = c.ShouldBindJSON(&payload)

	var approverID uint
	if v, ok := c.Get(middleware.ContextAdminID); ok {
		if id, ok := v.(uint); ok {
			approverID = id
		}
	}

	req, err := lc.Service.Approve(uint(id), services.ApproveLeaveInput{
		ApproverID:              approverID,
		LOPDaysOverride:         payload.LOPDays,
		SalaryDeductionOverride: payload.SalaryDeduction,
	})
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, req)
}

func (lc *LeaveController) Reject(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}

	var payload rejectLeavePayload
	_ = c.ShouldBindJSON(&payload)

	req, err := lc.Service.Reject(uint(id), payload.Reason)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, req)
}
