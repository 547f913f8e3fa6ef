package services

import (
	"context"
	"errors"

	"resort-backend/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EarnedLeavePerCycle is the assumed earned-leave balance per approval cycle.
// Fixed policy constant, not read from any per-employee accrual record.
const EarnedLeavePerCycle = 4

var daysPerSalaryMonth = decimal.NewFromInt(30)

// ComputeLOP returns the default loss-of-pay days and salary deduction for a
// leave request. EL days beyond the available balance become LOP; the
// deduction is (monthly salary / 30) x LOP days, rounded to the rupee.
// A nil salary yields a zero deduction.
func ComputeLOP(days int, leaveType string, availableEL int, monthlySalary *decimal.Decimal) (lopDays int, deduction decimal.Decimal) {
	if leaveType == models.LeaveTypeEarned && days > availableEL {
		lopDays = days - availableEL
	}
	if lopDays > 0 && monthlySalary != nil {
		deduction = monthlySalary.
			Div(daysPerSalaryMonth).
			Mul(decimal.NewFromInt(int64(lopDays))).
			Round(0)
	}
	return lopDays, deduction
}

type LeaveService struct {
	DB       *gorm.DB
	Notifier *Notifier
}

func NewLeaveService(db *gorm.DB, notifier *Notifier) *LeaveService {
	return &LeaveService{DB: db, Notifier: notifier}
}

func (s *LeaveService) Create(req *models.LeaveRequest) error {
	if req.Days <= 0 {
		return errors.New("invalid_days")
	}

	var staff models.Staff
	if err := s.DB.First(&staff, req.StaffID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("staff_not_found")
		}
		return err
	}

	req.Status = models.LeaveStatusPending
	if req.LeaveType == "" {
		req.LeaveType = models.LeaveTypeEarned
	}

	if err := s.DB.Create(req).Error; err != nil {
		return err
	}

	s.Notifier.Publish(context.Background(), "leave_requests", ChangeInsert, req.ID, req)
	return nil
}

func (s *LeaveService) List(status string, staffID uint) ([]models.LeaveRequest, error) {
	q := s.DB.Preload("Staff").Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if staffID != 0 {
		q = q.Where("staff_id = ?", staffID)
	}
	var reqs []models.LeaveRequest
	err := q.Find(&reqs).Error
	return reqs, err
}

func (s *LeaveService) GetByID(id uint) (*models.LeaveRequest, error) {
	var req models.LeaveRequest
	if err := s.DB.Preload("Staff").First(&req, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("leave_not_found")
		}
		return nil, err
	}
	return &req, nil
}

// HRApprove moves Pending -> HR-Approved.
func (s *LeaveService) HRApprove(id uint) (*models.LeaveRequest, error) {
	req, err := s.transition(id, []string{models.LeaveStatusPending}, map[string]interface{}{
		"status": models.LeaveStatusHRApproved,
	})
	if err != nil {
		return nil, err
	}
	s.Notifier.Publish(context.Background(), "leave_requests", ChangeUpdate, id, nil)
	return req, nil
}

type ApproveLeaveInput struct {
	ApproverID uint
	// Overrides: the computed LOP values are defaults the approver may adjust.
	LOPDaysOverride         *int
	SalaryDeductionOverride *decimal.Decimal
}

// Approve moves HR-Approved -> Approved, filling in LOP days and the salary
// deduction. Computed values are suggestions; explicit overrides win.
func (s *LeaveService) Approve(id uint, in ApproveLeaveInput) (*models.LeaveRequest, error) {
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var req models.LeaveRequest
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Preload("Staff").First(&req, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("leave_not_found")
			}
			return err
		}
		if req.Status != models.LeaveStatusHRApproved {
			return errors.New("invalid_status_transition")
		}

		lopDays, deduction := ComputeLOP(req.Days, req.LeaveType, EarnedLeavePerCycle, req.Staff.MonthlySalary)
		if in.LOPDaysOverride != nil {
			lopDays = *in.LOPDaysOverride
		}
		if in.SalaryDeductionOverride != nil {
			deduction = *in.SalaryDeductionOverride
		}

		updates := map[string]interface{}{
			"status":           models.LeaveStatusApproved,
			"lop_days":         lopDays,
			"salary_deduction": deduction,
			"approved_by":      in.ApproverID,
		}
		// The excess beyond earned leave is recorded as loss-of-pay.
		if lopDays > 0 {
			updates["leave_type"] = models.LeaveTypeLOP
		}

		return tx.Model(&req).Updates(updates).Error
	})
	if txErr != nil {
		return nil, txErr
	}

	s.Notifier.Publish(context.Background(), "leave_requests", ChangeUpdate, id, nil)
	return s.GetByID(id)
}

// Reject is allowed from Pending or HR-Approved.
func (s *LeaveService) Reject(id uint, reason string) (*models.LeaveRequest, error) {
	req, err := s.transition(id,
		[]string{models.LeaveStatusPending, models.LeaveStatusHRApproved},
		map[string]interface{}{
			"status":           models.LeaveStatusRejected,
			"rejection_reason": reason,
		})
	if err != nil {
		return nil, err
	}
	s.Notifier.Publish(context.Background(), "leave_requests", ChangeUpdate, id, nil)
	return req, nil
}

func (s *LeaveService) transition(id uint, fromStatuses []string, updates map[string]interface{}) (*models.LeaveRequest, error) {
	var req models.LeaveRequest

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&req, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("leave_not_found")
			}
			return err
		}

		allowed := false
		for _, st := range fromStatuses {
			if req.Status == st {
				allowed = true
				break
			}
		}
		if !allowed {
			return errors.New("invalid_status_transition")
		}

		return tx.Model(&req).Updates(updates).Error
	})
	if txErr != nil {
		return nil, txErr
	}
	return &req, nil
}
