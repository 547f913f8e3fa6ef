package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"resort-backend/config"
	"resort-backend/models"
	"resort-backend/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Advance must cover at least 30% of the computed stay total. The original
// flow only blocked this in the browser; the API enforces the same rule.
var minAdvanceRatio = decimal.NewFromFloat(0.30)

// MinimumAdvance returns the smallest acceptable advance for a base amount.
func MinimumAdvance(base decimal.Decimal) decimal.Decimal {
	return base.Mul(minAdvanceRatio)
}

// MeetsAdvanceMinimum reports whether advance >= 30% of base.
func MeetsAdvanceMinimum(base, advance decimal.Decimal) bool {
	return advance.GreaterThanOrEqual(MinimumAdvance(base))
}

type BookingService struct {
	DB       *gorm.DB
	Guests   *GuestService
	Notifier *Notifier
}

func NewBookingService(db *gorm.DB, guests *GuestService, notifier *Notifier) *BookingService {
	return &BookingService{DB: db, Guests: guests, Notifier: notifier}
}

type CreateBookingInput struct {
	// Either an existing guest id or inline guest details (deduped by phone).
	GuestID    uint
	GuestName  string
	GuestPhone string
	GuestEmail string

	RoomID   uint
	CheckIn  string // "2006-01-02"
	CheckOut string

	AdvanceAmount decimal.Decimal
	AdvanceMethod string
}

func parseBookingDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// CreateBooking runs the intake flow: resolve guest by normalized phone,
// compute nights x nightly rate, persist booking + optional advance payment +
// room status flip in one transaction.
func (s *BookingService) CreateBooking(in CreateBookingInput) (*models.Booking, error) {
	ci, err := parseBookingDate(in.CheckIn)
	if err != nil {
		return nil, errors.New("invalid_date_format")
	}
	co, err := parseBookingDate(in.CheckOut)
	if err != nil {
		return nil, errors.New("invalid_date_format")
	}

	var room models.Room
	if err := s.DB.First(&room, in.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("room_not_found")
		}
		return nil, fmt.Errorf("db error checking room %d: %w", in.RoomID, err)
	}
	if room.Status == models.RoomStatusReserved || room.Status == models.RoomStatusOccupied {
		return nil, errors.New("room_not_available")
	}

	// Resolve the guest
	var guest models.Guest
	if in.GuestID != 0 {
		if err := s.DB.First(&guest, in.GuestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errors.New("guest_not_found")
			}
			return nil, err
		}
	} else {
		guest = models.Guest{
			FullName: strings.TrimSpace(in.GuestName),
			Phone:    in.GuestPhone,
			Email:    strings.TrimSpace(in.GuestEmail),
		}
		if _, err := s.Guests.FindOrCreateByPhone(&guest); err != nil {
			return nil, err
		}
	}

	nights := utils.Nights(ci, co)
	base := utils.StayTotal(nights, room.NightlyRate)

	hasAdvance := in.AdvanceAmount.IsPositive()
	if hasAdvance && !MeetsAdvanceMinimum(base, in.AdvanceAmount) {
		return nil, errors.New("advance_below_minimum")
	}

	roomID := room.ID
	booking := models.Booking{
		GuestID:       guest.ID,
		RoomID:        &roomID,
		ReferenceCode: utils.BookingReference(),
		Status:        models.BookingStatusBooked,
		CheckIn:       &ci,
		CheckOut:      &co,
		Nights:        nights,
		BaseAmount:    base,
		AdvanceAmount: in.AdvanceAmount,
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		if hasAdvance {
			bookingID := booking.ID
			guestID := guest.ID
			payment := models.Payment{
				BookingID: &bookingID,
				GuestID:   &guestID,
				Amount:    in.AdvanceAmount,
				Method:    in.AdvanceMethod,
				Kind:      models.PaymentKindAdvance,
			}
			if err := tx.Create(&payment).Error; err != nil {
				return fmt.Errorf("failed to create advance payment: %w", err)
			}

			entry := models.AccountEntry{
				Category:      models.CategoryRoom,
				Description:   fmt.Sprintf("Advance for booking %s", booking.ReferenceCode),
				TotalAmount:   in.AdvanceAmount,
				PaymentMethod: in.AdvanceMethod,
				GuestName:     guest.FullName,
				RoomNumber:    room.RoomNumber,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return fmt.Errorf("failed to create account entry: %w", err)
			}
		}

		if err := tx.Model(&models.Room{}).
			Where("id = ?", room.ID).
			Update("status", models.RoomStatusReserved).Error; err != nil {
			return fmt.Errorf("failed to update room %d status: %w", room.ID, err)
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	ctx := context.Background()
	s.Notifier.Publish(ctx, "bookings", ChangeInsert, booking.ID, booking)
	s.Notifier.Publish(ctx, "rooms", ChangeUpdate, room.ID, nil)

	// best-effort confirmation email
	if guest.Email != "" {
		if err := utils.SendBookingConfirmationEmail(
			config.GetLogger(),
			guest.Email,
			guest.FullName,
			booking.ReferenceCode,
			room.RoomNumber,
			ci.Format("2006-01-02"),
			co.Format("2006-01-02"),
			base.StringFixed(2),
			in.AdvanceAmount.StringFixed(2),
		); err != nil {
			config.LogError("bookings", "CreateBooking", booking.ReferenceCode, err)
		}
	}

	// reload with relations
	var out models.Booking
	if err := s.DB.Preload("Guest").Preload("Room").Preload("Payments").First(&out, booking.ID).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *BookingService) GetAll() ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.
		Preload("Guest").
		Preload("Room").
		Preload("Payments").
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return list, nil
}

func (s *BookingService) GetByID(id uint) (*models.Booking, error) {
	var bk models.Booking
	if err := s.DB.Preload("Guest").Preload("Room").Preload("Payments").First(&bk, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("booking_not_found")
		}
		return nil, fmt.Errorf("failed to retrieve booking: %w", err)
	}
	return &bk, nil
}

// CheckIn flips a booked room stay to checked_in and occupies the room.
func (s *BookingService) CheckIn(bookingID uint) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("booking_not_found")
			}
			return err
		}
		if booking.Status != models.BookingStatusBooked {
			return errors.New("not_booked")
		}

		now := time.Now().UTC()
		if err := tx.Model(&booking).Updates(map[string]interface{}{
			"status":   models.BookingStatusCheckedIn,
			"check_in": now,
		}).Error; err != nil {
			return err
		}

		if booking.RoomID != nil {
			if err := tx.Model(&models.Room{}).
				Where("id = ?", *booking.RoomID).
				Update("status", models.RoomStatusOccupied).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	ctx := context.Background()
	s.Notifier.Publish(ctx, "bookings", ChangeUpdate, bookingID, nil)
	s.Notifier.Publish(ctx, "rooms", ChangeUpdate, nil, nil)
	return nil
}

// Checkout settles the outstanding balance (base - advance) as a payment row,
// marks the booking checked_out and frees the room.
func (s *BookingService) Checkout(bookingID uint, method string) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Guest").Preload("Room").
			First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("booking_not_found")
			}
			return err
		}
		if booking.Status != models.BookingStatusCheckedIn {
			return errors.New("not_checked_in")
		}

		now := time.Now().UTC()
		if err := tx.Model(&booking).Updates(map[string]interface{}{
			"status":    models.BookingStatusCheckedOut,
			"check_out": now,
		}).Error; err != nil {
			return err
		}

		balance := booking.BaseAmount.Sub(booking.AdvanceAmount)
		if balance.IsPositive() {
			bID := booking.ID
			gID := booking.GuestID
			payment := models.Payment{
				BookingID: &bID,
				GuestID:   &gID,
				Amount:    balance,
				Method:    method,
				Kind:      models.PaymentKindSettlement,
			}
			if err := tx.Create(&payment).Error; err != nil {
				return err
			}

			entry := models.AccountEntry{
				Category:      models.CategoryRoom,
				Description:   fmt.Sprintf("Settlement for booking %s", booking.ReferenceCode),
				TotalAmount:   balance,
				PaymentMethod: method,
				GuestName:     booking.Guest.FullName,
				RoomNumber:    booking.Room.RoomNumber,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
		}

		if booking.RoomID != nil {
			if err := tx.Model(&models.Room{}).
				Where("id = ?", *booking.RoomID).
				Update("status", models.RoomStatusAvailable).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	ctx := context.Background()
	s.Notifier.Publish(ctx, "bookings", ChangeUpdate, bookingID, nil)
	s.Notifier.Publish(ctx, "rooms", ChangeUpdate, nil, nil)
	return nil
}

// Cancel frees the room; the advance, if any, stays on record.
func (s *BookingService) Cancel(bookingID uint) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("booking_not_found")
			}
			return err
		}
		if booking.Status != models.BookingStatusBooked {
			return errors.New("not_booked")
		}

		if err := tx.Model(&booking).Update("status", models.BookingStatusCancelled).Error; err != nil {
			return err
		}
		if booking.RoomID != nil {
			if err := tx.Model(&models.Room{}).
				Where("id = ?", *booking.RoomID).
				Update("status", models.RoomStatusAvailable).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	ctx := context.Background()
	s.Notifier.Publish(ctx, "bookings", ChangeUpdate, bookingID, nil)
	s.Notifier.Publish(ctx, "rooms", ChangeUpdate, nil, nil)
	return nil
}
