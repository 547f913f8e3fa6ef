package services

import (
	"errors"
	"fmt"
	"strings"

	"resort-backend/models"
	"resort-backend/utils"

	"gorm.io/gorm"
)

type GuestService struct {
	DB       *gorm.DB
	Notifier *Notifier
}

func NewGuestService(db *gorm.DB, notifier *Notifier) *GuestService {
	return &GuestService{DB: db, Notifier: notifier}
}

// FindOrCreateByPhone normalizes the phone number, looks for an existing guest
// with the same normalized phone, and only creates a new row when none is
// found. Best-effort dedupe: there is no uniqueness constraint on phone.
func (s *GuestService) FindOrCreateByPhone(guest *models.Guest) (created bool, err error) {
	guest.Phone = utils.NormalizePhone(guest.Phone)

	if utils.IsNormalizedPhone(guest.Phone) {
		var existing models.Guest
		err := s.DB.Where("phone = ?", guest.Phone).First(&existing).Error
		if err == nil {
			*guest = existing
			return false, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return false, fmt.Errorf("failed to look up guest by phone: %w", err)
		}
	}

	if strings.TrimSpace(guest.FullName) == "" {
		return false, errors.New("guest_name_required")
	}

	if err := s.DB.Create(guest).Error; err != nil {
		return false, fmt.Errorf("failed to create guest: %w", err)
	}
	return true, nil
}

func (s *GuestService) Create(guest *models.Guest) error {
	guest.Phone = utils.NormalizePhone(guest.Phone)
	return s.DB.Create(guest).Error
}

func (s *GuestService) GetAll() ([]models.Guest, error) {
	var guests []models.Guest
	err := s.DB.Order("id DESC").Find(&guests).Error
	return guests, err
}

func (s *GuestService) GetByID(id uint) (*models.Guest, error) {
	var guest models.Guest
	if err := s.DB.Preload("Bookings").First(&guest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("guest_not_found")
		}
		return nil, err
	}
	return &guest, nil
}

// SearchByPhone matches on the normalized form so "+91 98765..." and
// "098765..." find the same guest.
func (s *GuestService) SearchByPhone(raw string) ([]models.Guest, error) {
	phone := utils.NormalizePhone(raw)
	var guests []models.Guest
	err := s.DB.Where("phone = ?", phone).Order("id DESC").Find(&guests).Error
	return guests, err
}

func (s *GuestService) Update(id uint, updates map[string]interface{}) (*models.Guest, error) {
	if raw, ok := updates["phone"].(string); ok {
		updates["phone"] = utils.NormalizePhone(raw)
	}

	var guest models.Guest
	if err := s.DB.First(&guest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("guest_not_found")
		}
		return nil, err
	}

	if err := s.DB.Model(&guest).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update guest: %w", err)
	}
	return &guest, nil
}

func (s *GuestService) Delete(id uint) error {
	return s.DB.Delete(&models.Guest{}, id).Error
}
