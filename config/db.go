package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"resort-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "resort_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order
	if err := DB.AutoMigrate(
		&models.Admin{},
		&models.ResortSetting{},
		&models.Role{},
		&models.RolePermission{},
		&models.RoleMember{},
		&models.RoomType{},
		&models.Room{},
		&models.Guest{},
		&models.Booking{},
		&models.Payment{},
		&models.AccountEntry{},
		&models.EventBooking{},
		&models.KOTOrder{},
		&models.KOTItem{},
		&models.KOTBill{},
		&models.Vendor{},
		&models.VendorBill{},
		&models.VendorPayment{},
		&models.InventoryItem{},
		&models.PurchaseRequest{},
		&models.Staff{},
		&models.LeaveRequest{},
		&models.AuditLog{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}

func SeedDatabase() {
	seedAdmin()
	seedRoomTypes()
	seedRoles()
}

func seedAdmin() {
	var adminCount int64
	DB.Model(&models.Admin{}).Count(&adminCount)
	if adminCount > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(envOrDefault("ADMIN_DEFAULT_PASSWORD", "admin123")), bcrypt.DefaultCost)
	if err != nil {
		GetLogger().WithError(err).Warn("failed to hash default admin password")
		return
	}
	admin := models.Admin{
		FullName: "Admin User",
		Username: "admin@resort.local",
		Password: string(hash),
	}
	if err := DB.Create(&admin).Error; err != nil {
		GetLogger().WithError(err).Warn("failed to create default admin")
		return
	}
	GetLogger().Info("Default admin seeded")
}

func seedRoomTypes() {
	var rtCount int64
	DB.Model(&models.RoomType{}).Count(&rtCount)
	if rtCount > 0 {
		return
	}

	roomTypes := []models.RoomType{
		{TypeName: "Standard", Description: "Standard Room", MaxGuests: 2},
		{TypeName: "Superior", Description: "Superior Room", MaxGuests: 3},
		{TypeName: "Deluxe", Description: "Deluxe Room", MaxGuests: 4},
		{TypeName: "Cottage", Description: "Garden Cottage", MaxGuests: 5},
	}
	DB.Create(&roomTypes)
	GetLogger().Info("RoomTypes seeded")
}

func seedRoles() {
	desiredRoles := []models.Role{
		{Name: "owner", Description: "System owner with full access"},
		{Name: "manager", Description: "Manager with elevated access"},
		{Name: "frontdesk", Description: "Front desk operations"},
		{Name: "hr", Description: "HR and payroll operations"},
		{Name: "kitchen", Description: "Kitchen order tickets"},
	}

	allPerms := []string{
		"bookingManagement.view",
		"bookingManagement.create",
		"bookingManagement.edit",
		"bookingManagement.delete",
		"roomManagement.view",
		"roomManagement.create",
		"roomManagement.edit",
		"roomManagement.editStatus",
		"accounts.view",
		"accounts.create",
		"accounts.export",
		"kot.view",
		"kot.create",
		"kot.close",
		"kot.cancel",
		"inventory.view",
		"inventory.edit",
		"vendorManagement.view",
		"vendorManagement.create",
		"vendorManagement.pay",
		"leaveManagement.view",
		"leaveManagement.approve",
		"auditLog.view",
		"rolesAndPermissions.view",
		"rolesAndPermissions.edit",
	}

	rolesByKey := map[string]models.Role{}
	for i := range desiredRoles {
		role := desiredRoles[i]
		key := strings.ToLower(role.Name)

		var existing models.Role
		err := DB.Where("LOWER(name) = ?", key).First(&existing).Error
		if err == nil && existing.ID != 0 {
			rolesByKey[key] = existing
			continue
		}

		if err := DB.Create(&role).Error; err != nil {
			GetLogger().WithError(err).Warnf("failed to create role %s", role.Name)
			continue
		}
		rolesByKey[key] = role
	}

	ownerRole, ok := rolesByKey["owner"]
	if !ok || ownerRole.ID == 0 {
		return
	}

	var permCount int64
	DB.Model(&models.RolePermission{}).Where("role_id = ?", ownerRole.ID).Count(&permCount)
	if permCount == 0 {
		perms := make([]models.RolePermission, 0, len(allPerms))
		for _, p := range allPerms {
			perms = append(perms, models.RolePermission{RoleID: ownerRole.ID, Permission: p})
		}
		if err := DB.Create(&perms).Error; err != nil {
			GetLogger().WithError(err).Warn("failed to create owner permissions")
		}
	}

	var memberCount int64
	DB.Model(&models.RoleMember{}).Where("role_id = ?", ownerRole.ID).Count(&memberCount)
	if memberCount == 0 {
		var admins []models.Admin
		DB.Find(&admins)
		members := make([]models.RoleMember, 0, len(admins))
		for _, admin := range admins {
			members = append(members, models.RoleMember{RoleID: ownerRole.ID, AdminID: admin.ID})
		}
		if len(members) > 0 {
			if err := DB.Create(&members).Error; err != nil {
				GetLogger().WithError(err).Warn("failed to assign admins to owner role")
			}
		}
	}

	GetLogger().Info("Roles ensured")
}
