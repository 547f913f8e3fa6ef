package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"resort-backend/controllers"
	"resort-backend/middleware"
	"resort-backend/services"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// Deps bundles everything the router needs.
type Deps struct {
	Log *logrus.Logger

	Guests    *controllers.GuestController
	Bookings  *controllers.BookingController
	KOT       *controllers.KOTController
	Leaves    *controllers.LeaveController
	Vendors   *controllers.VendorController
	Inventory *controllers.InventoryController
	Ledger    *controllers.LedgerController
	Revenue   *controllers.RevenueController
	Reports   *controllers.ReportController
	Audit     *controllers.AuditController
	Realtime  *controllers.RealtimeController

	AuditService *services.AuditService
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(d.Log))

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot", controllers.ForgotPassword)
	}

	// Everything below requires a session. Successful writes are audited.
	secured := api.Group("")
	secured.Use(middleware.RequireAuth())
	secured.Use(middleware.AuditTrail(d.AuditService))
	{
		guests := secured.Group("/guests")
		{
			guests.GET("", d.Guests.GetGuests)
			guests.GET("/:id", d.Guests.GetGuestByID)
			guests.POST("", d.Guests.CreateGuest)
			guests.PUT("/:id", d.Guests.UpdateGuest)
			guests.DELETE("/:id", d.Guests.DeleteGuest)
		}

		bookings := secured.Group("/bookings")
		{
			bookings.GET("", d.Bookings.GetBookings)
			bookings.POST("", d.Bookings.CreateBooking)
			bookings.GET("/:id", d.Bookings.GetBookingDetails)
			bookings.POST("/:id/checkin", d.Bookings.CheckIn)
			bookings.POST("/:id/checkout", d.Bookings.Checkout)
			bookings.POST("/:id/cancel", d.Bookings.CancelBooking)
		}

		rooms := secured.Group("/rooms")
		{
			rooms.GET("", controllers.GetRooms)
			rooms.POST("", controllers.CreateRoom)
			rooms.PATCH("/:id", controllers.UpdateRoom)
			rooms.PUT("/:id", controllers.UpdateRoom)
			rooms.DELETE("/:id", controllers.DeleteRoom)
		}

		roomTypes := secured.Group("/room-types")
		{
			roomTypes.GET("", controllers.GetRoomTypes)
			roomTypes.POST("", controllers.CreateRoomType)
			roomTypes.DELETE("/:id", controllers.DeleteRoomType)
		}

		kot := secured.Group("/kot")
		{
			kot.GET("/orders", d.KOT.ListOrders)
			kot.POST("/orders", d.KOT.CreateOrder)
			kot.GET("/orders/:id", d.KOT.GetOrder)
			kot.POST("/orders/:id/items", d.KOT.AddItems)
			kot.POST("/orders/:id/close", d.KOT.CloseOrder)
			kot.POST("/orders/:id/cancel", d.KOT.CancelOrder)
			kot.GET("/orders/:id/bill", d.KOT.GetBill)
			kot.GET("/orders/:id/receipt", d.KOT.PrintReceipt)
		}

		staff := secured.Group("/staff")
		{
			staff.GET("", controllers.GetStaff)
			staff.POST("", controllers.CreateStaff)
			staff.PUT("/:id", controllers.UpdateStaff)
			staff.DELETE("/:id", controllers.DeleteStaff)
		}

		leaves := secured.Group("/leaves")
		{
			leaves.GET("", d.Leaves.GetLeaves)
			leaves.POST("", d.Leaves.CreateLeave)
			leaves.GET("/:id", d.Leaves.GetLeave)
			leaves.POST("/:id/hr-approve", middleware.RequireRoles("hr", "owner"), d.Leaves.HRApprove)
			leaves.POST("/:id/approve", middleware.RequireRoles("manager", "owner"), d.Leaves.Approve)
			leaves.POST("/:id/reject", middleware.RequireRoles("hr", "manager", "owner"), d.Leaves.Reject)
		}

		vendors := secured.Group("/vendors")
		{
			vendors.GET("", d.Vendors.GetVendors)
			vendors.POST("", d.Vendors.CreateVendor)
			vendors.GET("/:id", d.Vendors.GetVendor)
			vendors.POST("/:id/bills", d.Vendors.CreateBill)
			vendors.GET("/:id/ledger", d.Vendors.GetLedger)
			vendors.POST("/bills/:billId/payments", d.Vendors.RecordPayment)
			vendors.GET("/bills/:billId/payments", d.Vendors.GetBillPayments)
		}

		inventory := secured.Group("/inventory")
		{
			inventory.GET("", d.Inventory.GetItems)
			inventory.POST("", d.Inventory.CreateItem)
			inventory.GET("/low-stock", d.Inventory.LowStock)
			inventory.GET("/:id", d.Inventory.GetItem)
			inventory.POST("/:id/adjust", d.Inventory.AdjustStock)
		}

		purchases := secured.Group("/purchase-requests")
		{
			purchases.GET("", d.Inventory.ListPurchaseRequests)
			purchases.POST("", d.Inventory.CreatePurchaseRequest)
			purchases.PUT("/:id/status", middleware.RequireRoles("manager", "owner"), d.Inventory.UpdatePurchaseStatus)
		}

		accounts := secured.Group("/accounts")
		{
			accounts.POST("", d.Revenue.CreateEntry)
			accounts.GET("/revenue", d.Revenue.GetRevenue)
			accounts.GET("/summary", d.Revenue.GetSummary)
		}

		events := secured.Group("/events")
		{
			events.GET("", d.Revenue.GetEventBookings)
			events.POST("", d.Revenue.CreateEventBooking)
		}

		ledger := secured.Group("/ledger")
		{
			ledger.GET("/accounts", d.Ledger.GetChart)
			ledger.GET("/transactions", d.Ledger.ListTransactions)
			ledger.POST("/transactions", d.Ledger.PostTransaction)
			ledger.GET("/balances", d.Ledger.GetBalances)
			ledger.POST("/reset", middleware.RequireRoles("owner"), d.Ledger.Reset)
		}

		reports := secured.Group("/reports")
		{
			reports.GET("/dashboard", d.Reports.Dashboard)
			reports.GET("/restaurant-sales.xlsx", middleware.RequireRoles("manager", "owner"), d.Reports.RestaurantSalesExport)
		}

		auditLogs := secured.Group("/audit-logs")
		auditLogs.Use(middleware.RequireRoles("owner", "manager"))
		{
			auditLogs.GET("", d.Audit.GetAuditLogs)
		}

		secured.GET("/stream/:table", d.Realtime.Stream)

		roles := secured.Group("/roles")
		roles.Use(middleware.RequireRoles("owner"))
		{
			roles.GET("", controllers.GetRoles)
			roles.PUT("/:id/permissions", controllers.UpdateRolePermissions)
			roles.POST("/:id/members", controllers.AddRoleMember)
			roles.DELETE("/:id/members/:adminId", controllers.RemoveRoleMember)
		}

		admins := secured.Group("/admins")
		admins.Use(middleware.RequireRoles("owner"))
		{
			admins.GET("", controllers.GetAdmins)
			admins.POST("", controllers.CreateAdmin)
			admins.DELETE("/:id", controllers.DeleteAdmin)
		}

		settings := secured.Group("/settings")
		{
			settings.GET("/resort", controllers.GetResortSettings)
			settings.PUT("/resort", middleware.RequireRoles("owner", "manager"), controllers.UpdateResortSettings)
		}
	}

	return r
}
