package controllers

import "net/http"

// statusForError maps service sentinel errors onto HTTP status codes. Anything
// not listed is treated as an internal failure.
func statusForError(err error) int {
	switch err.Error() {
	case "guest_not_found", "booking_not_found", "room_not_found",
		"order_not_found", "bill_not_found", "leave_not_found",
		"vendor_not_found", "item_not_found", "purchase_request_not_found",
		"staff_not_found":
		return http.StatusNotFound
	case "room_not_available", "not_booked", "not_checked_in",
		"order_not_open", "invalid_status_transition", "insufficient_stock":
		return http.StatusConflict
	case "guest_name_required", "advance_below_minimum", "order_empty",
		"invalid_days", "invalid_quantity", "invalid_date_format",
		"invalid_ifsc", "invalid_upi", "invalid_amount",
		"unknown_debit_account", "unknown_credit_account",
		"same_account_both_legs", "invalid_bill_total", "invalid_payment_amount":
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
