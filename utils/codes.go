package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateSecureToken returns a hex token (length = bytes).
func GenerateSecureToken(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("invalid token length")
	}
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func shortCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

// BookingReference e.g. "BK-3F2A91BC"
func BookingReference() string {
	return "BK-" + shortCode()
}

// KOTOrderNumber e.g. "KOT-20260828-1A2B3C4D"
func KOTOrderNumber() string {
	return fmt.Sprintf("KOT-%s-%s", time.Now().Format("20060102"), shortCode())
}

// KOTBillNumber e.g. "BILL-20260828-1A2B3C4D"
func KOTBillNumber() string {
	return fmt.Sprintf("BILL-%s-%s", time.Now().Format("20060102"), shortCode())
}
