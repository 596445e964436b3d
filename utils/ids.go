package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"
	"time"
)

const refCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// GenerateSecureToken returns a hex token of the given byte length.
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

// randomSuffix returns n chars from refCharset using crypto/rand with
// rand.Int to avoid modulo bias.
func randomSuffix(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid length")
	}
	var sb strings.Builder
	alphaLen := big.NewInt(int64(len(refCharset)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(refCharset[num.Int64()])
	}
	return sb.String(), nil
}

// GenerateBookingReference builds a booking id like "BK-20240810-7KQ2":
// date stamp plus a random suffix.
func GenerateBookingReference(t time.Time) (string, error) {
	suffix, err := randomSuffix(4)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("BK-%s-%s", t.Format("20060102"), suffix), nil
}

// GenerateMaintenanceCode builds a request code like "MR-20240810-X3F9".
func GenerateMaintenanceCode(t time.Time) (string, error) {
	suffix, err := randomSuffix(4)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("MR-%s-%s", t.Format("20060102"), suffix), nil
}

// GeneratePaymentReference builds the budget-entry reference for a recorded
// rent payment, e.g. "PAY-20240810-B41C".
func GeneratePaymentReference(t time.Time) (string, error) {
	suffix, err := randomSuffix(4)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("PAY-%s-%s", t.Format("20060102"), suffix), nil
}

// GenerateBudgetReference builds a generic budget-entry reference,
// e.g. "BGT-20240810-K2P7".
func GenerateBudgetReference(t time.Time) (string, error) {
	suffix, err := randomSuffix(4)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("BGT-%s-%s", t.Format("20060102"), suffix), nil
}

// BuildReceiptRef builds the human-facing receipt string from the tenant's
// first name, the room number and the payment date, e.g. "RCP-JOH-101-0810".
// Not guaranteed globally unique; the payment reference is.
func BuildReceiptRef(firstName, roomNumber string, t time.Time) string {
	name := strings.ToUpper(strings.TrimSpace(firstName))
	if len(name) > 3 {
		name = name[:3]
	}
	if name == "" {
		name = "TEN"
	}
	room := strings.ToUpper(strings.TrimSpace(roomNumber))
	if room == "" {
		room = "NA"
	}
	return fmt.Sprintf("RCP-%s-%s-%s", name, room, t.Format("0102"))
}

// PtrTime returns pointer to time.Time.
func PtrTime(t time.Time) *time.Time { return &t }
