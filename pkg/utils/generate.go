package utils

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ==================== UUID & TOKEN ====================

func GenerateUUIDString() string {
	return uuid.NewString()
}

func GenerateSessionToken() string {
	return uuid.NewString()
}

// GenerateTimeOrderedID returns a UUIDv7, whose leading bits are a
// millisecond timestamp, so ids sort by creation time.
func GenerateTimeOrderedID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// ==================== NUMERIC ID ====================

var (
	numericMu   sync.Mutex
	lastNumeric int64
)

// GenerateNumericID returns the current unix time in milliseconds, bumped
// so that it is strictly greater than both floor and every earlier result.
func GenerateNumericID(floor int64) int64 {
	numericMu.Lock()
	defer numericMu.Unlock()

	id := time.Now().UnixMilli()
	if id <= lastNumeric {
		id = lastNumeric + 1
	}
	if id <= floor {
		id = floor + 1
	}
	lastNumeric = id
	return id
}

// ==================== PAYMENT ID ====================

// GeneratePaymentID formats PAY-YYYYMMDD-HHMMSS-NNNN.
func GeneratePaymentID(now time.Time) string {
	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%04d", rand.Intn(10000))

	return fmt.Sprintf("PAY-%s-%s-%s", datePart, timePart, randomPart)
}
