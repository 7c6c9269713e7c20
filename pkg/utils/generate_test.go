package utils

import (
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNumericID_StrictlyIncreasing(t *testing.T) {
	prev := GenerateNumericID(0)
	for i := 0; i < 1000; i++ {
		next := GenerateNumericID(0)
		require.Greater(t, next, prev)
		prev = next
	}
}

func TestGenerateNumericID_RespectsFloor(t *testing.T) {
	floor := time.Now().Add(24 * time.Hour).UnixMilli()
	assert.Equal(t, floor+1, GenerateNumericID(floor))
}

func TestGenerateNumericID_ConcurrentUnique(t *testing.T) {
	var (
		mu   sync.Mutex
		seen = make(map[int64]bool)
		wg   sync.WaitGroup
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				id := GenerateNumericID(0)
				mu.Lock()
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Len(t, seen, 16*50)
}

func TestGeneratePaymentID_Format(t *testing.T) {
	now := time.Date(2024, 3, 9, 7, 5, 2, 0, time.UTC)
	id := GeneratePaymentID(now)
	assert.Regexp(t, regexp.MustCompile(`^PAY-20240309-070502-\d{4}$`), id)
}

func TestGenerateTimeOrderedID_IsV7(t *testing.T) {
	id, err := uuid.Parse(GenerateTimeOrderedID())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}
