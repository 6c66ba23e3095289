package flash

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetAndMessage(t *testing.T) {
	s := NewStore(time.Minute)
	assert.Empty(t, s.Message())

	s.Set("saved")
	assert.Equal(t, "saved", s.Message())
}

func TestAutoClear(t *testing.T) {
	s := NewStore(30 * time.Millisecond)

	s.Set("gone soon")
	assert.Equal(t, "gone soon", s.Message())

	assert.Eventually(t, func() bool { return s.Message() == "" },
		time.Second, 5*time.Millisecond)
}

func TestNewerMessageSurvivesOlderTimer(t *testing.T) {
	s := NewStore(60 * time.Millisecond)

	s.Set("A")
	time.Sleep(30 * time.Millisecond)
	s.Set("B")

	// Past A's expiry, before B's: A's timer has fired and must not have
	// cleared B.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, "B", s.Message())

	assert.Eventually(t, func() bool { return s.Message() == "" },
		time.Second, 5*time.Millisecond)
}

func TestClear_IsImmediateAndInvalidatesTimer(t *testing.T) {
	s := NewStore(30 * time.Millisecond)

	s.Set("A")
	s.Clear()
	assert.Empty(t, s.Message())

	// A new message set right after must not be hit by A's old timer.
	s.Set("B")
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, "B", s.Message())
}

func TestZeroTTLFallsBackToDefault(t *testing.T) {
	s := NewStore(0)
	assert.Equal(t, DefaultTTL, s.ttl)
}
