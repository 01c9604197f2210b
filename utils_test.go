package main

import (
	"math/rand"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeRoomID(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	seen := map[string]bool{}

	for i := 0; i < 100; i++ {
		id := makeRoomID(rng)
		assert.Len(t, id, roomIDLength)
		for _, r := range id {
			ok := (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
			assert.True(t, ok, "unexpected character %q in %s", r, id)
		}
		seen[id] = true
	}
	assert.Greater(t, len(seen), 90, "ids should rarely collide")
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest("GET", "/ws", nil)
	r.RemoteAddr = "10.0.0.9:51234"
	assert.Equal(t, "10.0.0.9", clientIP(r))

	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", clientIP(r))
}

func TestTrimName(t *testing.T) {
	assert.Equal(t, "alice", trimName("  alice "))
	assert.Equal(t, "", trimName("   "))
	long := strings.Repeat("x", 40)
	assert.Len(t, trimName(long), 30)
}
