package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJoinLimiter(t *testing.T) {
	l := newJoinLimiter(3, time.Minute)
	now := time.Now()

	assert.True(t, l.allow("1.2.3.4", now))
	assert.True(t, l.allow("1.2.3.4", now))
	assert.True(t, l.allow("1.2.3.4", now))
	assert.False(t, l.allow("1.2.3.4", now), "fourth join inside the window")

	assert.True(t, l.allow("5.6.7.8", now), "other IPs have their own bucket")
}

func TestJoinLimiterWindowResets(t *testing.T) {
	l := newJoinLimiter(1, time.Minute)
	now := time.Now()

	assert.True(t, l.allow("1.2.3.4", now))
	assert.False(t, l.allow("1.2.3.4", now.Add(30*time.Second)))
	assert.True(t, l.allow("1.2.3.4", now.Add(61*time.Second)))
}

func TestJoinLimiterPrunes(t *testing.T) {
	l := newJoinLimiter(1, time.Minute)
	now := time.Now()

	l.allow("1.2.3.4", now)
	l.allow("5.6.7.8", now)
	assert.Len(t, l.seen, 2)

	l.allow("9.9.9.9", now.Add(2*time.Minute))
	assert.Len(t, l.seen, 1, "expired buckets are dropped")
}
