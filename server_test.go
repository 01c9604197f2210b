package main

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestOriginChecker(t *testing.T) {
	check := originChecker("https://games.example.com")

	r := httptest.NewRequest("GET", "/ws", nil)
	assert.True(t, check(r), "no Origin header passes")

	r.Header.Set("Origin", "https://games.example.com")
	assert.True(t, check(r))

	r.Header.Set("Origin", "https://evil.example.com")
	assert.False(t, check(r))
	assert.True(t, originChecker("*")(r), "wildcard admits anything")
}

func TestUnknownCommandsShareMetricLabel(t *testing.T) {
	s := newTestServer()
	c := &Client{ID: "a"}

	before := testutil.ToFloat64(metricCommands.WithLabelValues("unknown"))
	s.dispatch(c, "drop_table", []byte(`{}`))
	s.dispatch(c, "fuzz0001", []byte(`{}`))
	assert.Equal(t, before+2, testutil.ToFloat64(metricCommands.WithLabelValues("unknown")))
}
