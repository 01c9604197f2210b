package main

import (
	"math/rand"
	"net"
	"net/http"
	"strings"
)

const roomIDLength = 6

// makeRoomID builds a 6-character uppercase alphanumeric room code.
func makeRoomID(rng *rand.Rand) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	b := make([]byte, roomIDLength)
	for i := range b {
		b[i] = charset[rng.Intn(len(charset))]
	}
	return string(b)
}

// clientIP prefers the forwarded-for header (the server usually sits
// behind a reverse proxy) and falls back to the peer address.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func trimName(name string) string {
	name = strings.TrimSpace(name)
	if len(name) > 30 {
		name = name[:30]
	}
	return name
}
