package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gameserver_connections",
		Help: "Open websocket connections.",
	})
	metricRooms = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gameserver_rooms",
		Help: "Live rooms.",
	})
	metricCommands = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gameserver_commands_total",
		Help: "Inbound commands by type.",
	}, []string{"command"})
	metricRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gameserver_rejections_total",
		Help: "Commands rejected back to the sender.",
	})
)
