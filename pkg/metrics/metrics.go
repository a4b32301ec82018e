// Package metrics exposes engagement counters on /metrics.
package metrics

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	LikesToggled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_likes_toggled_total",
		Help: "Like toggles, by target type and resulting action.",
	}, []string{"target_type", "action"})

	CommentsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_comments_created_total",
		Help: "Comments created, by target type.",
	}, []string{"target_type"})

	NotificationsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_notifications_created_total",
		Help: "Notifications created, by type.",
	}, []string{"type"})
)

// Handler serves the prometheus registry through Echo.
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
