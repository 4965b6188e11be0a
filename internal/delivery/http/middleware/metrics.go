package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/census-microservice/internal/pkg/metrics"
)

// Metrics - middleware, собирающее счетчики и латентность HTTP-запросов.
// Лейбл route берется из шаблона маршрута, а не из сырого пути, чтобы не
// раздувать кардинальность метрик.
func Metrics(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		route := c.Route().Path
		m.RequestsTotal.WithLabelValues(
			c.Method(), route, strconv.Itoa(c.Response().StatusCode()),
		).Inc()
		m.RequestDuration.WithLabelValues(c.Method(), route).
			Observe(time.Since(start).Seconds())
		return err
	}
}
