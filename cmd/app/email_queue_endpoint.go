package main

import (
	"net/http"
	"time"

	"github.com/Bester1/hoenders-sub000/internal/middleware"
	"github.com/Bester1/hoenders-sub000/internal/repository"
	"github.com/Bester1/hoenders-sub000/internal/services"

	"github.com/labstack/echo/v4"
)

type retryRequest struct {
	MaxAttempts int `json:"maxAttempts,omitempty"`
	BaseDelayMs int `json:"baseDelayMs,omitempty"`
}

func registerEmailQueueRoutes(g *echo.Group, queue *repository.EmailQueueRepository, osvc *services.OrderService) {
	p := g.Group("/admin/email-queue")
	p.Use(
		middleware.JWTMiddleware(),
		middleware.AdminOnly,
	)

	// LIST queue entries, newest first
	p.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, queue.List())
	})

	// RETRY the newest failed notification for an order
	p.POST("/:ordernumber/retry", func(c echo.Context) error {
		req := new(retryRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		err := osvc.RetryNotification(
			c.Request().Context(),
			c.Param("ordernumber"),
			req.MaxAttempts,
			time.Duration(req.BaseDelayMs)*time.Millisecond,
		)
		if err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "sent"})
	})
}
