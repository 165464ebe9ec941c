package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Bester1/hoenders-sub000/internal/middleware"
	"github.com/Bester1/hoenders-sub000/internal/model"
	"github.com/Bester1/hoenders-sub000/internal/repository"
	"github.com/Bester1/hoenders-sub000/internal/services"

	"github.com/labstack/echo/v4"
)

type checkoutRequest struct {
	Customer model.Customer `json:"customer"`
}

type statusRequest struct {
	Status string `json:"status"`
}

func registerOrderRoutes(g *echo.Group, osvc *services.OrderService, local *repository.OrderLocalRepository, remote *repository.OrderRemoteRepository) {
	p := g.Group("/orders")

	// CHECKOUT the cart held for customerid
	p.POST("/checkout/:customerid", func(c echo.Context) error {
		req := new(checkoutRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		order, err := osvc.Submit(c.Request().Context(), c.Param("customerid"), req.Customer)
		if err != nil {
			var verr *services.ValidationError
			if errors.As(err, &verr) {
				return c.JSON(http.StatusBadRequest, echo.Map{
					"error":  "order validation failed",
					"errors": verr.Errors,
				})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, order)
	})

	// GET one order from the local log (portal confirmation page)
	p.GET("/:ordernumber", func(c echo.Context) error {
		order, err := local.GetOrder(c.Param("ordernumber"))
		if err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, order)
	})

	// admin dashboard
	admin := g.Group("/admin/orders")
	admin.Use(
		middleware.JWTMiddleware(),
		middleware.AdminOnly,
	)

	// LIST recent order rows from the remote store
	admin.GET("", func(c echo.Context) error {
		limit, _ := strconv.Atoi(c.QueryParam("limit"))
		rows, err := remote.ListRecentOrders(c.Request().Context(), limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, rows)
	})

	// GET every row of one order
	admin.GET("/:ordernumber", func(c echo.Context) error {
		rows, err := remote.GetOrderRows(c.Request().Context(), c.Param("ordernumber"))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		if len(rows) == 0 {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "order not found"})
		}
		return c.JSON(http.StatusOK, rows)
	})

	// MOVE an order's status forward
	admin.PATCH("/:ordernumber/status", func(c echo.Context) error {
		req := new(statusRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		status := model.OrderStatus(req.Status)
		if !model.ValidStatus(status) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown status"})
		}
		if err := remote.UpdateOrderStatus(c.Request().Context(), c.Param("ordernumber"), status); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
	})
}
