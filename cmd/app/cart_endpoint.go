package main

import (
	"net/http"

	"github.com/Bester1/hoenders-sub000/internal/services"

	"github.com/labstack/echo/v4"
)

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func registerCartRoutes(g *echo.Group, cs *services.CartService) {
	p := g.Group("/cart")

	// GET cart summary
	p.GET("/:customerid", func(c echo.Context) error {
		return c.JSON(http.StatusOK, cs.Summary(c.Param("customerid")))
	})

	// SET quantity (0 removes, out-of-range clamps to 0)
	p.PUT("/:customerid/items/:productkey", func(c echo.Context) error {
		req := new(setQuantityRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		summary := cs.SetQuantity(c.Param("customerid"), c.Param("productkey"), req.Quantity)
		return c.JSON(http.StatusOK, summary)
	})

	// CLEAR cart
	p.DELETE("/:customerid", func(c echo.Context) error {
		cs.Clear(c.Param("customerid"))
		return c.JSON(http.StatusOK, map[string]string{"message": "cleared"})
	})
}
