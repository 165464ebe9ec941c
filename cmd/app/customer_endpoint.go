package main

import (
	"net/http"

	"github.com/Bester1/hoenders-sub000/internal/model"
	"github.com/Bester1/hoenders-sub000/internal/services"

	"github.com/labstack/echo/v4"
)

func registerCustomerRoutes(g *echo.Group, cs *services.CustomerService) {
	p := g.Group("/customers")

	// GET delivery profile (empty default when nothing stored)
	p.GET("/:customerid", func(c echo.Context) error {
		return c.JSON(http.StatusOK, cs.Get(c.Param("customerid")))
	})

	// UPDATE delivery profile
	p.PUT("/:customerid", func(c echo.Context) error {
		req := new(model.Customer)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		saved, err := cs.Update(c.Param("customerid"), *req)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, saved)
	})
}
