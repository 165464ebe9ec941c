package main

import (
	"net/http"

	"github.com/Bester1/hoenders-sub000/internal/catalog"

	"github.com/labstack/echo/v4"
)

func registerCatalogRoutes(g *echo.Group) {
	p := g.Group("/products")

	// full price list
	p.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, catalog.All())
	})

	// single product
	p.GET("/:key", func(c echo.Context) error {
		prod, ok := catalog.Get(c.Param("key"))
		if !ok {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "product not found"})
		}
		return c.JSON(http.StatusOK, prod)
	})
}
