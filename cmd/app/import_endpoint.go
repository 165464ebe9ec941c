package main

import (
	"io"
	"net/http"

	"github.com/Bester1/hoenders-sub000/internal/middleware"
	"github.com/Bester1/hoenders-sub000/internal/model"
	"github.com/Bester1/hoenders-sub000/internal/services"

	"github.com/labstack/echo/v4"
)

type commitImportRequest struct {
	Lines []model.ImportedOrderLine `json:"lines"`
}

func registerImportRoutes(g *echo.Group, is *services.ImportService, osvc *services.OrderService) {
	p := g.Group("/admin/import")
	p.Use(
		middleware.JWTMiddleware(),
		middleware.AdminOnly,
	)

	// PARSE a CSV export (body is the raw file)
	p.POST("/csv", func(c echo.Context) error {
		raw, err := io.ReadAll(c.Request().Body)
		if err != nil || len(raw) == 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "empty upload"})
		}
		result, err := is.IngestCSV(string(raw))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, result)
	})

	// PARSE OCR text from a scanned order sheet
	p.POST("/text", func(c echo.Context) error {
		raw, err := io.ReadAll(c.Request().Body)
		if err != nil || len(raw) == 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "empty upload"})
		}
		result, err := is.IngestText(string(raw))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, result)
	})

	// COMMIT previously parsed lines as orders
	p.POST("/commit", func(c echo.Context) error {
		req := new(commitImportRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		orders, err := osvc.SubmitImported(c.Request().Context(), req.Lines)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error(), "orders": orders})
		}
		return c.JSON(http.StatusCreated, echo.Map{"orders": orders})
	})
}
