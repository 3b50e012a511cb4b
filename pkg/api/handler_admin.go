package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/arogya-labs/aushadhi/ent/medicine"
	"github.com/arogya-labs/aushadhi/pkg/store"
)

// MedicineRequest is the create/update body for admin catalog CRUD.
type MedicineRequest struct {
	Name                 string   `json:"name"`
	Category             string   `json:"category"`
	Price                float64  `json:"price"`
	Stock                int      `json:"stock"`
	RequiresPrescription bool     `json:"requires_prescription"`
	ActiveIngredients    []string `json:"active_ingredients,omitempty"`
	GenericEquivalent    string   `json:"generic_equivalent,omitempty"`
	Contraindications    []string `json:"contraindications,omitempty"`
	Strength             string   `json:"strength,omitempty"`
	DosageForm           string   `json:"dosage_form,omitempty"`
}

func (r MedicineRequest) input() store.MedicineInput {
	return store.MedicineInput{
		Name:                 r.Name,
		Category:             r.Category,
		Price:                r.Price,
		Stock:                r.Stock,
		RequiresPrescription: r.RequiresPrescription,
		ActiveIngredients:    r.ActiveIngredients,
		GenericEquivalent:    r.GenericEquivalent,
		Contraindications:    r.Contraindications,
		Strength:             r.Strength,
		DosageForm:           r.DosageForm,
	}
}

// listMedicinesHandler handles GET /api/v1/admin/medicines.
func (s *Server) listMedicinesHandler(c *echo.Context) error {
	limit := 100
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	q := s.store.Client().Medicine.Query().
		Order(medicine.ByName()).
		Limit(limit)
	if cat := c.QueryParam("category"); cat != "" {
		q = q.Where(medicine.CategoryEqualFold(cat))
	}
	meds, err := q.All(c.Request().Context())
	if err != nil {
		return mapStoreError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{"medicines": meds})
}

// createMedicineHandler handles POST /api/v1/admin/medicines.
func (s *Server) createMedicineHandler(c *echo.Context) error {
	var req MedicineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if req.Price < 0 || req.Stock < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "price and stock must be non-negative")
	}

	med, err := s.store.AddMedicine(c.Request().Context(), req.input())
	if err != nil {
		return mapStoreError(err)
	}
	return c.JSON(http.StatusCreated, med)
}

// updateMedicineHandler handles PUT /api/v1/admin/medicines/:name.
func (s *Server) updateMedicineHandler(c *echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "medicine name is required")
	}

	var req MedicineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	med, err := s.store.UpdateMedicine(c.Request().Context(), name, req.input())
	if err != nil {
		return mapStoreError(err)
	}
	return c.JSON(http.StatusOK, med)
}

// deleteMedicineHandler handles DELETE /api/v1/admin/medicines/:name.
func (s *Server) deleteMedicineHandler(c *echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "medicine name is required")
	}
	if err := s.store.DeleteMedicine(c.Request().Context(), name); err != nil {
		return mapStoreError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
