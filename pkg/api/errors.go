package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/arogya-labs/aushadhi/pkg/store"
)

// mapStoreError maps storage-layer errors to HTTP error responses.
func mapStoreError(err error) *echo.HTTPError {
	if errors.Is(err, store.ErrMedicineNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "medicine not found")
	}
	if errors.Is(err, store.ErrPatientNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	}
	var oos *store.OutOfStockError
	if errors.As(err, &oos) {
		return echo.NewHTTPError(http.StatusConflict, oos.Error())
	}

	slog.Error("unexpected storage error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
