package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ada/pkg/ledger/serviceImp"
)

type LedgerCtrl struct{ svc *serviceImp.LedgerSvc }

func New(svc *serviceImp.LedgerSvc) *LedgerCtrl { return &LedgerCtrl{svc: svc} }

func (h *LedgerCtrl) List(c echo.Context) error {
	entries, err := h.svc.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *LedgerCtrl) Export(c echo.Context) error {
	if c.QueryParam("format") == "xlsx" {
		b, err := h.svc.ExportXLSX()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="ledger.xlsx"`)
		return c.Blob(http.StatusOK,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", b)
	}

	b, err := h.svc.ExportJSON()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSONBlob(http.StatusOK, b)
}
