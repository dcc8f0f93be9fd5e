package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ada/entities"
	"ada/pkg/item/repository"
)

type ItemCtrl struct{ repo repository.ItemRepository }

func New(repo repository.ItemRepository) *ItemCtrl { return &ItemCtrl{repo: repo} }

func (h *ItemCtrl) List(c echo.Context) error {
	status := entities.ItemStatus(c.QueryParam("status"))
	kind := entities.ItemKind(c.QueryParam("kind"))
	items, err := h.repo.List(status, kind)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ItemCtrl) Patch(c echo.Context) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	status := entities.ItemStatus(body.Status)
	switch status {
	case entities.ItemPending, entities.ItemInProgress, entities.ItemCompleted, entities.ItemCancelled:
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown status"})
	}

	item, err := h.repo.FindByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "item not found"})
	}
	item.SetStatus(status)
	if err := h.repo.Save(item); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, item)
}

func (h *ItemCtrl) Delete(c echo.Context) error {
	if err := h.repo.Delete(c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
