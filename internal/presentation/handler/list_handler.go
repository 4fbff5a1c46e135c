package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"photovault/internal/application/usecase/abstraction"
	"photovault/internal/domain/dto"
	"photovault/internal/presentation"
)

type ListHandler struct {
	lister abstraction.Lister
}

func NewListHandler(lister abstraction.Lister) *ListHandler {
	return &ListHandler{
		lister: lister,
	}
}

// HandleVisitPhotos handles GET /visits/:visitId/photos requests.
func (h *ListHandler) HandleVisitPhotos(c echo.Context) error {
	visitID := c.Param(presentation.VisitIDParam)
	if visitID == "" {
		c.Response().Header().Set(presentation.ReasonTag, "missing visit id")

		return c.NoContent(http.StatusBadRequest)
	}

	ids, err := h.lister.FindPhotoIDsForVisit(c.Request().Context(), visitID)
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(statusFromError(err))
	}

	return c.JSON(http.StatusOK, dto.PhotoIDsResponse{IDs: ids})
}

// HandleExists handles POST /photos/exists requests: the owning aggregate
// sends every photo id it still references and gets back the live subset.
func (h *ListHandler) HandleExists(c echo.Context) error {
	var req dto.ExistsRequest
	if err := c.Bind(&req); err != nil {
		c.Response().Header().Set(presentation.ReasonTag, "malformed request body")

		return c.NoContent(http.StatusBadRequest)
	}

	existing, err := h.lister.ExistsMany(c.Request().Context(), req.IDs)
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(statusFromError(err))
	}

	resp := dto.ExistsResponse{Existing: make([]string, 0, len(existing))}
	for _, id := range req.IDs {
		if _, ok := existing[id]; ok {
			resp.Existing = append(resp.Existing, id)
			delete(existing, id)
		}
	}

	return c.JSON(http.StatusOK, resp)
}
