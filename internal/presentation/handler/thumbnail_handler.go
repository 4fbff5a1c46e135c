package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"photovault/internal/application/usecase/abstraction"
	"photovault/internal/presentation"
)

type ThumbnailHandler struct {
	thumbnailer abstraction.Thumbnailer
	defaultSize int
}

func NewThumbnailHandler(thumbnailer abstraction.Thumbnailer, defaultSize int) *ThumbnailHandler {
	return &ThumbnailHandler{
		thumbnailer: thumbnailer,
		defaultSize: defaultSize,
	}
}

// HandleThumbnail handles GET /photos/:id/thumbnail requests.
func (h *ThumbnailHandler) HandleThumbnail(c echo.Context) error {
	id := c.Param(presentation.IDParam)
	if id == "" {
		c.Response().Header().Set(presentation.ReasonTag, "missing photo id")

		return c.NoContent(http.StatusBadRequest)
	}

	size, err := h.parseSize(c)
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(http.StatusBadRequest)
	}

	download, err := h.thumbnailer.GetThumbnail(c.Request().Context(), id, size)
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(statusFromError(err))
	}
	defer download.Body.Close()

	setBlobHeaders(c, fmt.Sprintf("%s-%d", id, size), download.Size, download.Filename)

	return c.Stream(http.StatusOK, download.ContentType, download.Body)
}

func (h *ThumbnailHandler) parseSize(c echo.Context) (int, error) {
	s := c.QueryParam(presentation.SizeQuery)
	if s == "" {
		return h.defaultSize, nil
	}

	size, err := strconv.Atoi(s)
	if err != nil || size <= 0 {
		return 0, fmt.Errorf("invalid thumbnail size %q", s)
	}

	return size, nil
}
