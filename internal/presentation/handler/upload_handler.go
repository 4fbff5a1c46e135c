package handler

import (
	"mime/multipart"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"photovault/internal/application/usecase/abstraction"
	"photovault/internal/domain/dto"
	"photovault/internal/domain/entity"
	"photovault/internal/presentation"
)

type UploadHandler struct {
	uploader abstraction.Uploader
}

func NewUploadHandler(uploader abstraction.Uploader) *UploadHandler {
	return &UploadHandler{
		uploader: uploader,
	}
}

// HandleSingle handles POST /photos requests.
func (h *UploadHandler) HandleSingle(c echo.Context) error {
	placeID, visitID, ok := ownerFields(c)
	if !ok {
		c.Response().Header().Set(presentation.ReasonTag, "missing place_id or visit_id")

		return c.NoContent(http.StatusBadRequest)
	}

	fileHeader, err := c.FormFile(presentation.FileField)
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, "missing file")

		return c.NoContent(http.StatusBadRequest)
	}

	upload, closeFn, err := openUpload(fileHeader)
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(http.StatusBadRequest)
	}
	defer closeFn()

	id, err := h.uploader.SaveOne(c.Request().Context(), upload, placeID, visitID)
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(statusFromError(err))
	}

	return c.JSON(http.StatusCreated, dto.PhotoDescriptor{
		ID:          id,
		Filename:    upload.Filename,
		ContentType: upload.ContentType,
		Size:        upload.Size,
		PlaceID:     placeID,
		VisitID:     visitID,
		Uploaded:    time.Now().Unix(),
	})
}

// HandleBatch handles POST /photos/batch requests. The whole batch succeeds
// or none of it does.
func (h *UploadHandler) HandleBatch(c echo.Context) error {
	placeID, visitID, ok := ownerFields(c)
	if !ok {
		c.Response().Header().Set(presentation.ReasonTag, "missing place_id or visit_id")

		return c.NoContent(http.StatusBadRequest)
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, "malformed multipart form")

		return c.NoContent(http.StatusBadRequest)
	}

	fileHeaders := form.File[presentation.FilesField]
	if len(fileHeaders) == 0 {
		c.Response().Header().Set(presentation.ReasonTag, "no files in batch")

		return c.NoContent(http.StatusBadRequest)
	}

	uploads := make([]*entity.FileUpload, 0, len(fileHeaders))
	for _, fileHeader := range fileHeaders {
		upload, closeFn, err := openUpload(fileHeader)
		if err != nil {
			c.Response().Header().Set(presentation.ReasonTag, err.Error())

			return c.NoContent(http.StatusBadRequest)
		}
		defer closeFn()

		uploads = append(uploads, upload)
	}

	ids, err := h.uploader.SaveMany(c.Request().Context(), uploads, placeID, visitID)
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(statusFromError(err))
	}

	return c.JSON(http.StatusCreated, dto.BatchUploadResponse{IDs: ids})
}

func ownerFields(c echo.Context) (placeID, visitID string, ok bool) {
	placeID = c.FormValue(presentation.PlaceIDField)
	visitID = c.FormValue(presentation.VisitIDField)

	return placeID, visitID, placeID != "" && visitID != ""
}

func openUpload(fileHeader *multipart.FileHeader) (*entity.FileUpload, func(), error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, nil, err
	}

	upload := &entity.FileUpload{
		Body:        file,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Filename:    fileHeader.Filename,
	}

	return upload, func() { _ = file.Close() }, nil
}
