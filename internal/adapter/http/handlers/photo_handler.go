package handlers

import (
	"errors"
	"net/http"

	request "servicevale/internal/adapter/http/dto/request"
	response "servicevale/internal/adapter/http/dto/response"
	"servicevale/internal/usecase"
	"servicevale/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPhotoPayload = pkg.NewDomainErrorSimple("INVALID_PHOTO_INPUT", "Invalid photo upload", http.StatusBadRequest)

// PhotoHandler handles the before/after work-photo flow.

type PhotoHandler struct {
	usecase usecase.IPhotoSetUseCase
}

func NewPhotoHandler(uc usecase.IPhotoSetUseCase) *PhotoHandler {
	return &PhotoHandler{usecase: uc}
}

// Upload receives one side of a photo set as a multipart form. The image
// travels in the "photo" file part.
func (h *PhotoHandler) Upload(c *gin.Context) {
	var payload request.UploadPhotoRequest
	if err := c.ShouldBind(&payload); err != nil {
		c.JSON(errInvalidPhotoPayload.HTTPStatus, errInvalidPhotoPayload.ToHTTPError())
		return
	}

	header, err := c.FormFile("photo")
	if err != nil {
		c.JSON(errInvalidPhotoPayload.HTTPStatus, errInvalidPhotoPayload.ToHTTPError())
		return
	}
	file, err := header.Open()
	if err != nil {
		appErr := mapPhotoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer file.Close()

	view, err := h.usecase.Upload(c.Request.Context(), usecase.UploadPhotoInput{
		SetID:        payload.SetID,
		Side:         payload.Side,
		ContentType:  header.Header.Get("Content-Type"),
		Body:         file,
		EngineerName: payload.EngineerName,
		Notes:        payload.Notes,
	})
	if err != nil {
		appErr := mapPhotoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPhotoSet(view))
}

func (h *PhotoHandler) List(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapPhotoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPhotoSets(items))
}

// Delete runs the destructive save-and-remove flow: both image objects are
// deleted first, then the document.
func (h *PhotoHandler) Delete(c *gin.Context) {
	if err := h.usecase.SaveAndRemove(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapPhotoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapPhotoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPhotoSetID), errors.Is(err, usecase.ErrInvalidPhotoSide):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPhotoSideTaken):
		return pkg.NewDomainErrorSimple("PHOTO_SIDE_TAKEN", "This side of the photo set is already uploaded", http.StatusConflict)
	case errors.Is(err, usecase.ErrPhotoSetNotFound):
		return pkg.NewDomainErrorSimple("PHOTO_SET_NOT_FOUND", "Photo set not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
