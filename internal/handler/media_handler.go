package handler

import (
	"net/http"

	"github.com/bqviet86/cmict-server/internal/model/requestresponse"
	"github.com/bqviet86/cmict-server/internal/ports"
	"github.com/bqviet86/cmict-server/internal/util"
)

const imageFormField = "image"

type MediaHandler struct {
	mediaService ports.MediaService
}

func NewMediaHandler(mediaService ports.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// UploadImage godoc
// @Summary Загрузка картинок в S3
// @Tags Medias
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Картинки, несколько полей image"
// @Success 200 {object} requestresponse.UploadImageResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security BearerAuth
// @Router /medias/upload-image [post]
func (h *MediaHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	files, closeAll, err := multipartFiles(r, imageFormField)
	defer closeAll()
	if err != nil {
		util.WriteError(w, err)
		return
	}

	media, err := h.mediaService.UploadImages(r.Context(), files)
	if err != nil {
		util.WriteError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.UploadImageResponse{Message: msgUploadImageSuccess, Result: media})
}
