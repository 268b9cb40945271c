package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/bqviet86/cmict-server/internal/apperror"
	"github.com/bqviet86/cmict-server/internal/model"
)

const multipartMemory = 32 << 20

// multipartFiles открывает все файлы поля field. closeAll нужно вызвать после загрузки
func multipartFiles(r *http.Request, field string) (files []model.UploadFile, closeAll func(), err error) {
	closeAll = func() {}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return nil, closeAll, apperror.ValidationField(field, "multipart form is required")
	}

	headers := r.MultipartForm.File[field]
	opened := make([]multipart.File, 0, len(headers))
	closeAll = func() {
		for _, f := range opened {
			_ = f.Close()
		}
		_ = r.MultipartForm.RemoveAll()
	}

	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		opened = append(opened, f)

		files = append(files, model.UploadFile{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Content:     f,
		})
	}

	return files, closeAll, nil
}
