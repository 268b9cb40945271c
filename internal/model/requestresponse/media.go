package requestresponse

import "github.com/bqviet86/cmict-server/internal/model"

type UploadImageResponse struct {
	Message string        `json:"message" example:"Upload image success"`
	Result  []model.Media `json:"result"`
}
