package model

import "io"

type MediaType string

const MediaTypeImage MediaType = "image"

type Media struct {
	URL  string    `json:"url"`
	Type MediaType `json:"type"`
}

// UploadFile : файл из multipart запроса
type UploadFile struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}
