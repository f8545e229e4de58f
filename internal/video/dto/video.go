package dto

type UploadVideoRequest struct {
	Title       string  `form:"title" binding:"required"`
	Description string  `form:"description" binding:"required"`
	Duration    float64 `form:"duration"`
}

type UpdateVideoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
