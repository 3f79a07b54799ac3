package dto

// MediaUploadDTO 上传结果
type MediaUploadDTO struct {
	ObjectName string `json:"object_name"`
	URL        string `json:"url"`
}
