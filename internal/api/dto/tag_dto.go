package dto

// TagCreateDTO 新建标签
type TagCreateDTO struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}

// TagDTO 标签
type TagDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
