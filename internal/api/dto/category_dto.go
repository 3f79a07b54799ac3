package dto

// CategoryCreateDTO 新建/重命名分类
type CategoryCreateDTO struct {
	Name string `json:"name" validate:"required,min=2,max=50"`
}

// CategoryDTO 分类
type CategoryDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
