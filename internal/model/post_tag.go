package model

// PostTag 帖子标签关联，复合主键保证 (post, tag) 唯一
type PostTag struct {
	PostID uint64 `gorm:"primaryKey" json:"post_id"`
	TagID  uint64 `gorm:"primaryKey;index:idx_tag_id" json:"tag_id"`
}

func (PostTag) TableName() string {
	return "post_tags"
}
