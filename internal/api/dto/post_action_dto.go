package dto

// ToggleResultDTO 点赞/收藏切换结果；计数为切换后实时重算值
type ToggleResultDTO struct {
	Action    string `json:"action"` // liked / unliked / saved / unsaved
	LikeCount int64  `json:"like_count,omitempty"`
}
