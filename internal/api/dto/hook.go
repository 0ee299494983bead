package dto

// EngagementHookDTO Directus Flow 回调，collection 为发生变化的集合，keys 为变化的主键
type EngagementHookDTO struct {
	Event      string `json:"event" binding:"required" validate:"oneof=items.create items.update items.delete"`
	Collection string `json:"collection" binding:"required"`
	Keys       []any  `json:"keys"`
}
