package dto

// UpdateProfileRequest 更新个人资料请求，nil 字段不修改
type UpdateProfileRequest struct {
	Nickname     *string `json:"nickname"`
	AvatarURL    *string `json:"avatarUrl"`
	FieldOfStudy *string `json:"fieldOfStudy"`
}

// DashboardResponse 个人主页统计
type DashboardResponse struct {
	ReadPapers    int64 `json:"readPapers"`
	MarkedPapers  int64 `json:"markedPapers"`
	LikedPapers   int64 `json:"likedPapers"`
	Comments      int64 `json:"comments"`
	Missions      int64 `json:"missions"`
	DoneTasks     int64 `json:"doneTasks"`
	PendingTasks  int64 `json:"pendingTasks"`
	Badges        int64 `json:"badges"`
	Conferences   int64 `json:"conferences"`
}
