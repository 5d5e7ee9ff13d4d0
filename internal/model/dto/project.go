package dto

// CreateConferenceRequest 新增会议截止日请求
type CreateConferenceRequest struct {
	Abbr       string `json:"abbr" binding:"required"`
	FullName   string `json:"fullName"`
	Location   string `json:"location"`
	StartDate  string `json:"startDate"`
	Deadline   string `json:"deadline" binding:"required"`
	Progress   *int   `json:"progress"`
	Note       string `json:"note"`
	ColorTheme string `json:"colorTheme"`
}

// UpdateConferenceRequest 更新会议截止日请求，nil 字段不修改
type UpdateConferenceRequest struct {
	Abbr       *string `json:"abbr"`
	FullName   *string `json:"fullName"`
	Location   *string `json:"location"`
	StartDate  *string `json:"startDate"`
	Deadline   *string `json:"deadline"`
	Progress   *int    `json:"progress"`
	Note       *string `json:"note"`
	ColorTheme *string `json:"colorTheme"`
}
