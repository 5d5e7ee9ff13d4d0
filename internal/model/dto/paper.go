package dto

import "github.com/bmh201708/ResearchPilot/internal/model"

// FeedRequest 论文feed查询参数
type FeedRequest struct {
	Keywords string `form:"keywords"`
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"pageSize,default=10"`
}

// FeedResponse 一页feed结果
type FeedResponse struct {
	Papers   []*model.Paper `json:"papers"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
	Source   string         `json:"source"`
}

// PaperDetailResponse 论文详情
type PaperDetailResponse struct {
	Paper    *model.Paper        `json:"paper"`
	Summary  *model.PaperSummary `json:"summary,omitempty"`
	Action   string              `json:"action,omitempty"`
	Liked    bool                `json:"liked"`
	Comments int64               `json:"comments"`
}

// PaperActionRequest 论文动作请求
type PaperActionRequest struct {
	Action string `json:"action" binding:"required,oneof=PASS MARK READ"`
}

// LikeResponse 点赞切换结果
type LikeResponse struct {
	Liked bool `json:"liked"`
}

// LikedPapersResponse 点赞论文分页
type LikedPapersResponse struct {
	Papers   []*model.Paper `json:"papers"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
}
