package dto

import "time"

// CreateCommentRequest 发表评论请求
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

// CommentItem 评论列表项，带作者信息与当前用户点赞状态
type CommentItem struct {
	ID             string    `json:"id"`
	PaperID        string    `json:"paperId"`
	Content        string    `json:"content"`
	LikeCount      int       `json:"likeCount"`
	LikedByMe      bool      `json:"likedByMe"`
	AuthorID       string    `json:"authorId"`
	AuthorNickname string    `json:"authorNickname"`
	AuthorAvatar   string    `json:"authorAvatar"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CommentListResponse 评论分页
type CommentListResponse struct {
	Comments []*CommentItem `json:"comments"`
	Total    int64          `json:"total"`
}

// CommentLikeResponse 评论点赞切换结果
type CommentLikeResponse struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"likeCount"`
}
