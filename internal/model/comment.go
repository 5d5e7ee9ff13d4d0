package model

import "time"

const CommentStatusVisible = "VISIBLE"

// Comment 论文评论，like_count 为冗余计数
type Comment struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	PaperID   string    `gorm:"type:varchar(64);not null;index" json:"paperId"`
	UserID    string    `gorm:"type:varchar(36);not null;index" json:"userId"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	LikeCount int       `gorm:"default:0" json:"likeCount"`
	Status    string    `gorm:"type:varchar(16);default:VISIBLE" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

func (Comment) TableName() string {
	return "comments"
}

// CommentLike 评论点赞记录
type CommentLike struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"-"`
	CommentID string    `gorm:"type:varchar(36);not null;uniqueIndex:uk_comment_user_like" json:"commentId"`
	UserID    string    `gorm:"type:varchar(36);not null;uniqueIndex:uk_comment_user_like" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}
