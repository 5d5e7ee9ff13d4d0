package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/bmh201708/ResearchPilot/internal/model"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create 创建评论
func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

// GetByID 按ID查询可见评论，不存在返回nil
func (r *CommentRepository) GetByID(id string) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.Where("id = ? AND status = ?", id, model.CommentStatusVisible).First(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByPaper 论文下的可见评论，按时间倒序
func (r *CommentRepository) ListByPaper(paperID string, page, pageSize int) ([]*model.Comment, int64, error) {
	var total int64
	query := r.db.Model(&model.Comment{}).
		Where("paper_id = ? AND status = ?", paperID, model.CommentStatusVisible)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []*model.Comment
	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&comments).Error
	return comments, total, err
}

// CountByPaper 论文的可见评论数
func (r *CommentRepository) CountByPaper(paperID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Comment{}).
		Where("paper_id = ? AND status = ?", paperID, model.CommentStatusVisible).
		Count(&count).Error
	return count, err
}

// CountByUser 用户发表的评论数
func (r *CommentRepository) CountByUser(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Comment{}).
		Where("user_id = ? AND status = ?", userID, model.CommentStatusVisible).
		Count(&count).Error
	return count, err
}

// LikedCommentIDs 用户在给定评论集合中点过赞的评论ID
func (r *CommentRepository) LikedCommentIDs(userID string, commentIDs []string) (map[string]bool, error) {
	liked := make(map[string]bool)
	if len(commentIDs) == 0 {
		return liked, nil
	}
	var ids []string
	err := r.db.Model(&model.CommentLike{}).
		Where("user_id = ? AND comment_id IN ?", userID, commentIDs).
		Pluck("comment_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

// ToggleLike 在事务中切换点赞并同步冗余计数，返回切换后的状态与计数
func (r *CommentRepository) ToggleLike(userID, commentID string) (bool, int, error) {
	var liked bool
	var likeCount int

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var comment model.Comment
		if err := tx.Where("id = ? AND status = ?", commentID, model.CommentStatusVisible).
			First(&comment).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&model.CommentLike{}).
			Where("comment_id = ? AND user_id = ?", commentID, userID).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			if err := tx.Where("comment_id = ? AND user_id = ?", commentID, userID).
				Delete(&model.CommentLike{}).Error; err != nil {
				return err
			}
			if err := tx.Model(&model.Comment{}).Where("id = ? AND like_count > 0", commentID).
				UpdateColumn("like_count", gorm.Expr("like_count - 1")).Error; err != nil {
				return err
			}
			liked = false
		} else {
			if err := tx.Create(&model.CommentLike{CommentID: commentID, UserID: userID}).Error; err != nil {
				return err
			}
			if err := tx.Model(&model.Comment{}).Where("id = ?", commentID).
				UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error; err != nil {
				return err
			}
			liked = true
		}

		var updated model.Comment
		if err := tx.Select("like_count").Where("id = ?", commentID).First(&updated).Error; err != nil {
			return err
		}
		likeCount = updated.LikeCount
		return nil
	})

	return liked, likeCount, err
}
