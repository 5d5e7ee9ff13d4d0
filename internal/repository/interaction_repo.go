package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bmh201708/ResearchPilot/internal/model"
)

// InteractionRepository 用户与论文的动作/点赞互动
type InteractionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) *InteractionRepository {
	return &InteractionRepository{db: db}
}

// UpsertAction 记录用户对论文的最新动作（一人一篇一条）
func (r *InteractionRepository) UpsertAction(action *model.PaperAction) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "paper_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"action", "updated_at"}),
	}).Create(action).Error
}

// GetAction 查询用户对某论文的动作
func (r *InteractionRepository) GetAction(userID, paperID string) (*model.PaperAction, error) {
	var action model.PaperAction
	err := r.db.Where("user_id = ? AND paper_id = ?", userID, paperID).First(&action).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &action, nil
}

// LikeExists 检查点赞是否存在
func (r *InteractionRepository) LikeExists(userID, paperID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.PaperLike{}).
		Where("user_id = ? AND paper_id = ?", userID, paperID).
		Count(&count).Error
	return count > 0, err
}

// CreateLike 点赞
func (r *InteractionRepository) CreateLike(like *model.PaperLike) error {
	return r.db.Create(like).Error
}

// DeleteLike 取消点赞
func (r *InteractionRepository) DeleteLike(userID, paperID string) error {
	return r.db.Where("user_id = ? AND paper_id = ?", userID, paperID).
		Delete(&model.PaperLike{}).Error
}

// GetUserLikedPaperIDs 获取用户点赞的论文ID分页（按点赞时间倒序）
func (r *InteractionRepository) GetUserLikedPaperIDs(userID string, page, pageSize int) ([]string, int64, error) {
	var total int64
	var ids []string

	query := r.db.Model(&model.PaperLike{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Pluck("paper_id", &ids).Error
	return ids, total, err
}

// CountActionsByType 统计用户某类动作数量
func (r *InteractionRepository) CountActionsByType(userID, actionType string) (int64, error) {
	var count int64
	err := r.db.Model(&model.PaperAction{}).
		Where("user_id = ? AND action = ?", userID, actionType).
		Count(&count).Error
	return count, err
}

// CountLikes 统计用户点赞总数
func (r *InteractionRepository) CountLikes(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.PaperLike{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
