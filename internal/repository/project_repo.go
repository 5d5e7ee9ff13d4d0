package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/bmh201708/ResearchPilot/internal/model"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create 创建会议截止日
func (r *ProjectRepository) Create(deadline *model.ProjectDeadline) error {
	return r.db.Create(deadline).Error
}

// CreateBatch 批量创建（默认会议种子）
func (r *ProjectRepository) CreateBatch(deadlines []*model.ProjectDeadline) error {
	if len(deadlines) == 0 {
		return nil
	}
	return r.db.Create(deadlines).Error
}

// GetByID 按ID+用户查询，不存在返回nil
func (r *ProjectRepository) GetByID(userID, id string) (*model.ProjectDeadline, error) {
	var deadline model.ProjectDeadline
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&deadline).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &deadline, nil
}

// ListByUser 用户的全部会议截止日，按截止日期升序
func (r *ProjectRepository) ListByUser(userID string) ([]*model.ProjectDeadline, error) {
	var deadlines []*model.ProjectDeadline
	err := r.db.Where("user_id = ?", userID).Order("deadline ASC").Find(&deadlines).Error
	return deadlines, err
}

// Update 保存全部字段
func (r *ProjectRepository) Update(deadline *model.ProjectDeadline) error {
	return r.db.Save(deadline).Error
}

// Delete 删除用户的某条截止日，返回是否删除了记录
func (r *ProjectRepository) Delete(userID, id string) (bool, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&model.ProjectDeadline{})
	return result.RowsAffected > 0, result.Error
}

// CountByUser 用户的会议数量
func (r *ProjectRepository) CountByUser(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.ProjectDeadline{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
