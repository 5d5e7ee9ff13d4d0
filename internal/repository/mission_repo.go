package repository

import (
	"gorm.io/gorm"

	"github.com/bmh201708/ResearchPilot/internal/model"
)

// MissionRepository 科研任务与徽章的统计查询（个人主页用）
type MissionRepository struct {
	db *gorm.DB
}

func NewMissionRepository(db *gorm.DB) *MissionRepository {
	return &MissionRepository{db: db}
}

// CountMissions 用户的任务总数
func (r *MissionRepository) CountMissions(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Mission{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// CountTasks 用户的子任务数，按完成状态区分
func (r *MissionRepository) CountTasks(userID string, done bool) (int64, error) {
	var count int64
	err := r.db.Model(&model.MissionTask{}).
		Where("user_id = ? AND done = ?", userID, done).
		Count(&count).Error
	return count, err
}

// CountBadges 用户的徽章数
func (r *MissionRepository) CountBadges(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.UserBadge{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
