package model

import "time"

// Mission 科研任务（用于个人主页统计）
type Mission struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID    string    `gorm:"type:varchar(36);not null;index" json:"userId"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Status    string    `gorm:"type:varchar(16);default:ACTIVE" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Mission) TableName() string {
	return "missions"
}

// MissionTask 任务下的子任务
type MissionTask struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	MissionID string    `gorm:"type:varchar(36);not null;index" json:"missionId"`
	UserID    string    `gorm:"type:varchar(36);not null;index" json:"userId"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Done      bool      `gorm:"default:false" json:"done"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (MissionTask) TableName() string {
	return "mission_tasks"
}

// UserBadge 用户获得的徽章
type UserBadge struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"-"`
	UserID    string    `gorm:"type:varchar(36);not null;uniqueIndex:uk_user_badge" json:"userId"`
	Badge     string    `gorm:"type:varchar(64);not null;uniqueIndex:uk_user_badge" json:"badge"`
	CreatedAt time.Time `json:"createdAt"`
}

func (UserBadge) TableName() string {
	return "user_badges"
}
