package model

import "time"

// ProjectDeadline 用户的会议投稿截止日
type ProjectDeadline struct {
	ID         string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID     string    `gorm:"type:varchar(36);not null;uniqueIndex:uk_user_conf_deadline" json:"userId"`
	Abbr       string    `gorm:"type:varchar(32);not null;uniqueIndex:uk_user_conf_deadline" json:"abbr"`
	FullName   string    `gorm:"type:varchar(255)" json:"fullName"`
	Location   string    `gorm:"type:varchar(128)" json:"location"`
	StartDate  string    `gorm:"type:varchar(10)" json:"startDate,omitempty"`
	Deadline   string    `gorm:"type:varchar(10);not null;uniqueIndex:uk_user_conf_deadline" json:"deadline"`
	Progress   int       `gorm:"default:0" json:"progress"`
	Note       string    `gorm:"type:varchar(512)" json:"note"`
	ColorTheme string    `gorm:"type:varchar(16);default:green" json:"colorTheme"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (ProjectDeadline) TableName() string {
	return "project_deadlines"
}

// ColorThemes 可用的卡片配色
var ColorThemes = []string{"green", "purple", "yellow", "blue", "orange"}

func IsValidColorTheme(theme string) bool {
	for _, t := range ColorThemes {
		if t == theme {
			return true
		}
	}
	return false
}
