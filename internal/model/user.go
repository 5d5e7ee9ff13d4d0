package model

import "time"

const (
	AuthProviderWechat = "WECHAT"
	AuthProviderEmail  = "EMAIL"
)

// User 用户，支持微信与邮箱两种注册来源
type User struct {
	ID                         string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	OpenID                     string    `gorm:"type:varchar(64);index" json:"-"`
	Email                      string    `gorm:"type:varchar(255);index" json:"email,omitempty"`
	PasswordHash               string    `gorm:"type:varchar(255)" json:"-"`
	Nickname                   string    `gorm:"type:varchar(64)" json:"nickname"`
	AvatarURL                  string    `gorm:"type:varchar(512)" json:"avatarUrl"`
	AuthProvider               string    `gorm:"type:varchar(16);not null" json:"authProvider"`
	FieldOfStudy               string    `gorm:"type:varchar(128)" json:"fieldOfStudy"`
	ProjectDefaultsInitialized bool      `gorm:"default:false" json:"-"`
	CreatedAt                  time.Time `json:"createdAt"`
	UpdatedAt                  time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
