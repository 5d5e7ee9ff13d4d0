package testutil

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bmh201708/ResearchPilot/internal/model"
)

// UserOption 用户fixture选项
type UserOption func(*model.User)

func WithEmail(email string) UserOption {
	return func(u *model.User) {
		u.Email = email
		u.AuthProvider = model.AuthProviderEmail
	}
}

func WithOpenID(openID string) UserOption {
	return func(u *model.User) {
		u.OpenID = openID
		u.AuthProvider = model.AuthProviderWechat
	}
}

func WithNickname(nickname string) UserOption {
	return func(u *model.User) { u.Nickname = nickname }
}

func WithPasswordHash(hash string) UserOption {
	return func(u *model.User) { u.PasswordHash = hash }
}

// CreateUser 写入一个测试用户
func CreateUser(t *testing.T, db *gorm.DB, opts ...UserOption) *model.User {
	t.Helper()

	user := &model.User{
		ID:           uuid.NewString(),
		Nickname:     "测试用户",
		AuthProvider: model.AuthProviderWechat,
		OpenID:       uuid.NewString(),
	}
	for _, opt := range opts {
		opt(user)
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// PaperOption 论文fixture选项
type PaperOption func(*model.Paper)

func WithTitle(title string) PaperOption {
	return func(p *model.Paper) { p.Title = title }
}

func WithPublishedAt(date string) PaperOption {
	return func(p *model.Paper) { p.PublishedAt = date }
}

// CreatePaper 写入一篇测试论文
func CreatePaper(t *testing.T, db *gorm.DB, opts ...PaperOption) *model.Paper {
	t.Helper()

	paper := &model.Paper{
		ID:          "oa:W" + uuid.NewString()[:8],
		Title:       "A Study of Retrieval Augmented Generation",
		Authors:     model.StringArray{"Alice", "Bob"},
		Abstract:    "We study retrieval augmented generation.",
		PublishedAt: "2026-01-15",
		Tags:        model.StringArray{"NLP"},
	}
	for _, opt := range opts {
		opt(paper)
	}
	require.NoError(t, db.Create(paper).Error)
	return paper
}

// CreateComment 写入一条测试评论
func CreateComment(t *testing.T, db *gorm.DB, userID, paperID, content string) *model.Comment {
	t.Helper()

	comment := &model.Comment{
		ID:      uuid.NewString(),
		PaperID: paperID,
		UserID:  userID,
		Content: content,
		Status:  model.CommentStatusVisible,
	}
	require.NoError(t, db.Create(comment).Error)
	return comment
}
