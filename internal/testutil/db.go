package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bmh201708/ResearchPilot/internal/model"
)

// NewTestDB 创建内存sqlite并迁移全部表
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.User{},
		&model.Paper{},
		&model.PaperSummary{},
		&model.PaperAction{},
		&model.PaperLike{},
		&model.Comment{},
		&model.CommentLike{},
		&model.ProjectDeadline{},
		&model.Mission{},
		&model.MissionTask{},
		&model.UserBadge{},
	)
	require.NoError(t, err)

	return db
}
