package service

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bmh201708/ResearchPilot/internal/model"
	"github.com/bmh201708/ResearchPilot/internal/repository"
	"github.com/bmh201708/ResearchPilot/internal/testutil"
)

func newCommentService(t *testing.T) (*CommentService, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	return NewCommentService(repository.NewCommentRepository(db), repository.NewUserRepository(db)), db
}

func TestCommentCreateAndList(t *testing.T) {
	svc, db := newCommentService(t)
	author := testutil.CreateUser(t, db, testutil.WithNickname("作者"))
	viewer := testutil.CreateUser(t, db)
	paper := testutil.CreatePaper(t, db)

	created, err := svc.Create(author.ID, paper.ID, "  很有启发的工作  ")
	require.NoError(t, err)
	assert.Equal(t, "很有启发的工作", created.Content)

	resp, err := svc.List(viewer.ID, paper.ID, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Total)
	require.Len(t, resp.Comments, 1)
	assert.Equal(t, "作者", resp.Comments[0].AuthorNickname)
	assert.False(t, resp.Comments[0].LikedByMe)
}

func TestCommentCreateEmpty(t *testing.T) {
	svc, db := newCommentService(t)
	user := testutil.CreateUser(t, db)

	_, err := svc.Create(user.ID, "oa:W1", "   ")
	assertAppErr(t, err, http.StatusBadRequest, "invalid_payload")
}

func TestCommentToggleLikeUpdatesCount(t *testing.T) {
	svc, db := newCommentService(t)
	author := testutil.CreateUser(t, db)
	liker := testutil.CreateUser(t, db)
	paper := testutil.CreatePaper(t, db)
	comment := testutil.CreateComment(t, db, author.ID, paper.ID, "不错")

	resp, err := svc.ToggleLike(liker.ID, comment.ID)
	require.NoError(t, err)
	assert.True(t, resp.Liked)
	assert.Equal(t, 1, resp.LikeCount)

	// 第二个用户点赞
	resp, err = svc.ToggleLike(author.ID, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.LikeCount)

	// 取消点赞
	resp, err = svc.ToggleLike(liker.ID, comment.ID)
	require.NoError(t, err)
	assert.False(t, resp.Liked)
	assert.Equal(t, 1, resp.LikeCount)

	// 冗余计数与库内一致
	var stored model.Comment
	require.NoError(t, db.First(&stored, "id = ?", comment.ID).Error)
	assert.Equal(t, 1, stored.LikeCount)

	// 列表反映点赞状态
	listResp, err := svc.List(author.ID, paper.ID, 1, 20)
	require.NoError(t, err)
	assert.True(t, listResp.Comments[0].LikedByMe)
}

func TestCommentToggleLikeNotFound(t *testing.T) {
	svc, db := newCommentService(t)
	user := testutil.CreateUser(t, db)

	_, err := svc.ToggleLike(user.ID, "missing")
	assertAppErr(t, err, http.StatusNotFound, "comment_not_found")
}
