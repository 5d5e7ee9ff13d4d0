package service

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmh201708/ResearchPilot/internal/model/dto"
	"github.com/bmh201708/ResearchPilot/internal/repository"
	"github.com/bmh201708/ResearchPilot/internal/testutil"
)

func newProjectService(t *testing.T) (*ProjectService, string) {
	t.Helper()
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db)
	return NewProjectService(repository.NewProjectRepository(db), repository.NewUserRepository(db)), user.ID
}

func TestProjectListSeedsDefaultsOnce(t *testing.T) {
	svc, userID := newProjectService(t)

	deadlines, err := svc.List(userID)
	require.NoError(t, err)
	require.Len(t, deadlines, 5)

	abbrs := make(map[string]bool)
	for _, d := range deadlines {
		abbrs[d.Abbr] = true
	}
	for _, want := range []string{"CVPR", "NeurIPS", "CHI", "ICLR", "AAAI"} {
		assert.True(t, abbrs[want], "缺少默认会议 %s", want)
	}

	// 再次访问不会重复播种
	again, err := svc.List(userID)
	require.NoError(t, err)
	assert.Len(t, again, 5)
}

func TestProjectCRUD(t *testing.T) {
	svc, userID := newProjectService(t)

	// 触发播种
	_, err := svc.List(userID)
	require.NoError(t, err)

	created, err := svc.Create(userID, &dto.CreateConferenceRequest{
		Abbr:       "ACL",
		FullName:   "Annual Meeting of the ACL",
		Deadline:   "2027-02-15",
		ColorTheme: "blue",
	})
	require.NoError(t, err)
	assert.Equal(t, "ACL", created.Abbr)
	assert.Equal(t, 0, created.Progress)

	newProgress := 150
	updated, err := svc.Update(userID, created.ID, &dto.UpdateConferenceRequest{
		Progress: &newProgress,
	})
	require.NoError(t, err)
	assert.Equal(t, 100, updated.Progress) // 夹到[0,100]

	badTheme := "pink"
	_, err = svc.Update(userID, created.ID, &dto.UpdateConferenceRequest{ColorTheme: &badTheme})
	assertAppErr(t, err, http.StatusBadRequest, "invalid_color_theme")

	require.NoError(t, svc.Delete(userID, created.ID))
	err = svc.Delete(userID, created.ID)
	assertAppErr(t, err, http.StatusNotFound, "conference_not_found")

	_, err = svc.Update(userID, created.ID, &dto.UpdateConferenceRequest{})
	assertAppErr(t, err, http.StatusNotFound, "conference_not_found")
}

func TestProjectCreateInvalidTheme(t *testing.T) {
	svc, userID := newProjectService(t)

	_, err := svc.Create(userID, &dto.CreateConferenceRequest{
		Abbr:       "ACL",
		Deadline:   "2027-02-15",
		ColorTheme: "pink",
	})
	assertAppErr(t, err, http.StatusBadRequest, "invalid_color_theme")
}
