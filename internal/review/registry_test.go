package review

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryCreateAndGet(t *testing.T) {
	r := NewRegistry(2 * time.Hour)

	r.Create(&Task{TaskID: "t1", UserID: "u1", Status: StatusPending})

	task := r.Get("t1")
	require.NotNil(t, task)
	assert.Equal(t, StatusPending, task.Status)
	assert.False(t, task.CreatedAt.IsZero())

	assert.Nil(t, r.Get("missing"))
}

func TestRegistryGetReturnsSnapshot(t *testing.T) {
	r := NewRegistry(2 * time.Hour)
	r.Create(&Task{TaskID: "t1", Status: StatusPending})

	snapshot := r.Get("t1")
	snapshot.Status = "TAMPERED"

	assert.Equal(t, StatusPending, r.Get("t1").Status)
}

func TestRegistryPurgeOnCreate(t *testing.T) {
	r := NewRegistry(2 * time.Hour)

	base := time.Now()
	r.now = func() time.Time { return base }
	r.Create(&Task{TaskID: "old", Status: StatusDone})

	// 未超TTL不清理
	r.now = func() time.Time { return base.Add(1 * time.Hour) }
	r.Create(&Task{TaskID: "mid", Status: StatusPending})
	require.NotNil(t, r.Get("old"))

	// old 超过TTL，mid 未超
	r.now = func() time.Time { return base.Add(3*time.Hour + time.Minute) }
	r.Create(&Task{TaskID: "new", Status: StatusPending})

	assert.Nil(t, r.Get("old"))
	assert.NotNil(t, r.Get("mid"))
	assert.NotNil(t, r.Get("new"))
}

func TestRegistryStatusTransitions(t *testing.T) {
	r := NewRegistry(2 * time.Hour)
	r.Create(&Task{TaskID: "t1", Status: StatusPending})
	created := r.Get("t1").UpdatedAt

	r.SetRunning("t1")
	assert.Equal(t, StatusRunning, r.Get("t1").Status)

	result := &Result{Decision: DecisionAccept, Score: 8}
	r.SetDone("t1", result)
	done := r.Get("t1")
	assert.Equal(t, StatusDone, done.Status)
	assert.Equal(t, result, done.Review)
	assert.Empty(t, done.Error)
	assert.True(t, !done.UpdatedAt.Before(created))

	r.SetFailed("t1", "llm_request_failed")
	failed := r.Get("t1")
	assert.Equal(t, StatusFailed, failed.Status)
	assert.Equal(t, "llm_request_failed", failed.Error)

	// 不存在的任务更新应被忽略
	r.SetRunning("missing")
	assert.Nil(t, r.Get("missing"))
}
