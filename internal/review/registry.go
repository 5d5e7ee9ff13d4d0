package review

import (
	"sync"
	"time"
)

// Registry 进程内任务表。每次创建前淘汰超过TTL未更新的任务；
// 淘汰只是遗忘记录，不会中断还在执行的goroutine。
type Registry struct {
	mu    sync.RWMutex
	tasks map[string]*Task
	ttl   time.Duration
	now   func() time.Time
}

func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		tasks: make(map[string]*Task),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Create 登记新任务，先清理过期任务
func (r *Registry) Create(task *Task) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for id, t := range r.tasks {
		if now.Sub(t.UpdatedAt) > r.ttl {
			delete(r.tasks, id)
		}
	}

	task.CreatedAt = now
	task.UpdatedAt = now
	r.tasks[task.TaskID] = task
}

// Get 返回任务快照；不存在返回nil
func (r *Registry) Get(taskID string) *Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[taskID]
	if !ok {
		return nil
	}
	snapshot := *t
	return &snapshot
}

// SetRunning 标记任务开始执行
func (r *Registry) SetRunning(taskID string) {
	r.update(taskID, func(t *Task) {
		t.Status = StatusRunning
	})
}

// SetDone 写入评审结果并置为DONE
func (r *Registry) SetDone(taskID string, result *Result) {
	r.update(taskID, func(t *Task) {
		t.Status = StatusDone
		t.Review = result
		t.Error = ""
	})
}

// SetFailed 写入错误信息并置为FAILED
func (r *Registry) SetFailed(taskID string, errMsg string) {
	r.update(taskID, func(t *Task) {
		t.Status = StatusFailed
		t.Error = errMsg
	})
}

func (r *Registry) update(taskID string, fn func(*Task)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[taskID]
	if !ok {
		return
	}
	fn(t)
	t.UpdatedAt = r.now()
}
