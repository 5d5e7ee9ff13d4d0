package review

import (
	"context"
	"log"

	"github.com/bmh201708/ResearchPilot/internal/pkg/apperr"
)

const failureFallbackMessage = "review_simulation_failed"

// TextExtractor 稿件抽取步骤
type TextExtractor interface {
	Extract(input *ExtractInput) (*Manuscript, error)
}

// Reviewer 评审生成步骤
type Reviewer interface {
	Generate(ctx context.Context, manuscriptText string) (*Result, error)
}

// ProgressNotifier 任务状态变更通知（WebSocket推送用），可为nil
type ProgressNotifier interface {
	Notify(userID string, task *Task)
}

// Runner 驱动单个任务从PENDING跑到终态
type Runner struct {
	registry  *Registry
	extractor TextExtractor
	reviewer  Reviewer
	notifier  ProgressNotifier
}

func NewRunner(registry *Registry, extractor TextExtractor, reviewer Reviewer, notifier ProgressNotifier) *Runner {
	return &Runner{
		registry:  registry,
		extractor: extractor,
		reviewer:  reviewer,
		notifier:  notifier,
	}
}

// Run 异步执行任务。RUNNING在发起I/O前同步落表；
// 任何失败写FAILED与对外错误信息，成功写DONE与结果。
func (r *Runner) Run(task *Task, input *ExtractInput) {
	r.registry.SetRunning(task.TaskID)
	r.notify(task.UserID, task.TaskID)

	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("评审任务 %s panic: %v", task.TaskID, rec)
				r.registry.SetFailed(task.TaskID, failureFallbackMessage)
				r.notify(task.UserID, task.TaskID)
			}
		}()

		ctx := context.Background()
		result, err := r.execute(ctx, input)
		if err != nil {
			r.registry.SetFailed(task.TaskID, publicMessage(err))
			r.notify(task.UserID, task.TaskID)
			return
		}
		r.registry.SetDone(task.TaskID, result)
		r.notify(task.UserID, task.TaskID)
	}()
}

// RunSync 同步执行抽取+生成，错误原样向上传递
func (r *Runner) RunSync(ctx context.Context, input *ExtractInput) (*Result, *Manuscript, error) {
	manuscript, err := r.extractor.Extract(input)
	if err != nil {
		return nil, nil, err
	}
	result, err := r.reviewer.Generate(ctx, manuscript.Text)
	if err != nil {
		return nil, nil, err
	}
	return result, manuscript, nil
}

func (r *Runner) execute(ctx context.Context, input *ExtractInput) (*Result, error) {
	manuscript, err := r.extractor.Extract(input)
	if err != nil {
		return nil, err
	}
	return r.reviewer.Generate(ctx, manuscript.Text)
}

func (r *Runner) notify(userID, taskID string) {
	if r.notifier == nil {
		return
	}
	if snapshot := r.registry.Get(taskID); snapshot != nil {
		r.notifier.Notify(userID, snapshot)
	}
}

// publicMessage 只对外暴露机器可读的错误码，内部错误统一兜底
func publicMessage(err error) string {
	if ae, ok := err.(*apperr.Error); ok {
		return ae.Message
	}
	return failureFallbackMessage
}
