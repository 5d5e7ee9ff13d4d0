package review

import "time"

// 任务状态机：PENDING → RUNNING → DONE | FAILED
const (
	StatusPending = "PENDING"
	StatusRunning = "RUNNING"
	StatusDone    = "DONE"
	StatusFailed  = "FAILED"
)

// Task 评审模拟任务，仅存于进程内存，进程重启后丢失
type Task struct {
	TaskID    string
	UserID    string
	FileName  string
	MimeType  string
	Extension string
	FileURL   string
	Status    string
	Error     string
	Review    *Result
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Result 归一化后的评审结论，字段恒为非nil/已填充
type Result struct {
	Decision    string   `json:"decision"`
	Score       float64  `json:"score"`
	Summary     string   `json:"summary"`
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	Suggestions []string `json:"suggestions"`
}

// Manuscript 抽取后的稿件文本
type Manuscript struct {
	Text      string
	Extension string
}
