package model

import "time"

// 用户对论文的处理动作
const (
	PaperActionPass = "PASS"
	PaperActionMark = "MARK"
	PaperActionRead = "READ"
)

// Paper 论文缓存表，id 带来源前缀（如 oa:W2741809807）
type Paper struct {
	ID          string      `gorm:"type:varchar(64);primaryKey" json:"id"`
	ArxivID     string      `gorm:"type:varchar(32);index" json:"arxivId,omitempty"`
	Title       string      `gorm:"type:varchar(512);not null" json:"title"`
	Authors     StringArray `gorm:"type:text" json:"authors"`
	Abstract    string      `gorm:"type:text" json:"abstract"`
	PublishedAt string      `gorm:"type:varchar(10)" json:"publishedAt"`
	Tags        StringArray `gorm:"type:text" json:"tags"`
	CreatedAt   time.Time   `json:"-"`
	UpdatedAt   time.Time   `json:"-"`
}

func (Paper) TableName() string {
	return "papers"
}

// PaperSummary 论文的AI生成摘要（背景/方法/贡献）
type PaperSummary struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"-"`
	PaperID        string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"paperId"`
	SummaryBg      string    `gorm:"type:text" json:"summaryBg"`
	SummaryMethod  string    `gorm:"type:text" json:"summaryMethod"`
	SummaryContrib string    `gorm:"type:text" json:"summaryContrib"`
	ModelName      string    `gorm:"type:varchar(128)" json:"modelName"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`
}

func (PaperSummary) TableName() string {
	return "paper_summaries"
}

// PaperAction 用户对论文的最新动作，一人一篇一条
type PaperAction struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"-"`
	UserID    string    `gorm:"type:varchar(36);not null;uniqueIndex:uk_user_paper_action" json:"userId"`
	PaperID   string    `gorm:"type:varchar(64);not null;uniqueIndex:uk_user_paper_action" json:"paperId"`
	Action    string    `gorm:"type:varchar(8);not null" json:"action"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (PaperAction) TableName() string {
	return "user_paper_actions"
}

// PaperLike 论文点赞记录
type PaperLike struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"-"`
	UserID    string    `gorm:"type:varchar(36);not null;uniqueIndex:uk_user_paper_like" json:"userId"`
	PaperID   string    `gorm:"type:varchar(64);not null;uniqueIndex:uk_user_paper_like" json:"paperId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (PaperLike) TableName() string {
	return "paper_likes"
}
