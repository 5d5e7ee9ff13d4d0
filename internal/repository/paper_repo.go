package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bmh201708/ResearchPilot/internal/model"
)

type PaperRepository struct {
	db *gorm.DB
}

func NewPaperRepository(db *gorm.DB) *PaperRepository {
	return &PaperRepository{db: db}
}

// GetByID 按ID查询论文，不存在返回nil
func (r *PaperRepository) GetByID(id string) (*model.Paper, error) {
	var paper model.Paper
	err := r.db.Where("id = ?", id).First(&paper).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &paper, nil
}

// Upsert 按主键写入或更新论文缓存
func (r *PaperRepository) Upsert(paper *model.Paper) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"arxiv_id", "title", "authors", "abstract", "published_at", "tags", "updated_at",
		}),
	}).Create(paper).Error
}

// UpsertBatch 批量写入论文缓存
func (r *PaperRepository) UpsertBatch(papers []*model.Paper) error {
	if len(papers) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"arxiv_id", "title", "authors", "abstract", "published_at", "tags", "updated_at",
		}),
	}).Create(papers).Error
}

// ListRecent 本地缓存兜底：按出版日期倒序分页
func (r *PaperRepository) ListRecent(page, pageSize int) ([]*model.Paper, int64, error) {
	var total int64
	if err := r.db.Model(&model.Paper{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var papers []*model.Paper
	offset := (page - 1) * pageSize
	err := r.db.Order("published_at DESC").Offset(offset).Limit(pageSize).Find(&papers).Error
	return papers, total, err
}

// ListByIDs 按ID集合查询，保持结果可按调用方排序
func (r *PaperRepository) ListByIDs(ids []string) ([]*model.Paper, error) {
	if len(ids) == 0 {
		return []*model.Paper{}, nil
	}
	var papers []*model.Paper
	err := r.db.Where("id IN ?", ids).Find(&papers).Error
	return papers, err
}

// GetSummary 查询论文AI摘要
func (r *PaperRepository) GetSummary(paperID string) (*model.PaperSummary, error) {
	var summary model.PaperSummary
	err := r.db.Where("paper_id = ?", paperID).First(&summary).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
