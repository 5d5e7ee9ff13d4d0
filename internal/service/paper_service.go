package service

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/bmh201708/ResearchPilot/internal/model"
	"github.com/bmh201708/ResearchPilot/internal/model/dto"
	"github.com/bmh201708/ResearchPilot/internal/pkg/apperr"
	"github.com/bmh201708/ResearchPilot/internal/pkg/scholar"
	"github.com/bmh201708/ResearchPilot/internal/repository"
)

// 论文ID的来源前缀
const (
	paperSourceOpenAlex        = "oa:"
	paperSourceSemanticScholar = "s2:"
	feedSourceOpenAlex         = "openalex"
	feedSourceLocal            = "local"
)

// FeedPageCache feed分页缓存接口（生产为redis）
type FeedPageCache interface {
	Get(ctx context.Context, keywords string, page, pageSize int, out interface{}) (bool, error)
	Set(ctx context.Context, keywords string, page, pageSize int, value interface{}) error
}

// WorkLister OpenAlex works 接口（便于测试替换）
type WorkLister interface {
	ListWorks(ctx context.Context, search string, page, perPage int) ([]scholar.OpenAlexWork, int, error)
	GetWork(ctx context.Context, workID string) (*scholar.OpenAlexWork, error)
}

type PaperService struct {
	paperRepo       *repository.PaperRepository
	interactionRepo *repository.InteractionRepository
	commentRepo     *repository.CommentRepository
	openAlex        WorkLister
	feedCache       FeedPageCache
	defaultKeywords string
}

func NewPaperService(
	paperRepo *repository.PaperRepository,
	interactionRepo *repository.InteractionRepository,
	commentRepo *repository.CommentRepository,
	openAlex WorkLister,
	feedCache FeedPageCache,
	defaultKeywords string,
) *PaperService {
	return &PaperService{
		paperRepo:       paperRepo,
		interactionRepo: interactionRepo,
		commentRepo:     commentRepo,
		openAlex:        openAlex,
		feedCache:       feedCache,
		defaultKeywords: defaultKeywords,
	}
}

// PaperFromWork OpenAlex work 转本地论文缓存行
func PaperFromWork(work *scholar.OpenAlexWork) *model.Paper {
	return &model.Paper{
		ID:          paperSourceOpenAlex + scholar.NormalizeWorkID(work.ID),
		ArxivID:     extractArxivID(work.IDs.Arxiv),
		Title:       work.BestTitle(),
		Authors:     work.AuthorNames(),
		Abstract:    scholar.ReconstructAbstract(work.AbstractInvertedIndex),
		PublishedAt: work.PublicationDate,
		Tags:        work.TopConcepts(5),
	}
}

// PaperFromSemanticScholar Semantic Scholar 检索结果转本地论文缓存行
func PaperFromSemanticScholar(p *scholar.SemanticScholarPaper) *model.Paper {
	authors := make(model.StringArray, 0, len(p.Authors))
	for _, a := range p.Authors {
		if a.Name != "" {
			authors = append(authors, a.Name)
		}
	}
	return &model.Paper{
		ID:          paperSourceSemanticScholar + p.PaperID,
		ArxivID:     p.ExternalIDs.ArXiv,
		Title:       p.Title,
		Authors:     authors,
		Abstract:    p.Abstract,
		PublishedAt: p.PublicationDate,
	}
}

func extractArxivID(raw string) string {
	raw = strings.TrimSpace(raw)
	if idx := strings.LastIndex(raw, "/abs/"); idx >= 0 {
		return raw[idx+len("/abs/"):]
	}
	return raw
}

// Feed 论文feed：redis缓存 → OpenAlex → 本地库兜底
func (s *PaperService) Feed(ctx context.Context, req *dto.FeedRequest) (*dto.FeedResponse, error) {
	keywords := strings.TrimSpace(req.Keywords)
	if keywords == "" {
		keywords = s.defaultKeywords
	}
	page, pageSize := normalizePage(req.Page, req.PageSize)

	if s.feedCache != nil {
		var cached dto.FeedResponse
		hit, err := s.feedCache.Get(ctx, keywords, page, pageSize, &cached)
		if err != nil {
			log.Printf("feed缓存读取失败: %v", err)
		} else if hit {
			return &cached, nil
		}
	}

	works, total, err := s.openAlex.ListWorks(ctx, keywords, page, pageSize)
	if err != nil {
		// 上游不可用时退回本地缓存
		log.Printf("openalex查询失败，使用本地缓存: %v", err)
		return s.feedFromLocal(page, pageSize)
	}

	papers := make([]*model.Paper, 0, len(works))
	for i := range works {
		papers = append(papers, PaperFromWork(&works[i]))
	}
	if err := s.paperRepo.UpsertBatch(papers); err != nil {
		log.Printf("回写论文缓存失败: %v", err)
	}

	resp := &dto.FeedResponse{
		Papers:   papers,
		Total:    int64(total),
		Page:     page,
		PageSize: pageSize,
		Source:   feedSourceOpenAlex,
	}
	if s.feedCache != nil {
		if err := s.feedCache.Set(ctx, keywords, page, pageSize, resp); err != nil {
			log.Printf("feed缓存写入失败: %v", err)
		}
	}
	return resp, nil
}

func (s *PaperService) feedFromLocal(page, pageSize int) (*dto.FeedResponse, error) {
	papers, total, err := s.paperRepo.ListRecent(page, pageSize)
	if err != nil {
		return nil, err
	}
	return &dto.FeedResponse{
		Papers:   papers,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		Source:   feedSourceLocal,
	}, nil
}

// Detail 论文详情：本地未命中且为OpenAlex来源时实时拉取并回写
func (s *PaperService) Detail(ctx context.Context, userID, paperID string) (*dto.PaperDetailResponse, error) {
	paper, err := s.paperRepo.GetByID(paperID)
	if err != nil {
		return nil, err
	}
	if paper == nil && strings.HasPrefix(paperID, paperSourceOpenAlex) {
		work, err := s.openAlex.GetWork(ctx, strings.TrimPrefix(paperID, paperSourceOpenAlex))
		if err == nil && work != nil {
			paper = PaperFromWork(work)
			if err := s.paperRepo.Upsert(paper); err != nil {
				log.Printf("回写论文缓存失败: %v", err)
			}
		}
	}
	if paper == nil {
		return nil, apperr.New(http.StatusNotFound, "paper_not_found")
	}

	summary, err := s.paperRepo.GetSummary(paperID)
	if err != nil {
		return nil, err
	}

	var actionType string
	if action, err := s.interactionRepo.GetAction(userID, paperID); err == nil && action != nil {
		actionType = action.Action
	}
	liked, err := s.interactionRepo.LikeExists(userID, paperID)
	if err != nil {
		return nil, err
	}
	commentCount, err := s.commentRepo.CountByPaper(paperID)
	if err != nil {
		return nil, err
	}

	return &dto.PaperDetailResponse{
		Paper:    paper,
		Summary:  summary,
		Action:   actionType,
		Liked:    liked,
		Comments: commentCount,
	}, nil
}

// RecordAction 记录用户对论文的动作（同一论文覆盖更新）
func (s *PaperService) RecordAction(userID, paperID, actionType string) error {
	return s.interactionRepo.UpsertAction(&model.PaperAction{
		UserID:  userID,
		PaperID: paperID,
		Action:  actionType,
	})
}

// ToggleLike 点赞切换，返回切换后的状态
func (s *PaperService) ToggleLike(userID, paperID string) (bool, error) {
	exists, err := s.interactionRepo.LikeExists(userID, paperID)
	if err != nil {
		return false, err
	}
	if exists {
		if err := s.interactionRepo.DeleteLike(userID, paperID); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := s.interactionRepo.CreateLike(&model.PaperLike{UserID: userID, PaperID: paperID}); err != nil {
		return false, err
	}
	return true, nil
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 50 {
		pageSize = 10
	}
	return page, pageSize
}
