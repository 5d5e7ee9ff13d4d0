package worker

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/bmh201708/ResearchPilot/internal/model"
	"github.com/bmh201708/ResearchPilot/internal/pkg/scholar"
	"github.com/bmh201708/ResearchPilot/internal/repository"
	"github.com/bmh201708/ResearchPilot/internal/service"
)

const refreshPageSize = 25

// PaperSearcher Semantic Scholar 检索接口（OpenAlex故障时的备用源）
type PaperSearcher interface {
	SearchPapers(ctx context.Context, query string, limit int) ([]scholar.SemanticScholarPaper, error)
}

// FeedRefresher 周期性拉取OpenAlex并回写本地论文缓存，
// 保证上游不可用时feed仍有数据可兜底
type FeedRefresher struct {
	paperRepo *repository.PaperRepository
	openAlex  service.WorkLister
	fallback  PaperSearcher
	keywords  []string
	interval  time.Duration
}

func NewFeedRefresher(paperRepo *repository.PaperRepository, openAlex service.WorkLister, fallback PaperSearcher, keywords string, interval time.Duration) *FeedRefresher {
	parts := strings.Split(keywords, ",")
	cleaned := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			cleaned = append(cleaned, p)
		}
	}
	return &FeedRefresher{
		paperRepo: paperRepo,
		openAlex:  openAlex,
		fallback:  fallback,
		keywords:  cleaned,
		interval:  interval,
	}
}

// Run 启动即刷新一次，之后按间隔循环，ctx取消后退出
func (f *FeedRefresher) Run(ctx context.Context) {
	f.refreshAll(ctx)

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("feed刷新器退出")
			return
		case <-ticker.C:
			f.refreshAll(ctx)
		}
	}
}

func (f *FeedRefresher) refreshAll(ctx context.Context) {
	for _, keyword := range f.keywords {
		if err := f.refreshKeyword(ctx, keyword); err != nil {
			log.Printf("刷新关键词 %q 失败: %v", keyword, err)
		}
	}
}

func (f *FeedRefresher) refreshKeyword(ctx context.Context, keyword string) error {
	papers, err := f.fetchFromOpenAlex(ctx, keyword)
	if err != nil {
		if f.fallback == nil {
			return err
		}
		log.Printf("openalex拉取 %q 失败，改用semantic scholar: %v", keyword, err)
		papers, err = f.fetchFromSemanticScholar(ctx, keyword)
		if err != nil {
			return err
		}
	}

	if err := f.paperRepo.UpsertBatch(papers); err != nil {
		return err
	}
	log.Printf("关键词 %q 回写论文 %d 篇", keyword, len(papers))
	return nil
}

func (f *FeedRefresher) fetchFromOpenAlex(ctx context.Context, keyword string) ([]*model.Paper, error) {
	works, _, err := f.openAlex.ListWorks(ctx, keyword, 1, refreshPageSize)
	if err != nil {
		return nil, err
	}
	papers := make([]*model.Paper, 0, len(works))
	for i := range works {
		papers = append(papers, service.PaperFromWork(&works[i]))
	}
	return papers, nil
}

func (f *FeedRefresher) fetchFromSemanticScholar(ctx context.Context, keyword string) ([]*model.Paper, error) {
	results, err := f.fallback.SearchPapers(ctx, keyword, refreshPageSize)
	if err != nil {
		return nil, err
	}
	papers := make([]*model.Paper, 0, len(results))
	for i := range results {
		papers = append(papers, service.PaperFromSemanticScholar(&results[i]))
	}
	return papers, nil
}
