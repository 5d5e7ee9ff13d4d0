package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmh201708/ResearchPilot/internal/model"
	"github.com/bmh201708/ResearchPilot/internal/pkg/scholar"
	"github.com/bmh201708/ResearchPilot/internal/repository"
	"github.com/bmh201708/ResearchPilot/internal/testutil"
)

type stubWorkLister struct {
	works []scholar.OpenAlexWork
	err   error
}

func (s *stubWorkLister) ListWorks(ctx context.Context, search string, page, perPage int) ([]scholar.OpenAlexWork, int, error) {
	return s.works, len(s.works), s.err
}

func (s *stubWorkLister) GetWork(ctx context.Context, workID string) (*scholar.OpenAlexWork, error) {
	return nil, errors.New("not implemented")
}

type stubSearcher struct {
	papers []scholar.SemanticScholarPaper
	err    error
}

func (s *stubSearcher) SearchPapers(ctx context.Context, query string, limit int) ([]scholar.SemanticScholarPaper, error) {
	return s.papers, s.err
}

func TestRefreshUpsertsFromOpenAlex(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewPaperRepository(db)

	refresher := NewFeedRefresher(repo, &stubWorkLister{
		works: []scholar.OpenAlexWork{
			{ID: "https://openalex.org/W1", DisplayName: "Paper One", PublicationDate: "2026-01-01"},
		},
	}, nil, "llm, rag", time.Minute)

	refresher.refreshAll(context.Background())

	var papers []model.Paper
	require.NoError(t, db.Find(&papers).Error)
	require.Len(t, papers, 1)
	assert.Equal(t, "oa:W1", papers[0].ID)

	// 再次刷新做的是upsert，不会重复
	refresher.refreshAll(context.Background())
	require.NoError(t, db.Find(&papers).Error)
	assert.Len(t, papers, 1)
}

func TestRefreshFallsBackToSemanticScholar(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewPaperRepository(db)

	refresher := NewFeedRefresher(repo,
		&stubWorkLister{err: errors.New("openalex down")},
		&stubSearcher{papers: []scholar.SemanticScholarPaper{
			{PaperID: "abc123", Title: "Backup Paper", PublicationDate: "2026-02-02"},
		}},
		"llm", time.Minute)

	refresher.refreshAll(context.Background())

	var papers []model.Paper
	require.NoError(t, db.Find(&papers).Error)
	require.Len(t, papers, 1)
	assert.Equal(t, "s2:abc123", papers[0].ID)
	assert.Equal(t, "Backup Paper", papers[0].Title)
}
