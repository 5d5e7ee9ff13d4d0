package scholar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const semanticScholarBaseURL = "https://api.semanticscholar.org"

// SemanticScholarClient Semantic Scholar Graph API 客户端（feed 备用数据源）
type SemanticScholarClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewSemanticScholarClient() *SemanticScholarClient {
	return &SemanticScholarClient{
		baseURL:    semanticScholarBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// NewSemanticScholarClientWithBaseURL 测试用
func NewSemanticScholarClientWithBaseURL(baseURL string) *SemanticScholarClient {
	c := NewSemanticScholarClient()
	c.baseURL = baseURL
	return c
}

type SemanticScholarPaper struct {
	PaperID         string `json:"paperId"`
	Title           string `json:"title"`
	Abstract        string `json:"abstract"`
	PublicationDate string `json:"publicationDate"`
	Authors         []struct {
		Name string `json:"name"`
	} `json:"authors"`
	ExternalIDs struct {
		ArXiv string `json:"ArXiv"`
	} `json:"externalIds"`
}

// SearchPapers 关键词检索论文
func (c *SemanticScholarClient) SearchPapers(ctx context.Context, query string, limit int) ([]SemanticScholarPaper, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("fields", "title,abstract,authors,externalIds,publicationDate")

	endpoint := c.baseURL + "/graph/v1/paper/search?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("semantic scholar返回 %d", resp.StatusCode)
	}

	var result struct {
		Data []SemanticScholarPaper `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return result.Data, nil
}
