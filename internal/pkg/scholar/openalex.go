package scholar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

const openAlexBaseURL = "https://api.openalex.org"

// OpenAlexClient OpenAlex works 接口客户端
type OpenAlexClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewOpenAlexClient(apiKey string) *OpenAlexClient {
	return &OpenAlexClient{
		baseURL:    openAlexBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// NewOpenAlexClientWithBaseURL 测试用
func NewOpenAlexClientWithBaseURL(baseURL, apiKey string) *OpenAlexClient {
	c := NewOpenAlexClient(apiKey)
	c.baseURL = baseURL
	return c
}

type OpenAlexWork struct {
	ID                    string              `json:"id"`
	Title                 string              `json:"title"`
	DisplayName           string              `json:"display_name"`
	PublicationDate       string              `json:"publication_date"`
	AbstractInvertedIndex map[string][]int    `json:"abstract_inverted_index"`
	Authorships           []openAlexAuthorshp `json:"authorships"`
	Concepts              []openAlexConcept   `json:"concepts"`
	IDs                   struct {
		Arxiv string `json:"arxiv"`
	} `json:"ids"`
}

type openAlexAuthorshp struct {
	Author struct {
		DisplayName string `json:"display_name"`
	} `json:"author"`
}

type openAlexConcept struct {
	DisplayName string  `json:"display_name"`
	Score       float64 `json:"score"`
}

type openAlexListResponse struct {
	Results []OpenAlexWork `json:"results"`
	Meta    struct {
		Count int `json:"count"`
	} `json:"meta"`
}

// ListWorks 按关键词搜索，按出版日期倒序
func (c *OpenAlexClient) ListWorks(ctx context.Context, search string, page, perPage int) ([]OpenAlexWork, int, error) {
	params := url.Values{}
	params.Set("search", search)
	params.Set("page", strconv.Itoa(page))
	params.Set("per-page", strconv.Itoa(perPage))
	params.Set("sort", "publication_date:desc")
	params.Set("filter", "has_abstract:true")
	if c.apiKey != "" {
		params.Set("api_key", c.apiKey)
	}

	var resp openAlexListResponse
	if err := c.getJSON(ctx, "/works?"+params.Encode(), &resp); err != nil {
		return nil, 0, err
	}
	return resp.Results, resp.Meta.Count, nil
}

// GetWork 按 OpenAlex work id（W...）获取详情
func (c *OpenAlexClient) GetWork(ctx context.Context, workID string) (*OpenAlexWork, error) {
	params := url.Values{}
	if c.apiKey != "" {
		params.Set("api_key", c.apiKey)
	}
	path := "/works/" + url.PathEscape(workID)
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	var work OpenAlexWork
	if err := c.getJSON(ctx, path, &work); err != nil {
		return nil, err
	}
	return &work, nil
}

func (c *OpenAlexClient) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("openalex返回 %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// NormalizeWorkID 去掉 https://openalex.org/ 前缀，返回裸的 W... id
func NormalizeWorkID(raw string) string {
	id := strings.TrimSpace(raw)
	if idx := strings.LastIndex(id, "/"); idx >= 0 {
		id = id[idx+1:]
	}
	return id
}

// ReconstructAbstract 由倒排索引还原摘要文本
func ReconstructAbstract(inverted map[string][]int) string {
	if len(inverted) == 0 {
		return ""
	}
	type wordPos struct {
		word string
		pos  int
	}
	var positions []wordPos
	for word, idxs := range inverted {
		for _, idx := range idxs {
			positions = append(positions, wordPos{word: word, pos: idx})
		}
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i].pos < positions[j].pos })

	words := make([]string, 0, len(positions))
	for _, p := range positions {
		words = append(words, p.word)
	}
	return strings.Join(words, " ")
}

// BestTitle display_name 优先，其次 title
func (w *OpenAlexWork) BestTitle() string {
	if w.DisplayName != "" {
		return w.DisplayName
	}
	return w.Title
}

// AuthorNames 提取作者显示名列表
func (w *OpenAlexWork) AuthorNames() []string {
	names := make([]string, 0, len(w.Authorships))
	for _, a := range w.Authorships {
		if a.Author.DisplayName != "" {
			names = append(names, a.Author.DisplayName)
		}
	}
	return names
}

// TopConcepts 取分数最高的前 n 个概念名作为标签
func (w *OpenAlexWork) TopConcepts(n int) []string {
	concepts := make([]openAlexConcept, len(w.Concepts))
	copy(concepts, w.Concepts)
	sort.Slice(concepts, func(i, j int) bool { return concepts[i].Score > concepts[j].Score })

	tags := make([]string, 0, n)
	for _, cpt := range concepts {
		if cpt.DisplayName == "" {
			continue
		}
		tags = append(tags, cpt.DisplayName)
		if len(tags) >= n {
			break
		}
	}
	return tags
}
