package wechat

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.weixin.qq.com"

// Client 微信小程序服务端接口客户端
type Client struct {
	baseURL    string
	appID      string
	appSecret  string
	httpClient *http.Client
}

func NewClient(appID, appSecret string) *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		appID:      appID,
		appSecret:  appSecret,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBaseURL 测试用，指向 httptest 服务
func NewClientWithBaseURL(baseURL, appID, appSecret string) *Client {
	c := NewClient(appID, appSecret)
	c.baseURL = baseURL
	return c
}

type SessionResult struct {
	OpenID     string `json:"openid"`
	SessionKey string `json:"session_key"`
	UnionID    string `json:"unionid"`
	ErrCode    int    `json:"errcode"`
	ErrMsg     string `json:"errmsg"`
}

// JSCode2Session 用登录code换取openid
func (c *Client) JSCode2Session(ctx context.Context, code string) (*SessionResult, error) {
	params := url.Values{}
	params.Set("appid", c.appID)
	params.Set("secret", c.appSecret)
	params.Set("js_code", code)
	params.Set("grant_type", "authorization_code")

	endpoint := c.baseURL + "/sns/jscode2session?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result SessionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	if result.ErrCode != 0 {
		return nil, fmt.Errorf("微信登录失败: %d %s", result.ErrCode, result.ErrMsg)
	}
	if result.OpenID == "" {
		return nil, fmt.Errorf("微信登录响应缺少openid")
	}
	return &result, nil
}
