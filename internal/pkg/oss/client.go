package oss

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	alioss "github.com/aliyun/aliyun-oss-go-sdk/oss"

	"github.com/bmh201708/ResearchPilot/config"
)

// Client 阿里云OSS客户端，存放用户头像
type Client struct {
	bucket    *alioss.Bucket
	cdnDomain string
}

func NewClient(cfg config.OSSConfig) (*Client, error) {
	client, err := alioss.New(cfg.Endpoint, cfg.AccessKeyID, cfg.AccessKeySecret)
	if err != nil {
		return nil, fmt.Errorf("初始化OSS客户端失败: %w", err)
	}

	bucket, err := client.Bucket(cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("获取OSS bucket失败: %w", err)
	}

	return &Client{bucket: bucket, cdnDomain: strings.TrimRight(cfg.CDNDomain, "/")}, nil
}

// UploadAvatar 上传头像，返回可访问URL
func (c *Client) UploadAvatar(userID string, data []byte, ext string) (string, error) {
	key := fmt.Sprintf("avatars/%s/%d%s", userID, time.Now().UnixNano(), normalizeExt(ext))

	options := []alioss.Option{
		alioss.ContentType(contentTypeForExt(ext)),
		alioss.CacheControl("max-age=31536000"),
	}
	if err := c.bucket.PutObject(key, bytes.NewReader(data), options...); err != nil {
		return "", fmt.Errorf("上传头像失败: %w", err)
	}
	return c.GetURL(key), nil
}

// GetURL 由对象key拼出访问URL（优先CDN域名）
func (c *Client) GetURL(key string) string {
	if c.cdnDomain != "" {
		return c.cdnDomain + "/" + key
	}
	return fmt.Sprintf("https://%s.%s/%s", c.bucket.BucketName, c.bucket.Client.Config.Endpoint, key)
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ".png"
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

func contentTypeForExt(ext string) string {
	switch strings.TrimPrefix(strings.ToLower(ext), ".") {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	default:
		return "image/png"
	}
}
