package review

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"github.com/bmh201708/ResearchPilot/internal/pkg/apperr"
)

const (
	maxBase64Chars  = 70 * 1024 * 1024
	maxRemoteBytes  = 55 * 1024 * 1024
	minTextChars    = 60
	maxTextChars    = 24000
)

var supportedExtensions = map[string]bool{
	"pdf": true,
	"txt": true,
	"md":  true,
}

// ExtractInput 稿件来源：contentBase64 与 fileURL 二选一
type ExtractInput struct {
	FileName      string
	MimeType      string
	Extension     string
	ContentBase64 string
	FileURL       string
}

// Extractor 从内联base64或远端URL抽取稿件文本
type Extractor struct {
	httpClient          *http.Client
	allowedHostSuffixes []string
}

func NewExtractor(allowedHostSuffixes []string) *Extractor {
	return &Extractor{
		httpClient:          &http.Client{Timeout: 60 * time.Second},
		allowedHostSuffixes: allowedHostSuffixes,
	}
}

// ValidateCreateInput 创建任务前的同步校验。异步任务只接受云存储URL：
// fileName 与 fileUrl 必填（先校验），扩展名必须受支持。
func ValidateCreateInput(input *ExtractInput) (string, error) {
	if strings.TrimSpace(input.FileName) == "" || strings.TrimSpace(input.FileURL) == "" {
		return "", apperr.NewWithDetail(http.StatusBadRequest, "invalid_payload",
			"fileName 与 fileUrl 必填")
	}
	ext := resolveExtension(input.Extension, input.FileName)
	if !supportedExtensions[ext] {
		return "", apperr.NewWithDetail(http.StatusBadRequest, "unsupported_file_type",
			"仅支持 pdf/txt/md")
	}
	return ext, nil
}

// ValidateSimulateInput 同步评审入参校验：fileName 必填，稿件来源二选一。
// 扩展名在抽取阶段校验。
func ValidateSimulateInput(input *ExtractInput) error {
	if strings.TrimSpace(input.FileName) == "" ||
		(strings.TrimSpace(input.ContentBase64) == "" && strings.TrimSpace(input.FileURL) == "") {
		return apperr.NewWithDetail(http.StatusBadRequest, "invalid_payload",
			"fileName 必填，contentBase64 与 fileUrl 必须提供一个")
	}
	return nil
}

// Extract 校验输入、取回文件字节、抽取并清洗文本
func (e *Extractor) Extract(input *ExtractInput) (*Manuscript, error) {
	ext := resolveExtension(input.Extension, input.FileName)
	if !supportedExtensions[ext] {
		return nil, apperr.NewWithDetail(http.StatusBadRequest, "unsupported_file_type",
			"仅支持 pdf/txt/md")
	}

	var raw []byte
	switch {
	case strings.TrimSpace(input.ContentBase64) != "":
		decoded, err := decodeInline(input.ContentBase64)
		if err != nil {
			return nil, err
		}
		raw = decoded
	case strings.TrimSpace(input.FileURL) != "":
		fetched, err := e.fetchRemote(strings.TrimSpace(input.FileURL))
		if err != nil {
			return nil, err
		}
		raw = fetched
	default:
		return nil, apperr.NewWithDetail(http.StatusBadRequest, "invalid_payload",
			"contentBase64 与 fileUrl 必须提供一个")
	}

	var text string
	if ext == "pdf" || strings.Contains(strings.ToLower(input.MimeType), "pdf") {
		extracted, err := extractPDFText(raw)
		if err != nil {
			return nil, apperr.NewWithDetail(http.StatusBadRequest, "pdf_parse_failed", err.Error())
		}
		text = extracted
	} else {
		text = string(raw)
	}

	text = cleanText(text)
	if utf8.RuneCountInString(text) < minTextChars {
		return nil, apperr.New(http.StatusBadRequest, "manuscript_content_too_short")
	}
	text = truncateRunes(text, maxTextChars)

	return &Manuscript{Text: text, Extension: ext}, nil
}

// resolveExtension 显式扩展名优先，否则取文件名最后一个点之后的部分
func resolveExtension(extension, fileName string) string {
	ext := strings.ToLower(strings.TrimSpace(extension))
	if ext != "" {
		return strings.TrimPrefix(ext, ".")
	}
	name := strings.TrimSpace(fileName)
	if idx := strings.LastIndex(name, "."); idx >= 0 && idx < len(name)-1 {
		return strings.ToLower(name[idx+1:])
	}
	return ""
}

func decodeInline(contentBase64 string) ([]byte, error) {
	if len(contentBase64) > maxBase64Chars {
		return nil, apperr.New(http.StatusBadRequest, "manuscript_too_large")
	}
	trimmed := strings.TrimSpace(contentBase64)
	decoded, err := base64.StdEncoding.DecodeString(trimmed)
	if err != nil || len(decoded) == 0 {
		return nil, apperr.New(http.StatusBadRequest, "invalid_content_base64")
	}
	return decoded, nil
}

func (e *Extractor) fetchRemote(fileURL string) ([]byte, error) {
	parsed, err := url.Parse(fileURL)
	if err != nil || parsed.Host == "" {
		return nil, apperr.New(http.StatusBadRequest, "invalid_file_url")
	}
	if parsed.Scheme != "https" {
		return nil, apperr.New(http.StatusBadRequest, "invalid_file_url_protocol")
	}
	if !e.hostAllowed(parsed.Hostname()) {
		return nil, apperr.New(http.StatusBadRequest, "invalid_file_url_host")
	}

	resp, err := e.httpClient.Get(fileURL)
	if err != nil {
		return nil, apperr.NewWithDetail(http.StatusBadRequest, "file_download_failed", err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperr.NewWithDetail(http.StatusBadRequest, "file_download_failed",
			fmt.Sprintf("http_%d", resp.StatusCode))
	}
	if resp.ContentLength > maxRemoteBytes {
		return nil, apperr.New(http.StatusBadRequest, "manuscript_too_large")
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRemoteBytes+1))
	if err != nil {
		return nil, apperr.NewWithDetail(http.StatusBadRequest, "file_download_failed", err.Error())
	}
	if len(body) > maxRemoteBytes {
		return nil, apperr.New(http.StatusBadRequest, "manuscript_too_large")
	}
	if len(body) == 0 {
		return nil, apperr.New(http.StatusBadRequest, "manuscript_content_empty")
	}
	return body, nil
}

func (e *Extractor) hostAllowed(host string) bool {
	host = strings.ToLower(host)
	for _, suffix := range e.allowedHostSuffixes {
		if strings.HasSuffix(host, strings.ToLower(suffix)) {
			return true
		}
	}
	return false
}

// extractPDFText 解析库对损坏的PDF会panic，这里统一转成错误
func extractPDFText(raw []byte) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = fmt.Errorf("pdf解析异常: %v", rec)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", err
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// cleanText 去掉NUL与回车符并修剪首尾空白
func cleanText(text string) string {
	text = strings.ReplaceAll(text, "\x00", "")
	text = strings.ReplaceAll(text, "\r", "")
	return strings.TrimSpace(text)
}

func truncateRunes(text string, limit int) string {
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	runes := []rune(text)
	return string(runes[:limit])
}
