package parser

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"resume-analyzer-go/internal/types"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ResumeParser 简历解析器接口
type ResumeParser interface {
	// ParseFromBytes 从字节数组解析简历，返回文本与结构化字段
	ParseFromBytes(ctx context.Context, data []byte, filename string) (*types.ParseResult, error)

	// ParseFromReader 从io.Reader解析简历
	ParseFromReader(ctx context.Context, reader io.Reader, filename string) (*types.ParseResult, error)
}

// HTTPResumeParser 通过HTTP调用外部简历解析服务
// 解析服务接收multipart文件上传，返回JSON格式的解析结果
type HTTPResumeParser struct {
	// 解析服务地址，例如 http://localhost:8000
	ServiceURL string
	// HTTP客户端，可配置超时等参数
	Client *http.Client
	// 日志记录
	logger zerolog.Logger
}

// ParserOption 定义配置选项函数
type ParserOption func(*HTTPResumeParser)

// WithTimeout 配置HTTP客户端超时时间
func WithTimeout(timeout time.Duration) ParserOption {
	return func(p *HTTPResumeParser) {
		p.Client.Timeout = timeout
	}
}

// WithHTTPClient 配置自定义HTTP客户端
func WithHTTPClient(client *http.Client) ParserOption {
	return func(p *HTTPResumeParser) {
		p.Client = client
	}
}

// WithLogger 配置自定义日志记录器
func WithLogger(logger zerolog.Logger) ParserOption {
	return func(p *HTTPResumeParser) {
		p.logger = logger
	}
}

// 确保HTTPResumeParser实现了ResumeParser接口
var _ ResumeParser = (*HTTPResumeParser)(nil)

// NewHTTPResumeParser 创建一个新的HTTP简历解析客户端
func NewHTTPResumeParser(serviceURL string, options ...ParserOption) *HTTPResumeParser {
	client := &http.Client{
		Timeout: 60 * time.Second,
	}

	parser := &HTTPResumeParser{
		ServiceURL: serviceURL,
		Client:     client,
		logger:     log.With().Str("component", "resume_parser").Logger(),
	}

	for _, option := range options {
		option(parser)
	}

	return parser
}

// ParseFromReader 从io.Reader解析简历
func (p *HTTPResumeParser) ParseFromReader(ctx context.Context, reader io.Reader, filename string) (*types.ParseResult, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("读取简历内容失败: %w", err)
	}
	return p.ParseFromBytes(ctx, data, filename)
}

// ParseFromBytes 从字节数组解析简历
func (p *HTTPResumeParser) ParseFromBytes(ctx context.Context, data []byte, filename string) (*types.ParseResult, error) {
	startTime := time.Now()
	p.logger.Debug().Str("filename", filename).Int("size_bytes", len(data)).Msg("开始调用解析服务")

	// 构建multipart请求体
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("构建multipart请求失败: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("写入文件内容失败: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("关闭multipart writer失败: %w", err)
	}

	url := fmt.Sprintf("%s/parse", p.ServiceURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, fmt.Errorf("创建HTTP请求失败: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("请求解析服务失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("解析服务返回错误状态码: %d, 响应: %s", resp.StatusCode, string(respBody))
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取解析服务响应失败: %w", err)
	}

	var result types.ParseResult
	if err := json.Unmarshal(respBytes, &result); err != nil {
		return nil, fmt.Errorf("解析服务响应JSON失败: %w", err)
	}

	// 保证切片字段非nil，便于后续分析与序列化
	result.Normalize()

	p.logger.Info().
		Str("filename", filename).
		Int("text_length", len(result.RawText)).
		Int("skills", len(result.Skills)).
		Dur("duration", time.Since(startTime)).
		Msg("简历解析完成")

	return &result, nil
}
