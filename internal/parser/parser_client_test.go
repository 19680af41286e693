package parser

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"resume-analyzer-go/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPResumeParser(t *testing.T) {
	// 测试创建默认客户端
	parser := NewHTTPResumeParser("http://localhost:8000")
	require.NotNil(t, parser, "创建的解析客户端不应为nil")
	assert.Equal(t, "http://localhost:8000", parser.ServiceURL, "ServiceURL应该被正确设置")
	require.NotNil(t, parser.Client, "HTTP客户端不应为nil")
	assert.Equal(t, 60*time.Second, parser.Client.Timeout, "HTTP客户端超时应为60秒")

	// 测试自定义选项
	customClient := &http.Client{Timeout: 10 * time.Second}
	customParser := NewHTTPResumeParser(
		"http://parser.internal:8000",
		WithHTTPClient(customClient),
		WithTimeout(30*time.Second),
	)
	assert.Equal(t, customClient, customParser.Client, "应该使用提供的自定义HTTP客户端")
	assert.Equal(t, 30*time.Second, customParser.Client.Timeout, "应该使用自定义超时")
}

// createMockParserServer 创建一个模拟的解析服务，用于测试
func createMockParserServer(t *testing.T) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/parse" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		// 验证multipart表单中包含file字段
		file, header, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		assert.Equal(t, "resume.pdf", header.Filename, "上传文件名应该透传到解析服务")

		result := types.ParseResult{
			RawText: "Senior engineer with Java and AWS experience",
			Skills:  []string{"Java", "AWS"},
			Emails:  []string{"dev@example.com"},
			Phones:  []string{"13812345678"},
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(result)
	}))
}

func TestParseFromBytes(t *testing.T) {
	server := createMockParserServer(t)
	defer server.Close()

	parser := NewHTTPResumeParser(server.URL)
	result, err := parser.ParseFromBytes(context.Background(), []byte("%PDF-1.4 fake"), "resume.pdf")
	require.NoError(t, err, "解析不应返回错误")
	require.NotNil(t, result)

	assert.Equal(t, "Senior engineer with Java and AWS experience", result.RawText)
	assert.Equal(t, []string{"Java", "AWS"}, result.Skills)
	assert.Equal(t, []string{"dev@example.com"}, result.Emails)

	// 服务未返回的切片字段应被规范化为空切片而非nil
	assert.NotNil(t, result.Experience, "Experience应为空切片而非nil")
	assert.NotNil(t, result.Education, "Education应为空切片而非nil")
}

func TestParseFromReader(t *testing.T) {
	server := createMockParserServer(t)
	defer server.Close()

	parser := NewHTTPResumeParser(server.URL)
	result, err := parser.ParseFromReader(context.Background(), strings.NewReader("fake pdf bytes"), "resume.pdf")
	require.NoError(t, err)
	assert.Len(t, result.Skills, 2)
}

func TestParseFromBytesServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("parser crashed"))
	}))
	defer server.Close()

	parser := NewHTTPResumeParser(server.URL)
	_, err := parser.ParseFromBytes(context.Background(), []byte("data"), "resume.pdf")
	require.Error(t, err, "非200响应应返回错误")
	assert.Contains(t, err.Error(), "500", "错误信息应包含状态码")
}

func TestParseFromBytesInvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("not-json"))
	}))
	defer server.Close()

	parser := NewHTTPResumeParser(server.URL)
	_, err := parser.ParseFromBytes(context.Background(), []byte("data"), "resume.pdf")
	require.Error(t, err, "非法JSON响应应返回错误")
}
