package storage

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"time"

	"resume-analyzer-go/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/minio/minio-go/v7/pkg/lifecycle"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ObjectStorage 对象存储接口
type ObjectStorage interface {
	// UploadResumeFile 上传原始简历文件，返回对象键
	UploadResumeFile(ctx context.Context, submissionUUID, fileExt string, reader io.Reader, fileSize int64) (string, error)

	// UploadResumeFileStreaming 流式上传并同时计算MD5，返回对象键和MD5
	UploadResumeFileStreaming(ctx context.Context, submissionUUID, fileExt string, reader io.Reader, fileSize int64) (string, string, error)

	// GetResumeFile 下载原始简历文件
	GetResumeFile(ctx context.Context, objectKey string) ([]byte, error)

	// GetPresignedURL 获取预签名URL
	GetPresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)

	// DeleteFile 删除文件
	DeleteFile(ctx context.Context, objectName string) error
}

// 确保MinIO实现了ObjectStorage接口
var _ ObjectStorage = (*MinIO)(nil)

// MinIO 提供对象存储功能
type MinIO struct {
	client         *minio.Client
	cfg            *config.MinIOConfig
	originalBucket string
	logger         zerolog.Logger
}

// NewMinIO 创建MinIO客户端
func NewMinIO(cfg *config.MinIOConfig) (*MinIO, error) {
	if cfg == nil {
		return nil, fmt.Errorf("MinIO配置不能为空")
	}

	logger := log.With().Str("component", "minio").Logger()
	logger.Info().
		Str("endpoint", cfg.Endpoint).
		Str("originals_bucket", cfg.OriginalsBucket).
		Msg("初始化MinIO客户端")

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("创建MinIO客户端失败: %w", err)
	}

	originalBucket := cfg.OriginalsBucket
	if originalBucket == "" {
		originalBucket = "resume-originals"
	}

	m := &MinIO{
		client:         client,
		cfg:            cfg,
		originalBucket: originalBucket,
		logger:         logger,
	}

	if err := m.ensureBucketExists(originalBucket, cfg.Location); err != nil {
		return nil, fmt.Errorf("确保原始简历存储桶 %s 存在失败: %w", originalBucket, err)
	}

	// 设置生命周期规则
	if cfg.OriginalFileExpireDays > 0 {
		if err := m.setupBucketLifecycle(context.Background(), originalBucket, "expire-originals", cfg.OriginalFileExpireDays); err != nil {
			logger.Warn().Err(err).Msg("设置对象生命周期规则失败")
		}
	}

	logger.Info().Str("endpoint", cfg.Endpoint).Msg("MinIO客户端初始化完成")
	return m, nil
}

// ensureBucketExists 确保存储桶存在
func (m *MinIO) ensureBucketExists(bucketName, location string) error {
	exists, err := m.client.BucketExists(context.Background(), bucketName)
	if err != nil {
		return fmt.Errorf("检查存储桶 %s 是否存在时出错: %w", bucketName, err)
	}
	if !exists {
		m.logger.Info().Str("bucket", bucketName).Msg("存储桶不存在，尝试创建")
		err = m.client.MakeBucket(context.Background(), bucketName, minio.MakeBucketOptions{Region: location})
		if err != nil {
			return fmt.Errorf("创建存储桶 %s 失败: %w", bucketName, err)
		}
		m.logger.Info().Str("bucket", bucketName).Msg("存储桶创建成功")
	}
	return nil
}

// setupBucketLifecycle 为指定存储桶设置生命周期规则
func (m *MinIO) setupBucketLifecycle(ctx context.Context, bucketName, ruleID string, expiryDays int) error {
	lcConfig := lifecycle.NewConfiguration()
	lcConfig.Rules = []lifecycle.Rule{
		{
			ID:     ruleID,
			Status: "Enabled",
			Expiration: lifecycle.Expiration{
				Days: lifecycle.ExpirationDays(expiryDays),
			},
		},
	}

	if err := m.client.SetBucketLifecycle(ctx, bucketName, lcConfig); err != nil {
		return err
	}
	m.logger.Info().
		Str("bucket", bucketName).
		Str("rule_id", ruleID).
		Int("expiry_days", expiryDays).
		Msg("存储桶生命周期规则设置成功")
	return nil
}

// UploadResumeFile 上传原始简历文件到originalsBucket
// 返回MinIO中的对象键 (不含bucket前缀)
func (m *MinIO) UploadResumeFile(ctx context.Context, submissionUUID, fileExt string, reader io.Reader, fileSize int64) (string, error) {
	// 对象名称格式: resume/{submissionUUID}/original{ext}
	objectName := fmt.Sprintf("resume/%s/original%s", submissionUUID, fileExt)
	contentType := getContentType(fileExt)

	info, err := m.client.PutObject(ctx, m.originalBucket, objectName, reader, fileSize,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("上传对象 %s/%s 失败: %w", m.originalBucket, objectName, err)
	}

	m.logger.Debug().
		Str("object", objectName).
		Str("etag", info.ETag).
		Int64("size", info.Size).
		Msg("原始简历文件上传成功")
	return objectName, nil
}

// UploadResumeFileStreaming 流式上传简历文件并同时计算MD5
// 返回: objectKey, md5Hex, error
func (m *MinIO) UploadResumeFileStreaming(ctx context.Context, submissionUUID, fileExt string, reader io.Reader, fileSize int64) (string, string, error) {
	objectName := fmt.Sprintf("resume/%s/original%s", submissionUUID, fileExt)
	contentType := getContentType(fileExt)

	// 使用TeeReader在上传的同时计算MD5
	md5Hash := md5.New()
	teeReader := io.TeeReader(reader, md5Hash)

	info, err := m.client.PutObject(ctx, m.originalBucket, objectName, teeReader,
		fileSize, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", "", fmt.Errorf("流式上传文件到MinIO失败: %w", err)
	}

	md5Hex := hex.EncodeToString(md5Hash.Sum(nil))

	m.logger.Debug().
		Str("object", objectName).
		Str("etag", info.ETag).
		Int64("size", info.Size).
		Str("md5", md5Hex).
		Msg("原始简历文件流式上传成功")

	return objectName, md5Hex, nil
}

// UploadResumeFileFromBytes 从字节数组上传简历文件
func (m *MinIO) UploadResumeFileFromBytes(ctx context.Context, submissionUUID, fileExt string, data []byte) (string, error) {
	return m.UploadResumeFile(ctx, submissionUUID, fileExt, bytes.NewReader(data), int64(len(data)))
}

// GetResumeFile 从MinIO获取简历文件
func (m *MinIO) GetResumeFile(ctx context.Context, objectKey string) ([]byte, error) {
	obj, err := m.client.GetObject(ctx, m.originalBucket, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("获取对象 %s/%s 失败: %w", m.originalBucket, objectKey, err)
	}
	defer obj.Close()

	// Stat用于提前发现对象不存在或无权限的情况
	stat, err := obj.Stat()
	if err != nil {
		return nil, fmt.Errorf("获取对象 %s/%s 状态失败: %w", m.originalBucket, objectKey, err)
	}

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("读取对象 %s/%s 数据失败: %w", m.originalBucket, objectKey, err)
	}

	m.logger.Debug().
		Str("object", objectKey).
		Int64("size", stat.Size).
		Msg("原始简历文件下载成功")
	return data, nil
}

// GetPresignedURL 获取预签名URL
func (m *MinIO) GetPresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	presignedURL, err := m.client.PresignedGetObject(ctx, m.originalBucket, objectName, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("生成MinIO预签名URL失败: %w", err)
	}
	return presignedURL.String(), nil
}

// DeleteFile 删除文件
func (m *MinIO) DeleteFile(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.originalBucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("删除对象 %s 失败: %w", objectName, err)
	}
	m.logger.Debug().Str("object", objectName).Msg("对象删除成功")
	return nil
}

// StatObject 暴露底层的StatObject方法，用于测试或特定场景
func (m *MinIO) StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
	return m.client.StatObject(ctx, bucketName, objectName, opts)
}

// 获取内容类型
func getContentType(ext string) string {
	ext = strings.ToLower(ext)
	switch ext {
	case ".pdf":
		return "application/pdf"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".txt":
		return "text/plain"
	case ".html", ".htm":
		return "text/html"
	default:
		return "application/octet-stream"
	}
}
