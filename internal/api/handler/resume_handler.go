package handler

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"resume-analyzer-go/internal/analyzer"
	"resume-analyzer-go/internal/config"
	"resume-analyzer-go/internal/constants"
	"resume-analyzer-go/internal/logger"
	"resume-analyzer-go/internal/parser"
	"resume-analyzer-go/internal/storage"
	"resume-analyzer-go/internal/storage/models"
	"resume-analyzer-go/internal/types"

	"github.com/gofrs/uuid/v5"
	"gorm.io/gorm"
)

// ErrAnalysisNotFound 指定提交的分析结果不存在
var ErrAnalysisNotFound = errors.New("analysis result not found")

// ResumeHandler 简历处理器，负责协调上传、解析、分析与持久化流程
type ResumeHandler struct {
	cfg     *config.Config
	storage *storage.Storage
	parser  parser.ResumeParser
	engine  *analyzer.Engine
}

// NewResumeHandler 创建一个新的简历处理器
func NewResumeHandler(
	cfg *config.Config,
	storage *storage.Storage,
	resumeParser parser.ResumeParser,
	engine *analyzer.Engine,
) *ResumeHandler {
	return &ResumeHandler{
		cfg:     cfg,
		storage: storage,
		parser:  resumeParser,
		engine:  engine,
	}
}

// UploadAndAnalyzeResponse 上传并分析的响应
type UploadAndAnalyzeResponse struct {
	SubmissionUUID string                `json:"submission_uuid"`
	Status         string                `json:"status"`
	Analysis       *types.AnalysisResult `json:"analysis,omitempty"`
}

// HandleUploadAndAnalyze 处理简历上传请求：存原始文件、调解析服务、运行分析引擎并持久化结果
func (h *ResumeHandler) HandleUploadAndAnalyze(ctx context.Context, reader io.Reader, fileSize int64,
	filename string, jdText string, sourceChannel string) (*UploadAndAnalyzeResponse, error) {

	// 0. 读取文件内容并计算MD5 (reader只能读一次)
	fileBytes, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("读取上传文件内容失败: %w", err)
	}
	md5Sum := md5.Sum(fileBytes)
	fileMD5Hex := hex.EncodeToString(md5Sum[:])

	// 1. 生成UUIDv7作为提交标识
	uuidV7, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("生成UUIDv7失败: %w", err)
	}
	submissionUUID := uuidV7.String()

	// 2. 原子地检查并登记文件MD5，命中则跳过处理
	exists, existingUUID, err := h.storage.Redis.CheckAndAddFileMD5(ctx, fileMD5Hex, submissionUUID)
	if err != nil {
		// 去重是重要逻辑，Redis查询失败时直接报错
		logger.Error().
			Err(err).
			Str("md5", fileMD5Hex).
			Msg("查询Redis文件MD5去重集合失败")
		return nil, fmt.Errorf("检查文件MD5重复性时Redis查询失败: %w", err)
	}
	if exists {
		logger.Info().
			Str("md5", fileMD5Hex).
			Str("filename", filename).
			Str("existing_uuid", existingUUID).
			Msg("检测到重复的文件MD5，跳过处理")
		return &UploadAndAnalyzeResponse{
			SubmissionUUID: existingUUID,
			Status:         constants.StatusDuplicateFileSkipped,
		}, nil
	}

	// 3. 上传原始文件到MinIO
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".pdf" // 默认为PDF
	}
	originalObjectKey, err := h.storage.MinIO.UploadResumeFile(ctx, submissionUUID, ext,
		bytes.NewReader(fileBytes), int64(len(fileBytes)))
	if err != nil {
		h.rollbackFileMD5(ctx, fileMD5Hex)
		return nil, fmt.Errorf("上传简历到MinIO失败: %w", err)
	}

	// 4. 写入提交记录，初始状态为等待分析
	submission := &models.ResumeSubmission{
		SubmissionUUID:      submissionUUID,
		SubmissionTimestamp: time.Now(),
		SourceChannel:       sourceChannel,
		OriginalFilename:    filename,
		OriginalFilePathOSS: originalObjectKey,
		RawFileMD5:          fileMD5Hex,
		JobDescriptionText:  jdText,
		ProcessingStatus:    constants.StatusPendingAnalysis,
	}
	if err := h.storage.MySQL.CreateResumeSubmission(ctx, submission); err != nil {
		h.rollbackFileMD5(ctx, fileMD5Hex)
		return nil, fmt.Errorf("写入简历提交记录失败: %w", err)
	}

	// 5. 解析 + 分析 + 持久化结果
	result, err := h.analyzeAndPersist(ctx, submissionUUID, fileBytes, filename, jdText)
	if err != nil {
		if statusErr := h.storage.MySQL.UpdateResumeProcessingStatus(ctx, submissionUUID, constants.StatusAnalysisFailed); statusErr != nil {
			logger.Warn().Err(statusErr).Str("submission_uuid", submissionUUID).Msg("更新失败状态失败")
		}
		return nil, err
	}

	// 6. 发布分析完成事件，供下游订阅（结果先落库再发布）
	h.publishAnalyzeEvent(ctx, submission)

	return &UploadAndAnalyzeResponse{
		SubmissionUUID: submissionUUID,
		Status:         constants.StatusAnalyzed,
		Analysis:       result,
	}, nil
}

// analyzeAndPersist 调用解析服务和分析引擎，并把结果写入MySQL与Redis缓存
func (h *ResumeHandler) analyzeAndPersist(ctx context.Context, submissionUUID string,
	fileBytes []byte, filename string, jdText string) (*types.AnalysisResult, error) {

	startTime := time.Now()

	// 调用外部解析服务
	parseResult, err := h.parser.ParseFromBytes(ctx, fileBytes, filename)
	if err != nil {
		return nil, fmt.Errorf("调用简历解析服务失败: %w", err)
	}

	// 运行分析引擎 (纯计算，无外部依赖)
	engineResult := h.engine.Analyze(*parseResult, jdText, submissionUUID)
	result := &engineResult

	// 持久化解析结果和分析结果
	parsedJSON, err := json.Marshal(parseResult)
	if err != nil {
		return nil, fmt.Errorf("序列化解析结果失败: %w", err)
	}

	matchedJSON, err := models.SliceToJSON(result.SkillsMatched)
	if err != nil {
		return nil, fmt.Errorf("序列化命中技能失败: %w", err)
	}
	missingJSON, err := models.SliceToJSON(result.SkillsMissing)
	if err != nil {
		return nil, fmt.Errorf("序列化缺失技能失败: %w", err)
	}
	recsJSON, err := models.SliceToJSON(result.Recommendations)
	if err != nil {
		return nil, fmt.Errorf("序列化建议列表失败: %w", err)
	}

	record := &models.AnalysisRecord{
		SubmissionUUID:      submissionUUID,
		Status:              result.Status,
		Score:               result.Score,
		SkillsMatchedJSON:   matchedJSON,
		SkillsMissingJSON:   missingJSON,
		RecommendationsJSON: recsJSON,
		AnalyzedAt:          time.Now(),
	}
	if err := h.storage.MySQL.SaveAnalysisRecord(ctx, record); err != nil {
		return nil, err
	}

	updates := h.storage.MySQL.DB().WithContext(ctx).Model(&models.ResumeSubmission{}).
		Where("submission_uuid = ?", submissionUUID).
		Updates(map[string]interface{}{
			"parsed_result_json": models.StringToJSON(string(parsedJSON)),
			"processing_status":  constants.StatusAnalyzed,
		})
	if updates.Error != nil {
		return nil, fmt.Errorf("更新提交记录失败: %w", updates.Error)
	}

	// 写入结果缓存，失败不影响主流程
	if err := h.storage.Redis.CacheAnalysisResult(ctx, submissionUUID, result); err != nil {
		logger.Warn().Err(err).Str("submission_uuid", submissionUUID).Msg("缓存分析结果失败")
	}

	logger.Info().
		Str("submission_uuid", submissionUUID).
		Int("score", result.Score).
		Int("skills_matched", len(result.SkillsMatched)).
		Int("skills_missing", len(result.SkillsMissing)).
		Dur("duration", time.Since(startTime)).
		Msg("简历分析完成")

	return result, nil
}

// rollbackFileMD5 上传或落库失败后回滚去重记录，保证同一文件可以重试
func (h *ResumeHandler) rollbackFileMD5(ctx context.Context, md5Hex string) {
	if err := h.storage.Redis.RemoveFileMD5(ctx, md5Hex); err != nil {
		logger.Warn().Err(err).Str("md5", md5Hex).Msg("回滚文件MD5去重记录失败")
	}
}

// publishAnalyzeEvent 发布分析事件到RabbitMQ，失败仅记录日志
func (h *ResumeHandler) publishAnalyzeEvent(ctx context.Context, submission *models.ResumeSubmission) {
	if h.storage.RabbitMQ == nil {
		return
	}

	message := storage.AnalyzeRequestedMessage{
		SubmissionUUID:      submission.SubmissionUUID,
		SubmissionTimestamp: submission.SubmissionTimestamp,
		SourceChannel:       submission.SourceChannel,
		OriginalFilename:    submission.OriginalFilename,
		OriginalFilePathOSS: submission.OriginalFilePathOSS,
		RawFileMD5:          submission.RawFileMD5,
		JobDescriptionText:  submission.JobDescriptionText,
	}

	err := h.storage.RabbitMQ.PublishJSON(
		ctx,
		h.cfg.RabbitMQ.ResumeEventsExchange,
		h.cfg.RabbitMQ.AnalyzeRoutingKey,
		message,
		true, // 持久化
	)
	if err != nil {
		logger.Error().
			Err(err).
			Str("submission_uuid", submission.SubmissionUUID).
			Msg("发布分析事件到RabbitMQ失败")
	}
}

// GetAnalysis 查询指定提交的分析结果，优先读缓存，未命中时回源MySQL
func (h *ResumeHandler) GetAnalysis(ctx context.Context, submissionUUID string) (*types.AnalysisResult, error) {
	// 1. 查询Redis缓存
	cached, err := h.storage.Redis.GetCachedAnalysisResult(ctx, submissionUUID)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		logger.Warn().Err(err).Str("submission_uuid", submissionUUID).Msg("读取分析结果缓存失败，回源数据库")
	}

	// 2. 回源MySQL
	record, err := h.storage.MySQL.GetAnalysisRecord(ctx, submissionUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnalysisNotFound
		}
		return nil, err
	}

	submission, err := h.storage.MySQL.GetResumeSubmission(ctx, submissionUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnalysisNotFound
		}
		return nil, err
	}

	result := &types.AnalysisResult{
		ResumeID: submissionUUID,
		Status:   record.Status,
		Score:    record.Score,
	}
	if err := json.Unmarshal(record.SkillsMatchedJSON, &result.SkillsMatched); err != nil {
		return nil, fmt.Errorf("反序列化命中技能失败: %w", err)
	}
	if err := json.Unmarshal(record.SkillsMissingJSON, &result.SkillsMissing); err != nil {
		return nil, fmt.Errorf("反序列化缺失技能失败: %w", err)
	}
	if err := json.Unmarshal(record.RecommendationsJSON, &result.Recommendations); err != nil {
		return nil, fmt.Errorf("反序列化建议列表失败: %w", err)
	}
	if len(submission.ParsedResultJSON) > 0 {
		if err := json.Unmarshal(submission.ParsedResultJSON, &result.ParserResult); err != nil {
			return nil, fmt.Errorf("反序列化解析结果失败: %w", err)
		}
	}
	result.ParserResult.Normalize()

	// 回填缓存
	if err := h.storage.Redis.CacheAnalysisResult(ctx, submissionUUID, result); err != nil {
		logger.Warn().Err(err).Str("submission_uuid", submissionUUID).Msg("回填分析结果缓存失败")
	}

	return result, nil
}

// StartAnalyzeConsumer 启动分析事件消费者，用于异步重新分析
// 消息处理失败时返回false，由RabbitMQ重新入队
func (h *ResumeHandler) StartAnalyzeConsumer(ctx context.Context) (chan<- struct{}, error) {
	if h.storage.RabbitMQ == nil {
		return nil, fmt.Errorf("RabbitMQ未初始化")
	}

	if err := h.storage.RabbitMQ.SetupAnalyzeTopology(); err != nil {
		return nil, err
	}

	logger.Info().
		Str("queue", h.cfg.RabbitMQ.AnalyzeQueue).
		Int("prefetch", h.cfg.RabbitMQ.PrefetchCount).
		Msg("分析事件消费者就绪")

	return h.storage.RabbitMQ.StartConsumer(h.cfg.RabbitMQ.AnalyzeQueue, h.cfg.RabbitMQ.PrefetchCount, func(data []byte) bool {
		var message storage.AnalyzeRequestedMessage
		if err := json.Unmarshal(data, &message); err != nil {
			logger.Error().Err(err).Msg("解析分析事件消息失败")
			// 格式错误的消息重新入队没有意义
			return true
		}

		if err := h.reanalyzeFromEvent(ctx, &message); err != nil {
			logger.Error().
				Err(err).
				Str("submission_uuid", message.SubmissionUUID).
				Msg("处理分析事件失败")
			return false
		}
		return true
	})
}

// reanalyzeFromEvent 从MinIO取回原始文件并重新执行解析与分析
func (h *ResumeHandler) reanalyzeFromEvent(ctx context.Context, message *storage.AnalyzeRequestedMessage) error {
	fileBytes, err := h.storage.MinIO.GetResumeFile(ctx, message.OriginalFilePathOSS)
	if err != nil {
		return fmt.Errorf("从MinIO获取原始简历失败: %w", err)
	}

	_, err = h.analyzeAndPersist(ctx, message.SubmissionUUID, fileBytes, message.OriginalFilename, message.JobDescriptionText)
	if err != nil {
		if statusErr := h.storage.MySQL.UpdateResumeProcessingStatus(ctx, message.SubmissionUUID, constants.StatusAnalysisFailed); statusErr != nil {
			logger.Warn().Err(statusErr).Str("submission_uuid", message.SubmissionUUID).Msg("更新失败状态失败")
		}
		return err
	}
	return nil
}
