package storage

import "time"

// AnalyzeRequestedMessage 简历分析请求消息
// 在上传处理器完成持久化后发布，由分析消费者订阅
type AnalyzeRequestedMessage struct {
	SubmissionUUID      string    `json:"submission_uuid"`          // 提交UUID，主键
	SubmissionTimestamp time.Time `json:"submission_timestamp"`     // 提交时间戳
	SourceChannel       string    `json:"source_channel,omitempty"` // 来源渠道
	OriginalFilename    string    `json:"original_filename"`        // 原始文件名
	OriginalFilePathOSS string    `json:"original_file_path_oss"`   // MinIO中的对象路径
	RawFileMD5          string    `json:"raw_file_md5,omitempty"`   // 原始文件的MD5，用于失败时回滚
	JobDescriptionText  string    `json:"job_description_text,omitempty"`
}
