package constants

// 简历提交记录的处理状态
const (
	// StatusPendingAnalysis 已上传，等待分析
	StatusPendingAnalysis = "PENDING_ANALYSIS"
	// StatusAnalyzed 分析完成
	StatusAnalyzed = "ANALYZED"
	// StatusAnalysisFailed 分析失败
	StatusAnalysisFailed = "ANALYSIS_FAILED"
	// StatusDuplicateFileSkipped 文件MD5命中去重集合，跳过处理
	StatusDuplicateFileSkipped = "DUPLICATE_FILE_SKIPPED"
)
