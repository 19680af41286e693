package constants

// Redis Key 前缀和格式常量
// 使用统一的命名规范: app:{module}:{entity}:{unique_id}
const (
	// AppPrefix 是所有Redis Key的统一应用前缀
	AppPrefix = "app"

	// FileModulePrefix 文件模块
	FileModulePrefix = "file"
	// AnalysisModulePrefix 分析模块
	AnalysisModulePrefix = "analysis"

	// EntityDedupSet 去重集合实体
	EntityDedupSet = "dedup_set"
	// EntityMD5ToUUID MD5到UUID的映射实体
	EntityMD5ToUUID = "md5_to_uuid"
	// EntityResult 分析结果实体
	EntityResult = "result"

	// KeyFileMD5Set 文件MD5集合，用于快速去重 (SET)
	// 格式: app:file:dedup_set
	KeyFileMD5Set = AppPrefix + ":" + FileModulePrefix + ":" + EntityDedupSet

	// KeyFileMD5ToSubmissionUUID MD5到SubmissionUUID的映射 (STRING)
	// 格式: app:file:md5_to_uuid:{md5}
	KeyFileMD5ToSubmissionUUID = AppPrefix + ":" + FileModulePrefix + ":" + EntityMD5ToUUID + ":%s"

	// KeyAnalysisResult 分析结果缓存 (STRING, JSON序列化)
	// 格式: app:analysis:result:{submissionUUID}
	KeyAnalysisResult = AppPrefix + ":" + AnalysisModulePrefix + ":" + EntityResult + ":%s"
)
