package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// ResumeSubmission 简历提交/快照表
type ResumeSubmission struct {
	SubmissionUUID      string         `gorm:"type:char(36);primaryKey"`
	SubmissionTimestamp time.Time      `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6);index:idx_rs_submission_timestamp"`
	SourceChannel       string         `gorm:"type:varchar(100)"`
	OriginalFilename    string         `gorm:"type:varchar(255)"`
	OriginalFilePathOSS string         `gorm:"type:varchar(1024)"`
	RawFileMD5          string         `gorm:"type:char(32);index:idx_rs_raw_file_md5"`
	JobDescriptionText  string         `gorm:"type:text"` // 本次提交附带的JD文本，可为空
	ParsedResultJSON    datatypes.JSON `gorm:"type:json"` // 解析服务返回的结构化结果
	ProcessingStatus    string         `gorm:"type:varchar(50);default:'PENDING_ANALYSIS';index:idx_rs_processing_status"`
	CreatedAt           time.Time      `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6)"`
	UpdatedAt           time.Time      `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6);autoUpdateTime"`
}

func (ResumeSubmission) TableName() string {
	return "resume_submissions"
}

// AnalysisRecord 简历分析结果表
type AnalysisRecord struct {
	AnalysisID          uint64         `gorm:"primaryKey;autoIncrement"`
	SubmissionUUID      string         `gorm:"type:char(36);not null;uniqueIndex:uq_ar_submission_uuid"`
	Status              string         `gorm:"type:varchar(50);not null;default:'DONE'"`
	Score               int            `gorm:"type:int;not null"`
	SkillsMatchedJSON   datatypes.JSON `gorm:"type:json"`
	SkillsMissingJSON   datatypes.JSON `gorm:"type:json"`
	RecommendationsJSON datatypes.JSON `gorm:"type:json"`
	AnalyzedAt          time.Time      `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6);index:idx_ar_analyzed_at"`
	CreatedAt           time.Time      `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6)"`
	UpdatedAt           time.Time      `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6);autoUpdateTime"`

	ResumeSubmission *ResumeSubmission `gorm:"foreignKey:SubmissionUUID;references:SubmissionUUID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (AnalysisRecord) TableName() string {
	return "analysis_records"
}

// StringToJSON Helper function to convert string to datatypes.JSON
func StringToJSON(s string) datatypes.JSON {
	return datatypes.JSON(s)
}

// MapToJSON Helper function to convert map[string]interface{} to datatypes.JSON
func MapToJSON(m map[string]interface{}) (datatypes.JSON, error) {
	bytes, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return bytes, nil
}

// SliceToJSON Helper function to convert a string slice to datatypes.JSON
func SliceToJSON(s []string) (datatypes.JSON, error) {
	if s == nil {
		s = []string{}
	}
	bytes, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return bytes, nil
}
