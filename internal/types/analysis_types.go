package types

// ParseResult 外部解析服务返回的简历结构化结果
// 所有集合字段保证为空切片而非nil，由解析客户端在反序列化后归一化
type ParseResult struct {
	RawText    string            `json:"rawText"`    // 简历全文
	Skills     []string          `json:"skills"`     // 解析器识别出的技能列表
	Emails     []string          `json:"emails"`     // 联系邮箱
	Phones     []string          `json:"phones"`     // 联系电话
	Experience []ExperienceEntry `json:"experience"` // 工作经历条目
	Education  []EducationEntry  `json:"education"`  // 教育经历条目
}

// ExperienceEntry 工作经历条目，核心只检查条目数量，不读取内部字段
type ExperienceEntry struct {
	Company     string `json:"company,omitempty"`
	Title       string `json:"title,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
}

// EducationEntry 教育经历条目
type EducationEntry struct {
	School string `json:"school,omitempty"`
	Degree string `json:"degree,omitempty"`
	Major  string `json:"major,omitempty"`
	Period string `json:"period,omitempty"`
}

// Normalize 把nil集合替换为空集合，保证核心引擎的"空而非缺失"约定
func (p *ParseResult) Normalize() {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Emails == nil {
		p.Emails = []string{}
	}
	if p.Phones == nil {
		p.Phones = []string{}
	}
	if p.Experience == nil {
		p.Experience = []ExperienceEntry{}
	}
	if p.Education == nil {
		p.Education = []EducationEntry{}
	}
}

// AnalysisStatusDone 核心分析完成后的唯一状态值
const AnalysisStatusDone = "DONE"

// AnalysisResult 一次分析调用的完整结果
type AnalysisResult struct {
	ResumeID        string      `json:"resumeId"`        // 透传的提交标识
	Status          string      `json:"status"`          // 完成后固定为DONE
	Score           int         `json:"score"`           // [0,100]
	SkillsMatched   []string    `json:"skillsMatched"`   // 命中的规范技能名
	SkillsMissing   []string    `json:"skillsMissing"`   // 缺失的规范技能名
	Recommendations []string    `json:"recommendations"` // 按优先级降序的建议
	ParserResult    ParseResult `json:"parserResult"`    // 原样回传的解析结果
}
