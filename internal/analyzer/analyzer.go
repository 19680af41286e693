// Package analyzer 实现简历分析核心引擎:
// 技能抽取、技能匹配、多信号加权评分和建议生成。
// 所有组件都是纯函数，只依赖输入和进程级只读目录，可安全并发调用。
package analyzer

import (
	"sort"
	"strings"

	"resume-analyzer-go/internal/catalog"
	"resume-analyzer-go/internal/types"
)

// Engine 分析引擎，持有只读目录引用，本身无状态
type Engine struct {
	cat *catalog.Catalog
}

// NewEngine 创建分析引擎; cat为nil时使用内置目录
func NewEngine(cat *catalog.Catalog) *Engine {
	if cat == nil {
		cat = catalog.Default()
	}
	return &Engine{cat: cat}
}

// Analyze 对一份解析结果执行完整分析。
// JD文本去除首尾空白后非空走JD相对模式，否则走简历质量模式。
// 对良构输入是全函数: 总是产出结果，不存在部分失败。
func (e *Engine) Analyze(parse types.ParseResult, jdText string, resumeID string) types.AnalysisResult {
	parse.Normalize()

	result := types.AnalysisResult{
		ResumeID:     resumeID,
		Status:       types.AnalysisStatusDone,
		ParserResult: parse,
	}

	if strings.TrimSpace(jdText) != "" {
		e.analyzeWithJobDescription(&result, &parse, jdText)
	} else {
		e.analyzeQuality(&result, &parse)
	}

	return result
}

// analyzeWithJobDescription JD相对模式:
// 抽取JD技能 -> 文本补检简历技能 -> 匹配 -> 评分 -> 建议
func (e *Engine) analyzeWithJobDescription(result *types.AnalysisResult, parse *types.ParseResult, jdText string) {
	jdSkills := ExtractJDSkills(jdText, e.cat)

	additional := AugmentFromRawText(parse.RawText, jdSkills, e.cat)
	allResumeSkills := make([]string, 0, len(parse.Skills)+len(additional))
	allResumeSkills = append(allResumeSkills, parse.Skills...)
	for skill := range additional {
		allResumeSkills = append(allResumeSkills, skill)
	}

	matched, missing := MatchSkills(allResumeSkills, jdSkills)

	result.SkillsMatched = sortedSet(matched)
	result.SkillsMissing = sortedSet(missing)
	result.Score = CalculateJDScore(matched, jdSkills, parse, e.cat)
	result.Recommendations = GenerateJDRecommendations(missing, jdText, e.cat)
}

// analyzeQuality 质量模式: 直接对解析器上报的技能列表评估，
// 命中集合回显解析技能，缺失集合为空
func (e *Engine) analyzeQuality(result *types.AnalysisResult, parse *types.ParseResult) {
	result.SkillsMatched = parse.Skills
	result.SkillsMissing = []string{}
	result.Score = CalculateQualityScore(parse, e.cat)
	result.Recommendations = GenerateQualityRecommendations(parse, e.cat)
}

// sortedSet 集合转有序切片，保证输出确定性
func sortedSet(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
