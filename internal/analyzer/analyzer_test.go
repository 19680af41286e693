package analyzer

import (
	"strings"
	"testing"

	"resume-analyzer-go/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAnalyzeWithJobDescription JD相对模式的端到端场景
func TestAnalyzeWithJobDescription(t *testing.T) {
	engine := NewEngine(nil)

	parse := types.ParseResult{
		RawText: "Backend engineer with 3 years of experience. Led a team of four building services.",
		Skills:  []string{"java", "docker"},
	}
	jdText := "We need a Java, Spring Boot, AWS engineer, senior role."

	result := engine.Analyze(parse, jdText, "sub-001")

	assert.Equal(t, "sub-001", result.ResumeID)
	assert.Equal(t, types.AnalysisStatusDone, result.Status)

	// JD要求集合 = {Java, Spring Boot, AWS}
	assert.Contains(t, result.SkillsMatched, "Java")
	assert.Contains(t, result.SkillsMissing, "Spring Boot")
	assert.Contains(t, result.SkillsMissing, "AWS")

	// 划分不变量
	total := len(result.SkillsMatched) + len(result.SkillsMissing)
	assert.Equal(t, 3, total)
	for _, s := range result.SkillsMatched {
		assert.NotContains(t, result.SkillsMissing, s)
	}

	// 缺失技能建议含Spring Boot，JD含senior触发领导力提示
	joined := strings.Join(result.Recommendations, "\n")
	assert.Contains(t, joined, "Spring Boot")
	assert.Contains(t, joined, "leadership")

	assert.GreaterOrEqual(t, result.Score, 0)
	assert.LessOrEqual(t, result.Score, 100)
}

// TestAnalyzeQualityMode 质量模式的端到端场景(稀疏简历)
func TestAnalyzeQualityMode(t *testing.T) {
	engine := NewEngine(nil)

	parse := types.ParseResult{
		RawText: "I did some stuff.",
		Skills:  []string{"Python"},
	}

	result := engine.Analyze(parse, "", "sub-002")

	assert.Equal(t, types.AnalysisStatusDone, result.Status)
	// 质量模式回显解析技能，缺失集合为空
	assert.Equal(t, []string{"Python"}, result.SkillsMatched)
	assert.Empty(t, result.SkillsMissing)

	joined := strings.Join(result.Recommendations, "\n")
	assert.Contains(t, joined, "email")
	assert.Contains(t, joined, "phone")
	assert.Contains(t, joined, "work experience")
	assert.LessOrEqual(t, len(result.Recommendations), 10)

	assert.GreaterOrEqual(t, result.Score, 0)
	assert.LessOrEqual(t, result.Score, 100)
}

// TestAnalyzeBlankJDRoutesToQualityMode 纯空白JD走质量模式
func TestAnalyzeBlankJDRoutesToQualityMode(t *testing.T) {
	engine := NewEngine(nil)

	parse := types.ParseResult{
		RawText: "Java developer",
		Skills:  []string{"Java"},
	}

	for _, jd := range []string{"", "   ", "\t\n  "} {
		result := engine.Analyze(parse, jd, "sub-003")
		// 质量模式的标志: 缺失集合为空且命中集合是解析技能的回显
		assert.Empty(t, result.SkillsMissing, "JD=%q", jd)
		assert.Equal(t, []string{"Java"}, result.SkillsMatched, "JD=%q", jd)
	}
}

// TestAnalyzeEchoesParserResult 输入解析结果原样回传
func TestAnalyzeEchoesParserResult(t *testing.T) {
	engine := NewEngine(nil)

	parse := types.ParseResult{
		RawText:    "Senior engineer, 6 years of experience.",
		Skills:     []string{"Java", "AWS"},
		Emails:     []string{"dev@example.com"},
		Phones:     []string{"+8613800138000"},
		Experience: []types.ExperienceEntry{{Company: "Acme", Title: "Engineer"}},
		Education:  []types.EducationEntry{{School: "THU", Degree: "BSc"}},
	}

	result := engine.Analyze(parse, "Java and AWS, senior", "sub-004")

	require.Equal(t, parse, result.ParserResult)
}

// TestAnalyzeEmptyEverything 全空输入仍产出合法结果
func TestAnalyzeEmptyEverything(t *testing.T) {
	engine := NewEngine(nil)

	result := engine.Analyze(types.ParseResult{}, "", "sub-005")

	assert.Equal(t, types.AnalysisStatusDone, result.Status)
	assert.GreaterOrEqual(t, result.Score, 0)
	assert.LessOrEqual(t, result.Score, 100)
	assert.NotNil(t, result.SkillsMatched)
	assert.NotNil(t, result.SkillsMissing)
	assert.NotEmpty(t, result.Recommendations)
}
