package analyzer

import (
	"strings"
	"testing"

	"resume-analyzer-go/internal/catalog"
	"resume-analyzer-go/internal/types"

	"github.com/stretchr/testify/assert"
)

// TestGenerateJDRecommendationsPriority 缺失技能按重要度降序取前5
func TestGenerateJDRecommendationsPriority(t *testing.T) {
	cat := catalog.Default()

	missing := map[string]bool{
		"Java":        true, // 95
		"Spring Boot": true, // 95
		"Python":      true, // 90
		"AWS":         true, // 90
		"React":       true, // 88
		"Docker":      true, // 85
		"Git":         true, // 80
	}

	recs := GenerateJDRecommendations(missing, "plain role", cat)

	// 7项缺失只保留前5条技能建议，JD无角色提示语
	assert.Len(t, recs, 5)
	assert.Contains(t, recs[0], "Java")
	assert.Contains(t, recs[1], "Spring Boot")
	assert.Contains(t, recs[2], "AWS")
	assert.Contains(t, recs[3], "Python")
	assert.Contains(t, recs[4], "React")
	for _, rec := range recs {
		assert.Contains(t, rec, "to match job requirements")
	}
}

// TestGenerateJDRecommendationsRoleCues JD语言触发的角色提示
func TestGenerateJDRecommendationsRoleCues(t *testing.T) {
	cat := catalog.Default()

	t.Run("senior触发两条领导力提示", func(t *testing.T) {
		recs := GenerateJDRecommendations(map[string]bool{}, "Senior backend role", cat)
		assert.Len(t, recs, 2)
		assert.Contains(t, recs[0], "leadership")
		assert.Contains(t, recs[1], "project management")
	})

	t.Run("startup触发适应性提示", func(t *testing.T) {
		recs := GenerateJDRecommendations(map[string]bool{}, "fast-paced startup", cat)
		assert.Len(t, recs, 1)
		assert.Contains(t, recs[0], "adaptability")
	})

	t.Run("提示不受前5上限约束", func(t *testing.T) {
		missing := map[string]bool{
			"Java": true, "Spring Boot": true, "Python": true,
			"AWS": true, "React": true, "Docker": true,
		}
		recs := GenerateJDRecommendations(missing, "senior role at a fast-paced startup", cat)
		assert.Len(t, recs, 5+3)
	})
}

// TestGenerateQualityRecommendations 质量模式的分组与截断
func TestGenerateQualityRecommendations(t *testing.T) {
	cat := catalog.Default()

	t.Run("稀疏简历命中结构建议且不超过10条", func(t *testing.T) {
		parse := &types.ParseResult{
			RawText: "I did some stuff.",
			Skills:  []string{"Python"},
		}
		parse.Normalize()

		recs := GenerateQualityRecommendations(parse, cat)

		assert.LessOrEqual(t, len(recs), 10)
		joined := strings.Join(recs, "\n")
		assert.Contains(t, joined, "email")
		assert.Contains(t, joined, "phone")
		assert.Contains(t, joined, "work experience")
		// 结构建议排在通用职业建议之前
		emailIdx := indexOfSubstring(recs, "email")
		tailorIdx := indexOfSubstring(recs, "Tailor your resume")
		if tailorIdx >= 0 {
			assert.Less(t, emailIdx, tailorIdx)
		}
	})

	t.Run("过长简历插入实际词数", func(t *testing.T) {
		long := strings.Repeat("word ", 900)
		parse := &types.ParseResult{
			RawText:    long,
			Emails:     []string{"a@b.com"},
			Phones:     []string{"123"},
			Experience: []types.ExperienceEntry{{}},
			Skills:     []string{"Java", "React", "Docker", "SQL", "Git"},
		}
		parse.Normalize()

		recs := GenerateQualityRecommendations(parse, cat)
		joined := strings.Join(recs, "\n")
		assert.Contains(t, joined, "too long (900 words)")
	})

	t.Run("角色热门技能最多推荐两项", func(t *testing.T) {
		parse := &types.ParseResult{
			RawText:    "Backend developer using spring and java daily. Developed APIs, improved latency by 30%. Responsible for projects.",
			Emails:     []string{"a@b.com"},
			Phones:     []string{"123"},
			Experience: []types.ExperienceEntry{{}},
			Education:  []types.EducationEntry{{}},
			Skills:     []string{"Java", "SQL", "Git", "Docker", "Maven"},
		}

		recs := GenerateQualityRecommendations(parse, cat)

		trendingCount := 0
		for _, rec := range recs {
			if strings.Contains(rec, "Consider learning") {
				trendingCount++
				assert.Contains(t, rec, "backend roles")
			}
		}
		assert.LessOrEqual(t, trendingCount, 2)
	})
}

func indexOfSubstring(items []string, substr string) int {
	for i, item := range items {
		if strings.Contains(item, substr) {
			return i
		}
	}
	return -1
}
