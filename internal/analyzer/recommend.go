package analyzer

import (
	"fmt"
	"sort"
	"strings"

	"resume-analyzer-go/internal/catalog"
	"resume-analyzer-go/internal/types"
)

// 缺失技能建议最多取重要度最高的前5项
const maxMissingSkillRecommendations = 5

// 质量模式建议总数上限
const maxQualityRecommendations = 10

// GenerateJDRecommendations JD模式的建议列表:
// 缺失技能按重要度降序(同分按字母序保证稳定)取前5条模板建议，
// 再根据JD语言追加角色相关提示。除前5限制外总数不设上限。
func GenerateJDRecommendations(missing map[string]bool, jdText string, cat *catalog.Catalog) []string {
	prioritized := make([]string, 0, len(missing))
	for skill := range missing {
		prioritized = append(prioritized, skill)
	}
	sort.Slice(prioritized, func(i, j int) bool {
		ii, ij := cat.ImportanceOf(prioritized[i]), cat.ImportanceOf(prioritized[j])
		if ii != ij {
			return ii > ij
		}
		return prioritized[i] < prioritized[j]
	})
	if len(prioritized) > maxMissingSkillRecommendations {
		prioritized = prioritized[:maxMissingSkillRecommendations]
	}

	recommendations := make([]string, 0, len(prioritized)+3)
	for _, skill := range prioritized {
		recommendations = append(recommendations,
			fmt.Sprintf("Learn %s to match job requirements - high priority for this role", skill))
	}

	lowerJD := strings.ToLower(jdText)
	if strings.Contains(lowerJD, "senior") || strings.Contains(lowerJD, "lead") {
		recommendations = append(recommendations,
			"👨‍💼 Highlight leadership and mentoring experience for senior roles",
			"📋 Emphasize project management and team coordination skills")
	}
	if strings.Contains(lowerJD, "startup") || strings.Contains(lowerJD, "fast-paced") {
		recommendations = append(recommendations,
			"⚡ Showcase adaptability and ability to wear multiple hats")
	}

	return recommendations
}

// GenerateQualityRecommendations 质量模式的建议列表:
// 结构、内容、技能、通用职业建议四组按序拼接，截断到前10条
func GenerateQualityRecommendations(parse *types.ParseResult, cat *catalog.Catalog) []string {
	suggestions := make([]string, 0, 12)
	suggestions = append(suggestions, structuralSuggestions(parse)...)
	suggestions = append(suggestions, contentSuggestions(parse, cat)...)
	suggestions = append(suggestions, skillSuggestions(parse, cat)...)
	suggestions = append(suggestions, careerAdvice()...)

	if len(suggestions) > maxQualityRecommendations {
		suggestions = suggestions[:maxQualityRecommendations]
	}
	return suggestions
}

// structuralSuggestions 结构性缺陷: 缺联系方式、缺经历、篇幅过长或过短
func structuralSuggestions(parse *types.ParseResult) []string {
	var suggestions []string

	if len(parse.Emails) == 0 {
		suggestions = append(suggestions, "📧 Add a professional email address to your contact information")
	}
	if len(parse.Phones) == 0 {
		suggestions = append(suggestions, "📱 Include a phone number for easy contact")
	}
	if len(parse.Experience) == 0 {
		suggestions = append(suggestions, "💼 Add detailed work experience with specific achievements")
	}

	words := wordCount(parse.RawText)
	if words > 800 {
		suggestions = append(suggestions,
			fmt.Sprintf("📄 Resume is too long (%d words). Aim for 400-600 words", words))
	} else if words < 200 {
		suggestions = append(suggestions, "📄 Resume seems brief. Add more details about your achievements")
	}

	return suggestions
}

// contentSuggestions 内容性缺陷，使用建议侧的信号词表
func contentSuggestions(parse *types.ParseResult, cat *catalog.Catalog) []string {
	var suggestions []string
	rawText := parse.RawText

	if !hasQuantifiableAchievements(rawText, &cat.AdviceSignals) {
		suggestions = append(suggestions,
			"📊 Add quantifiable achievements (e.g., 'Improved performance by 30%', 'Led team of 5')")
	}
	if !hasActionVerbs(rawText, &cat.AdviceSignals) {
		suggestions = append(suggestions,
			"⚡ Use strong action verbs like 'developed', 'implemented', 'optimized', 'led'")
	}
	if containsPersonalPronouns(rawText, &cat.AdviceSignals) {
		suggestions = append(suggestions,
			"✏️ Remove personal pronouns (I, me, my) for more professional tone")
	}

	return suggestions
}

// skillSuggestions 技能不足与角色热门技能推荐(最多2项)
func skillSuggestions(parse *types.ParseResult, cat *catalog.Catalog) []string {
	var suggestions []string

	if len(parse.Skills) < 5 {
		suggestions = append(suggestions, "🔧 Add more relevant technical skills to strengthen your profile")
	}

	role := detectRole(parse.RawText, cat)
	trending := cat.TrendingFor(role)
	if len(trending) > 2 {
		trending = trending[:2]
	}
	for _, skill := range trending {
		if !containsSkillIgnoreCase(parse.Skills, skill) {
			suggestions = append(suggestions,
				fmt.Sprintf("🚀 Consider learning %s - high market demand in %s roles", skill, role))
		}
	}

	return suggestions
}

// careerAdvice 固定的通用职业建议
func careerAdvice() []string {
	return []string{
		"🎯 Tailor your resume for each job application",
		"🔗 Add links to your portfolio, GitHub, or LinkedIn profile",
		"📈 Focus on impact and results rather than just responsibilities",
	}
}

func containsSkillIgnoreCase(skills []string, target string) bool {
	for _, skill := range skills {
		if strings.EqualFold(skill, target) {
			return true
		}
	}
	return false
}
