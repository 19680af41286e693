package analyzer

import (
	"strconv"
	"strings"

	"resume-analyzer-go/internal/catalog"
)

// 文本启发式信号的统一实现。评分组件和建议组件共用这里的探测逻辑，
// 但各自传入目录中自己的那份信号词表(两份词表历史上已经漂移，行为均保留)。

// wordCount 按空白切分统计词数
func wordCount(text string) int {
	return len(strings.Fields(text))
}

// hasQuantifiableAchievements 检查文本是否包含可量化成果
// 模式作用于原始文本，区分大小写
func hasQuantifiableAchievements(rawText string, signals *catalog.SignalSet) bool {
	for _, pattern := range signals.AchievementPatterns {
		if pattern.MatchString(rawText) {
			return true
		}
	}
	return false
}

// hasActionVerbs 检查小写文本是否包含任一行为动词
func hasActionVerbs(rawText string, signals *catalog.SignalSet) bool {
	lower := strings.ToLower(rawText)
	for _, verb := range signals.ActionVerbs {
		if strings.Contains(lower, verb) {
			return true
		}
	}
	return false
}

// containsPersonalPronouns 检查是否出现人称代词
// 前后补空格后做包含判断，避免命中单词内部
func containsPersonalPronouns(rawText string, signals *catalog.SignalSet) bool {
	padded := " " + strings.ToLower(rawText) + " "
	for _, pronoun := range signals.Pronouns {
		if strings.Contains(padded, pronoun) {
			return true
		}
	}
	return false
}

// hasProfessionalTone 专业词出现次数严格大于随意词出现次数
// 整词计数: 按空白切分后逐词精确比较
func hasProfessionalTone(rawText string, cat *catalog.Catalog) bool {
	lower := strings.ToLower(rawText)
	professional := countWordOccurrences(lower, cat.ProfessionalTerms)
	casual := countWordOccurrences(lower, cat.CasualTerms)
	return professional > casual
}

func countWordOccurrences(lowerText string, terms []string) int {
	words := strings.Fields(lowerText)
	count := 0
	for _, term := range terms {
		for _, w := range words {
			if w == term {
				count++
			}
		}
	}
	return count
}

// extractExperienceYears 从文本抽取工作年限
// 按序尝试各模式，取首个命中的捕获组1；全部未命中返回0
func extractExperienceYears(rawText string, cat *catalog.Catalog) int {
	lower := strings.ToLower(rawText)
	for _, pattern := range cat.ExperienceYearPatterns {
		if m := pattern.FindStringSubmatch(lower); m != nil {
			if years, err := strconv.Atoi(m[1]); err == nil {
				return years
			}
		}
	}
	return 0
}

// hasCareerProgression 检查职业晋升语言
func hasCareerProgression(rawText string, cat *catalog.Catalog) bool {
	lower := strings.ToLower(rawText)
	for _, keyword := range cat.ProgressionKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// categorizeSkill 把技能映射到分类，首个命中的分类生效
// 双向子串匹配: 技能包含片段或片段包含技能
func categorizeSkill(skill string, cat *catalog.Catalog) string {
	lower := strings.ToLower(skill)
	for _, category := range cat.Taxonomy {
		for _, fragment := range category.Skills {
			if strings.Contains(lower, fragment) || strings.Contains(fragment, lower) {
				return category.Name
			}
		}
	}
	return "other"
}

// detectRole 从简历文本探测目标角色，按关键词组声明顺序优先，缺省general
func detectRole(rawText string, cat *catalog.Catalog) string {
	lower := strings.ToLower(rawText)
	for _, group := range cat.RoleDetection {
		for _, keyword := range group.Keywords {
			if strings.Contains(lower, keyword) {
				return group.Role
			}
		}
	}
	return "general"
}
