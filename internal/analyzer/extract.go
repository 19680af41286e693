package analyzer

import (
	"strings"

	"resume-analyzer-go/internal/catalog"
)

// ExtractJDSkills 扫描JD文本，返回其要求的规范技能名集合。
// 对变体表逐项做小写子串匹配，任一变体命中即记入该技能并跳过其余变体。
// 刻意不做词边界检查，宁可多召回("js"可能命中无关单词内部，已知误报来源)。
func ExtractJDSkills(jdText string, cat *catalog.Catalog) map[string]bool {
	lower := strings.ToLower(jdText)
	extracted := make(map[string]bool)

	for _, entry := range cat.Variations {
		for _, variation := range entry.Variations {
			if strings.Contains(lower, variation) {
				extracted[entry.Canonical] = true
				break // 该技能已命中，检查下一项
			}
		}
	}

	return extracted
}

// AugmentFromRawText 在简历原始文本中补检上游解析可能漏报的技能。
// 两趟扫描取并集:
//  1. 对每个JD要求技能，检查技能名本身、去空格形式、连字符形式的包含;
//  2. 补充同义词表，仅对同时出现在JD要求集合中的技能生效，
//     避免向简历技能集合注入无关检测结果。
func AugmentFromRawText(rawText string, jdSkills map[string]bool, cat *catalog.Catalog) map[string]bool {
	lower := strings.ToLower(rawText)
	additional := make(map[string]bool)

	for skill := range jdSkills {
		if containsSkillVariation(lower, strings.ToLower(skill)) {
			additional[skill] = true
		}
	}

	for _, entry := range cat.CommonSkillSynonyms {
		if !jdSkills[entry.Canonical] {
			continue
		}
		for _, variation := range entry.Variations {
			if strings.Contains(lower, variation) {
				additional[entry.Canonical] = true
				break
			}
		}
	}

	return additional
}

// containsSkillVariation 检查技能的三种字面形式是否出现在文本中
func containsSkillVariation(lowerText, lowerSkill string) bool {
	return strings.Contains(lowerText, lowerSkill) ||
		strings.Contains(lowerText, strings.ReplaceAll(lowerSkill, " ", "")) ||
		strings.Contains(lowerText, strings.ReplaceAll(lowerSkill, " ", "-"))
}
