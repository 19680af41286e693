package analyzer

import (
	"math"

	"resume-analyzer-go/internal/catalog"
	"resume-analyzer-go/internal/types"
)

// JD相对评分权重: 技能50% + 经验30% + 内容质量20%
const (
	weightSkillMatch     = 0.5
	weightExperience     = 0.3
	weightContentQuality = 0.2
)

// 简历质量评分权重: 结构40% + 多样性30% + 丰富度30%
const (
	weightStructure = 0.4
	weightDiversity = 0.3
	weightRichness  = 0.3
)

// CalculateJDScore JD相对模式的综合评分，结果落在[0,100]
func CalculateJDScore(matched, jdSkills map[string]bool, parse *types.ParseResult, cat *catalog.Catalog) int {
	skillScore := calculateSkillMatchScore(matched, jdSkills, cat)
	experienceScore := calculateExperienceScore(parse, cat)
	contentScore := calculateContentRichnessScore(parse, cat)

	final := skillScore*weightSkillMatch + experienceScore*weightExperience + contentScore*weightContentQuality
	score := int(math.Round(final))
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// CalculateQualityScore 无JD时的简历质量评分
// 各子分数自带上限，加权和天然不超过100，不再额外截断
func CalculateQualityScore(parse *types.ParseResult, cat *catalog.Catalog) int {
	structureScore := calculateStructureScore(parse)
	diversityScore := calculateSkillDiversityScore(parse, cat)
	richnessScore := calculateContentRichnessScore(parse, cat)

	final := structureScore*weightStructure + diversityScore*weightDiversity + richnessScore*weightRichness
	return int(math.Round(final))
}

// calculateSkillMatchScore 技能匹配子分数
// JD要求集合为空时固定返回基线80.0;
// 否则为命中比例*100，再加命中技能平均市场热度的10%作为加成，上限100
func calculateSkillMatchScore(matched, required map[string]bool, cat *catalog.Catalog) float64 {
	if len(required) == 0 {
		return 80.0
	}

	basicMatch := float64(len(matched)) / float64(len(required)) * 100

	demandBonus := 0.0
	if len(matched) > 0 {
		total := 0
		for skill := range matched {
			total += cat.DemandOf(skill)
		}
		demandBonus = float64(total) / float64(len(matched)) * 0.1
	}

	return math.Min(100.0, basicMatch+demandBonus)
}

// calculateExperienceScore 经验子分数
// 无工作经历条目时返回保底20.0; 否则年限*10封顶100，
// 文本含职业晋升语言再加15，最终仍封顶100
func calculateExperienceScore(parse *types.ParseResult, cat *catalog.Catalog) float64 {
	if len(parse.Experience) == 0 {
		return 20.0
	}

	years := extractExperienceYears(parse.RawText, cat)
	score := math.Min(100.0, float64(years)*10)

	if hasCareerProgression(parse.RawText, cat) {
		score += 15
	}

	return math.Min(100.0, score)
}

// calculateStructureScore 结构子分数，满分40
// 邮箱+5 电话+5 工作经历+15 教育经历+10 技能数>=3再+5
func calculateStructureScore(parse *types.ParseResult) float64 {
	score := 0.0
	if len(parse.Emails) > 0 {
		score += 5.0
	}
	if len(parse.Phones) > 0 {
		score += 5.0
	}
	if len(parse.Experience) > 0 {
		score += 15.0
	}
	if len(parse.Education) > 0 {
		score += 10.0
	}
	if len(parse.Skills) >= 3 {
		score += 5.0
	}
	return math.Min(40.0, score)
}

// calculateSkillDiversityScore 技能多样性子分数，满分30
// 按分类数*6计分，高热度技能(热度>85)每个+2最多+10，总分封顶30
func calculateSkillDiversityScore(parse *types.ParseResult, cat *catalog.Catalog) float64 {
	if len(parse.Skills) == 0 {
		return 0.0
	}

	categories := make(map[string]bool)
	for _, skill := range parse.Skills {
		categories[categorizeSkill(skill, cat)] = true
	}

	score := math.Min(30.0, float64(len(categories))*6.0)

	highDemand := 0
	for _, skill := range parse.Skills {
		if cat.DemandOf(skill) > catalog.HighDemandThreshold {
			highDemand++
		}
	}
	score += math.Min(10.0, float64(highDemand)*2.0)

	return math.Min(30.0, score)
}

// calculateContentRichnessScore 内容丰富度子分数，满分30
// 词数档位加成(200-600词+10, >100词+5)，
// 可量化成果+8 行为动词+6 专业语气+4 无人称代词+2
// JD相对模式的内容质量子分数复用同一计算
func calculateContentRichnessScore(parse *types.ParseResult, cat *catalog.Catalog) float64 {
	score := 0.0
	rawText := parse.RawText

	words := wordCount(rawText)
	if words >= 200 && words <= 600 {
		score += 10.0
	} else if words > 100 {
		score += 5.0
	}

	if hasQuantifiableAchievements(rawText, &cat.ScoreSignals) {
		score += 8.0
	}
	if hasActionVerbs(rawText, &cat.ScoreSignals) {
		score += 6.0
	}
	if hasProfessionalTone(rawText, cat) {
		score += 4.0
	}
	if !containsPersonalPronouns(rawText, &cat.ScoreSignals) {
		score += 2.0
	}

	return math.Min(30.0, score)
}
