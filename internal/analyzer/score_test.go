package analyzer

import (
	"fmt"
	"testing"

	"resume-analyzer-go/internal/catalog"
	"resume-analyzer-go/internal/types"

	"github.com/stretchr/testify/assert"
)

// TestSkillMatchScoreBaseline JD要求集合为空时加权前子分数恰为80.0
func TestSkillMatchScoreBaseline(t *testing.T) {
	cat := catalog.Default()
	score := calculateSkillMatchScore(map[string]bool{}, map[string]bool{}, cat)
	assert.Equal(t, 80.0, score)
}

// TestSkillMatchScoreDemandBonus 命中比例加平均热度10%的加成，封顶100
func TestSkillMatchScoreDemandBonus(t *testing.T) {
	cat := catalog.Default()

	required := map[string]bool{"Java": true, "Spring Boot": true, "AWS": true}
	matched := map[string]bool{"Java": true}

	// 1/3*100 + Java热度90*0.1
	score := calculateSkillMatchScore(matched, required, cat)
	assert.InDelta(t, 100.0/3+9.0, score, 0.0001)

	// 全部命中时被封顶
	full := map[string]bool{"Java": true, "Spring Boot": true, "AWS": true}
	assert.Equal(t, 100.0, calculateSkillMatchScore(full, required, cat))
}

// TestExperienceScore 经验子分数的保底、年限与晋升加成
func TestExperienceScore(t *testing.T) {
	cat := catalog.Default()

	t.Run("无经历条目返回保底20", func(t *testing.T) {
		parse := &types.ParseResult{RawText: "10 years of experience"}
		parse.Normalize()
		assert.Equal(t, 20.0, calculateExperienceScore(parse, cat))
	})

	t.Run("年限乘10", func(t *testing.T) {
		parse := &types.ParseResult{
			RawText:    "3 years of experience building services",
			Experience: []types.ExperienceEntry{{Company: "Acme"}},
		}
		assert.Equal(t, 30.0, calculateExperienceScore(parse, cat))
	})

	t.Run("晋升语言加15", func(t *testing.T) {
		parse := &types.ParseResult{
			RawText:    "3 years of experience, promoted twice",
			Experience: []types.ExperienceEntry{{Company: "Acme"}},
		}
		assert.Equal(t, 45.0, calculateExperienceScore(parse, cat))
	})

	t.Run("封顶100", func(t *testing.T) {
		parse := &types.ParseResult{
			RawText:    "15 years of experience as lead architect",
			Experience: []types.ExperienceEntry{{Company: "Acme"}},
		}
		assert.Equal(t, 100.0, calculateExperienceScore(parse, cat))
	})
}

// TestExtractExperienceYears 年限模式按序取首个命中
func TestExtractExperienceYears(t *testing.T) {
	cat := catalog.Default()

	cases := []struct {
		text string
		want int
	}{
		{"5 years of experience", 5},
		{"7+ yrs experience in Go", 7},
		{"experience spanning 4 years", 4},
		{"12 years in industry, broad experience", 12},
		{"no numbers here", 0},
		{"", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, extractExperienceYears(tc.text, cat), "文本: %q", tc.text)
	}
}

// TestStructureScore 结构子分数各项加分
func TestStructureScore(t *testing.T) {
	full := &types.ParseResult{
		Emails:     []string{"a@b.com"},
		Phones:     []string{"123"},
		Experience: []types.ExperienceEntry{{}},
		Education:  []types.EducationEntry{{}},
		Skills:     []string{"Java", "Docker", "SQL"},
	}
	assert.Equal(t, 40.0, calculateStructureScore(full))

	empty := &types.ParseResult{}
	empty.Normalize()
	assert.Equal(t, 0.0, calculateStructureScore(empty))

	// 技能不足3个时不加那5分
	twoSkills := &types.ParseResult{Skills: []string{"Java", "Docker"}}
	assert.Equal(t, 0.0, calculateStructureScore(twoSkills))
}

// TestSkillDiversityScore 分类数与高热度加成，封顶30
func TestSkillDiversityScore(t *testing.T) {
	cat := catalog.Default()

	t.Run("无技能得0", func(t *testing.T) {
		parse := &types.ParseResult{}
		parse.Normalize()
		assert.Equal(t, 0.0, calculateSkillDiversityScore(parse, cat))
	})

	t.Run("单分类加高热度", func(t *testing.T) {
		// "Python"归入backend(首个命中分类)，热度94>85
		parse := &types.ParseResult{Skills: []string{"Python"}}
		assert.Equal(t, 8.0, calculateSkillDiversityScore(parse, cat))
	})

	t.Run("多分类封顶30", func(t *testing.T) {
		parse := &types.ParseResult{Skills: []string{
			"Java", "React", "Docker", "Android", "Machine Learning", "Kubernetes",
		}}
		// 分类数>=5即达到30，高热度加成后仍封顶30
		assert.Equal(t, 30.0, calculateSkillDiversityScore(parse, cat))
	})
}

// TestContentRichnessScore 丰富度子分数
func TestContentRichnessScore(t *testing.T) {
	cat := catalog.Default()

	t.Run("空文本只得无代词的2分", func(t *testing.T) {
		parse := &types.ParseResult{RawText: ""}
		assert.Equal(t, 2.0, calculateContentRichnessScore(parse, cat))
	})

	t.Run("满信号", func(t *testing.T) {
		words := make([]string, 0, 210)
		words = append(words,
			"Developed", "services", "improved", "throughput", "by", "40%",
			"responsible", "for", "projects", "and", "achievements")
		for len(words) < 210 {
			words = append(words, "engineering")
		}
		parse := &types.ParseResult{RawText: joinWords(words)}
		// 词数档(+10) 量化成果(+8) 行为动词(+6) 专业语气(+4) 无代词(+2) 封顶30
		assert.Equal(t, 30.0, calculateContentRichnessScore(parse, cat))
	})

	t.Run("人称代词扣掉2分加成", func(t *testing.T) {
		withPronoun := &types.ParseResult{RawText: "I built things"}
		withoutPronoun := &types.ParseResult{RawText: "Built things"}
		diff := calculateContentRichnessScore(withoutPronoun, cat) - calculateContentRichnessScore(withPronoun, cat)
		assert.Equal(t, 2.0, diff)
	})
}

// TestScoreBounds 任意合法输入下总分都落在[0,100]
func TestScoreBounds(t *testing.T) {
	cat := catalog.Default()

	empty := types.ParseResult{}
	empty.Normalize()

	rich := types.ParseResult{
		RawText: "Senior engineer, 20 years of experience, promoted to principal. " +
			"Developed and improved systems, increased revenue by 300%.",
		Skills:     []string{"Java", "Python", "React", "Docker", "AWS"},
		Emails:     []string{"a@b.com"},
		Phones:     []string{"123"},
		Experience: []types.ExperienceEntry{{}},
		Education:  []types.EducationEntry{{}},
	}

	parses := []types.ParseResult{empty, rich}
	jds := []string{"", "   ", "Java Spring Boot AWS senior", "nothing relevant"}

	engine := NewEngine(cat)
	for i, parse := range parses {
		for j, jd := range jds {
			result := engine.Analyze(parse, jd, fmt.Sprintf("id-%d-%d", i, j))
			assert.GreaterOrEqual(t, result.Score, 0)
			assert.LessOrEqual(t, result.Score, 100)
		}
	}
}

func joinWords(words []string) string {
	out := ""
	for i, w := range words {
		if i > 0 {
			out += " "
		}
		out += w
	}
	return out
}
