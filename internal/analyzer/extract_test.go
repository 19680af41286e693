package analyzer

import (
	"testing"

	"resume-analyzer-go/internal/catalog"

	"github.com/stretchr/testify/assert"
)

// TestExtractJDSkills 验证JD技能抽取的变体匹配
func TestExtractJDSkills(t *testing.T) {
	cat := catalog.Default()

	cases := []struct {
		name   string
		jdText string
		want   []string
	}{
		{
			name:   "规范名直接命中",
			jdText: "We need a Java, Spring Boot, AWS engineer, senior role.",
			want:   []string{"AWS", "Java", "Spring Boot"},
		},
		{
			name:   "变体命中",
			jdText: "Looking for springboot and containerization experience with ec2.",
			want:   []string{"AWS", "Docker", "Spring Boot"},
		},
		{
			name:   "无技能",
			jdText: "We value teamwork and communication.",
			want:   []string{},
		},
		{
			name:   "子串误报是已知取舍",
			jdText: "Join our cloudy mission.", // "cloud"作为子串命中AWS
			want:   []string{"AWS"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractJDSkills(tc.jdText, cat)
			gotList := sortedSet(got)
			assert.Equal(t, tc.want, gotList)
		})
	}
}

// TestAugmentFromRawText 验证简历文本补检
func TestAugmentFromRawText(t *testing.T) {
	cat := catalog.Default()

	t.Run("三种字面形式", func(t *testing.T) {
		jd := map[string]bool{"Spring Boot": true}
		assert.True(t, AugmentFromRawText("built with spring boot", jd, cat)["Spring Boot"])
		assert.True(t, AugmentFromRawText("built with springboot", jd, cat)["Spring Boot"])
		assert.True(t, AugmentFromRawText("built with spring-boot", jd, cat)["Spring Boot"])
		assert.Empty(t, AugmentFromRawText("built with rails", jd, cat))
	})

	t.Run("同义词仅对JD要求的技能生效", func(t *testing.T) {
		rawText := "wrote node services and restful endpoints"

		// JavaScript在JD要求中: "node"同义词触发补检
		jd := map[string]bool{"JavaScript": true}
		additional := AugmentFromRawText(rawText, jd, cat)
		assert.True(t, additional["JavaScript"])

		// JD不要求JavaScript时，不因同义词污染简历技能集合
		additional = AugmentFromRawText(rawText, map[string]bool{"Docker": true}, cat)
		assert.False(t, additional["JavaScript"])
	})

	t.Run("空JD集合不产生补检", func(t *testing.T) {
		additional := AugmentFromRawText("python everywhere", map[string]bool{}, cat)
		assert.Empty(t, additional)
	})
}

// TestMatchSkills 验证交并差与划分不变量
func TestMatchSkills(t *testing.T) {
	jd := map[string]bool{"Java": true, "Spring Boot": true, "AWS": true}

	matched, missing := MatchSkills([]string{"java", "docker"}, jd)

	assert.Equal(t, []string{"Java"}, sortedSet(matched))
	assert.Equal(t, []string{"AWS", "Spring Boot"}, sortedSet(missing))

	// 划分不变量: matched ∪ missing == jdSkills 且不相交
	union := make(map[string]bool)
	for s := range matched {
		assert.False(t, missing[s], "matched和missing不应相交: %s", s)
		union[s] = true
	}
	for s := range missing {
		union[s] = true
	}
	assert.Equal(t, jd, union)
}

// TestMatchSkillsNormalizedComparison 比较经过归一化，输出保留JD规范拼写
func TestMatchSkillsNormalizedComparison(t *testing.T) {
	jd := map[string]bool{"Node.js": true, "REST APIs": true}

	matched, missing := MatchSkills([]string{"NODEJS", "rest apis!"}, jd)

	assert.Equal(t, []string{"Node.js", "REST APIs"}, sortedSet(matched))
	assert.Empty(t, missing)
}
