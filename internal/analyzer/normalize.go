package analyzer

import (
	"regexp"
	"strings"
)

// 比较键只保留字母、数字和空白
var nonSkillChars = regexp.MustCompile(`[^a-zA-Z0-9\s]`)

// NormalizeSkill 把技能字符串归一化为比较键:
// 小写、去掉非字母数字空白的字符、压缩连续空白为单个空格。
// 幂等: NormalizeSkill(NormalizeSkill(x)) == NormalizeSkill(x)。
// 只用于构建比较集合，输出结果中的规范技能名不经过此函数。
func NormalizeSkill(skill string) string {
	s := strings.ToLower(skill)
	s = nonSkillChars.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}
