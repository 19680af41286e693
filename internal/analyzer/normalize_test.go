package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNormalizeSkill 验证归一化规则
func TestNormalizeSkill(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"小写化", "Java", "java"},
		{"去首尾空白", "  Spring Boot  ", "spring boot"},
		{"去标点", "Node.js", "nodejs"},
		{"去连字符", "CI-CD", "cicd"},
		{"压缩连续空白", "spring \t boot", "spring boot"},
		{"混合", "  C++ / Go!  ", "c go"},
		{"空串", "", ""},
		{"纯标点", "+++", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeSkill(tc.input))
		})
	}
}

// TestNormalizeSkillIdempotent 幂等性: 二次归一化结果不变
func TestNormalizeSkillIdempotent(t *testing.T) {
	inputs := []string{
		"Java", "  Spring Boot  ", "Node.js", "a ! b", "trailing! ",
		"REST APIs", "机器学习", "", "   ", "a  -  b", "!leading",
	}
	for _, input := range inputs {
		once := NormalizeSkill(input)
		assert.Equal(t, once, NormalizeSkill(once), "输入: %q", input)
	}
}
