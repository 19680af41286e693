package analyzer

// MatchSkills 对简历技能集合和JD要求集合做大小写无关的交并差。
// 双方元素都先归一化再比较，输出集合使用JD侧的规范拼写。
// 不变量: matched ∪ missing == jdSkills 且两者不相交。
func MatchSkills(resumeSkills []string, jdSkills map[string]bool) (matched, missing map[string]bool) {
	normalizedResume := make(map[string]bool, len(resumeSkills))
	for _, skill := range resumeSkills {
		normalizedResume[NormalizeSkill(skill)] = true
	}

	matched = make(map[string]bool)
	missing = make(map[string]bool)
	for skill := range jdSkills {
		if normalizedResume[NormalizeSkill(skill)] {
			matched[skill] = true
		} else {
			missing[skill] = true
		}
	}
	return matched, missing
}
