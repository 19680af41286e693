package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestLookupDefaults 未收录技能的缺省值
func TestLookupDefaults(t *testing.T) {
	cat := Default()

	assert.Equal(t, 95, cat.DemandOf("Spring Boot"))
	assert.Equal(t, 0, cat.DemandOf("COBOL"))

	assert.Equal(t, 95, cat.ImportanceOf("Java"))
	assert.Equal(t, DefaultImportance, cat.ImportanceOf("COBOL"))

	assert.Equal(t, cat.TrendingByRole["general"], cat.TrendingFor("unknown-role"))
	assert.Equal(t, cat.TrendingByRole["backend"], cat.TrendingFor("backend"))
}

// TestCatalogKeyConsistency 各表中的规范技能名拼写一致
// (匹配产出的规范名用于热度/重要度查询时要求精确命中)
func TestCatalogKeyConsistency(t *testing.T) {
	cat := Default()

	canonical := make(map[string]bool)
	for _, entry := range cat.Variations {
		canonical[entry.Canonical] = true
	}

	// 重要度表的技能名必须与JD抽取产出的规范名精确对上
	for skill := range cat.Importance {
		assert.True(t, canonical[skill], "重要度表技能 %q 应与变体表规范名一致", skill)
	}
	// 变体表产出的规范名在热度表中可查(允许缺省0，但拼写不能漂移)
	for _, entry := range cat.Variations {
		if _, ok := cat.MarketDemand[entry.Canonical]; ok {
			assert.Positive(t, cat.MarketDemand[entry.Canonical])
		}
	}
}
