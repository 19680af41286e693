package catalog

import "regexp"

// Category 技能分类，Skills中存放用于子串匹配的小写片段
type Category struct {
	Name   string
	Skills []string
}

// SkillVariations 规范技能名及其在自由文本中的字面变体
// 变体命中任意一个即视为该技能的证据
type SkillVariations struct {
	Canonical  string
	Variations []string
}

// RoleKeywords 角色探测关键词，按声明顺序优先匹配
type RoleKeywords struct {
	Role     string
	Keywords []string
}

// SignalSet 文本启发式信号的一组词表/模式
// 评分组件和建议组件各自维护一份历史上已经漂移的副本，
// 两份副本都按原样保留，调用方各取所需
type SignalSet struct {
	AchievementPatterns []*regexp.Regexp // 可量化成果模式，作用于原始文本(区分大小写)
	ActionVerbs         []string         // 行为动词，作用于小写文本
	Pronouns            []string         // 人称代词，带空格包围，作用于小写文本
}

// Catalog 静态参考数据，进程启动时构建一次，之后只读
type Catalog struct {
	// Taxonomy 技能分类表，驱动多样性评分；首个命中的分类生效
	Taxonomy []Category

	// Variations JD技能抽取用的变体表
	Variations []SkillVariations

	// CommonSkillSynonyms 简历文本补检用的补充同义词表，
	// 仅当对应技能出现在JD要求集合中时才生效
	CommonSkillSynonyms []SkillVariations

	// MarketDemand 技能市场热度 0-100，缺省0
	MarketDemand map[string]int

	// Importance 技能重要度 0-100，缺省50，仅用于缺失技能建议排序
	Importance map[string]int

	// TrendingByRole 角色 -> 热门技能有序列表
	TrendingByRole map[string][]string

	// RoleDetection 从简历文本探测角色的关键词组，按序优先
	RoleDetection []RoleKeywords

	// ProgressionKeywords 职业晋升语言关键词
	ProgressionKeywords []string

	// ExperienceYearPatterns 工作年限抽取模式，按序取首个命中，捕获组1为年数
	ExperienceYearPatterns []*regexp.Regexp

	// ScoreSignals 评分侧的信号词表(较长的版本)
	ScoreSignals SignalSet

	// AdviceSignals 建议侧的信号词表(较短的版本)
	AdviceSignals SignalSet

	// ProfessionalTerms / CasualTerms 专业语气启发式的整词词表
	ProfessionalTerms []string
	CasualTerms       []string
}

// HighDemandThreshold 高热度技能的判定阈值(严格大于)
const HighDemandThreshold = 85

// DefaultImportance 重要度表未收录技能的缺省优先级
const DefaultImportance = 50

var defaultCatalog = &Catalog{
	Taxonomy: []Category{
		{Name: "backend", Skills: []string{"java", "spring", "spring boot", "node", "python", "sql", "database"}},
		{Name: "frontend", Skills: []string{"react", "angular", "javascript", "html", "css", "typescript"}},
		{Name: "devops", Skills: []string{"docker", "kubernetes", "aws", "azure", "jenkins", "git", "ci/cd"}},
		{Name: "mobile", Skills: []string{"android", "ios", "react native", "flutter", "kotlin", "swift"}},
		{Name: "data", Skills: []string{"machine learning", "python", "pandas", "tensorflow", "pytorch", "data"}},
	},

	Variations: []SkillVariations{
		{Canonical: "Java", Variations: []string{"java", "jdk", "java programming"}},
		{Canonical: "Spring Boot", Variations: []string{"spring boot", "springboot", "spring framework", "spring"}},
		{Canonical: "Docker", Variations: []string{"docker", "containerization", "containers"}},
		{Canonical: "AWS", Variations: []string{"aws", "amazon web services", "cloud", "ec2", "s3"}},
		{Canonical: "React", Variations: []string{"react", "reactjs", "react.js"}},
		{Canonical: "Microservices", Variations: []string{"microservices", "microservice", "micro services"}},
		{Canonical: "Python", Variations: []string{"python", "py"}},
		{Canonical: "Node.js", Variations: []string{"node", "nodejs", "node.js"}},
		{Canonical: "JavaScript", Variations: []string{"javascript", "js", "ecmascript"}},
		{Canonical: "SQL", Variations: []string{"sql", "database", "mysql", "postgresql"}},
		{Canonical: "Git", Variations: []string{"git", "version control", "github", "gitlab"}},
		{Canonical: "Jenkins", Variations: []string{"jenkins", "ci/cd", "continuous integration"}},
	},

	CommonSkillSynonyms: []SkillVariations{
		{Canonical: "Python", Variations: []string{"python", " py "}},
		{Canonical: "JavaScript", Variations: []string{"javascript", "js", "node", "nodejs"}},
		{Canonical: "REST APIs", Variations: []string{"rest", "api", "restful"}},
		{Canonical: "Jenkins", Variations: []string{"jenkins", "ci/cd"}},
		{Canonical: "Android", Variations: []string{"android", "kotlin"}},
	},

	MarketDemand: map[string]int{
		"Spring Boot":      95,
		"Java":             90,
		"Docker":           88,
		"Kubernetes":       85,
		"AWS":              92,
		"React":            90,
		"Python":           94,
		"Machine Learning": 87,
		"SQL":              85,
		"JavaScript":       88,
		"Git":              82,
		"REST APIs":        86,
		"Microservices":    89,
		"TypeScript":       83,
		"Node.js":          84,
		"MongoDB":          80,
		"PostgreSQL":       82,
	},

	Importance: map[string]int{
		"Java":        95,
		"Spring Boot": 95,
		"Python":      90,
		"Docker":      85,
		"AWS":         90,
		"React":       88,
		"SQL":         85,
		"Git":         80,
	},

	TrendingByRole: map[string][]string{
		"backend":  {"Spring Boot", "Docker", "Kubernetes", "Microservices", "AWS"},
		"frontend": {"React", "TypeScript", "Next.js", "Tailwind CSS", "GraphQL"},
		"ml":       {"PyTorch", "TensorFlow", "MLOps", "Docker", "Kubernetes"},
		"devops":   {"Kubernetes", "Terraform", "AWS", "Docker", "Jenkins"},
		"general":  {"Docker", "Git", "Linux", "SQL", "Python"},
	},

	RoleDetection: []RoleKeywords{
		{Role: "backend", Keywords: []string{"backend", "spring", "java"}},
		{Role: "frontend", Keywords: []string{"frontend", "react", "javascript"}},
		{Role: "ml", Keywords: []string{"machine learning", "python", "data"}},
		{Role: "devops", Keywords: []string{"devops", "docker", "aws"}},
	},

	ProgressionKeywords: []string{
		"promoted", "promotion", "advanced", "led", "managed", "senior",
		"lead", "principal", "architect", "director", "head of",
	},

	ExperienceYearPatterns: []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\+?\s*years?\s*(of\s*)?experience`),
		regexp.MustCompile(`(\d+)\+?\s*yrs?\s*(of\s*)?experience`),
		regexp.MustCompile(`experience.*?(\d+)\+?\s*years?`),
		regexp.MustCompile(`(\d+)\+?\s*years?.*?experience`),
	},

	ScoreSignals: SignalSet{
		AchievementPatterns: []*regexp.Regexp{
			regexp.MustCompile(`\d+%`),
			regexp.MustCompile(`\d+\s*(years?|months?)`),
			regexp.MustCompile(`\$\d+`),
			regexp.MustCompile(`\d+\s*(users?|customers?|projects?)`),
			regexp.MustCompile(`\d+\s*(team|people)`),
			regexp.MustCompile(`increased.*?\d+`),
			regexp.MustCompile(`reduced.*?\d+`),
			regexp.MustCompile(`improved.*?\d+`),
		},
		ActionVerbs: []string{
			"developed", "implemented", "created", "led", "managed", "built",
			"designed", "optimized", "improved", "achieved", "delivered",
			"established", "launched", "coordinated", "executed", "maintained",
		},
		Pronouns: []string{" i ", " me ", " my ", " mine ", " myself "},
	},

	AdviceSignals: SignalSet{
		AchievementPatterns: []*regexp.Regexp{
			regexp.MustCompile(`\d+%`),
			regexp.MustCompile(`\d+\s*(years?|months?)`),
			regexp.MustCompile(`\$\d+`),
			regexp.MustCompile(`\d+\s*(users?|customers?|projects?)`),
		},
		ActionVerbs: []string{
			"developed", "implemented", "created", "led", "managed", "built",
			"designed", "optimized", "improved", "achieved", "delivered",
		},
		Pronouns: []string{" i ", " me ", " my ", " mine "},
	},

	ProfessionalTerms: []string{
		"responsible", "experience", "skills", "projects", "achievements",
		"accomplished", "proficient", "expertise", "collaborated",
	},
	CasualTerms: []string{
		"stuff", "things", "cool", "awesome", "guys", "pretty good",
	},
}

// Default 返回进程级共享的只读目录实例
func Default() *Catalog {
	return defaultCatalog
}

// DemandOf 查询技能市场热度，未收录返回0
// 规范技能名大小写敏感精确匹配
func (c *Catalog) DemandOf(skill string) int {
	return c.MarketDemand[skill]
}

// ImportanceOf 查询技能重要度，未收录返回缺省值50
func (c *Catalog) ImportanceOf(skill string) int {
	if v, ok := c.Importance[skill]; ok {
		return v
	}
	return DefaultImportance
}

// TrendingFor 返回指定角色的热门技能列表，未知角色回落到general
func (c *Catalog) TrendingFor(role string) []string {
	if skills, ok := c.TrendingByRole[role]; ok {
		return skills
	}
	return c.TrendingByRole["general"]
}
