package catalog

// Category classifies a tool the way the Kali menu does.
type Category string

const (
	CategoryInfoGathering    Category = "Information Gathering"
	CategoryVulnAnalysis     Category = "Vulnerability Analysis"
	CategoryWebApp           Category = "Web Application Analysis"
	CategoryDatabase         Category = "Database Assessment"
	CategoryPassword         Category = "Password Attacks"
	CategoryWireless         Category = "Wireless Attacks"
	CategoryReverseEng       Category = "Reverse Engineering"
	CategoryExploitation     Category = "Exploitation Tools"
	CategorySniffing         Category = "Sniffing & Spoofing"
	CategoryPostExploitation Category = "Post Exploitation"
	CategoryForensics        Category = "Forensics"
	CategoryReporting        Category = "Reporting Tools"
	CategorySocialEng        Category = "Social Engineering"
	CategoryStressTesting    Category = "Stress Testing"
	CategoryHardware         Category = "Hardware & Architecture"
	CategorySystem           Category = "System Administration"
	CategoryProgramming      Category = "Programming & Scripting"
	CategoryOther            Category = "Autres Outils"
)

// Categories returns all tool categories in display order.
func Categories() []Category {
	return []Category{
		CategoryInfoGathering,
		CategoryVulnAnalysis,
		CategoryWebApp,
		CategoryDatabase,
		CategoryPassword,
		CategoryWireless,
		CategoryReverseEng,
		CategoryExploitation,
		CategorySniffing,
		CategoryPostExploitation,
		CategoryForensics,
		CategoryReporting,
		CategorySocialEng,
		CategoryStressTesting,
		CategoryHardware,
		CategorySystem,
		CategoryProgramming,
		CategoryOther,
	}
}

// Tool is one entry of the tools library.
type Tool struct {
	Name        string
	Category    Category
	Description string
	Popular     bool
}

// Difficulty grades a course module. Labels are kept in French to match
// the generated content language.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Débutant"
	DifficultyIntermediate Difficulty = "Intermédiaire"
	DifficultyAdvanced     Difficulty = "Avancé"
	DifficultyExpert       Difficulty = "Expert"
)

// CourseModule is one module of the training program. Topics are ordered;
// the first topic is the default entry point when a course is opened.
type CourseModule struct {
	ID          string
	Title       string
	Difficulty  Difficulty
	Description string
	Topics      []string
}

// HasTopic reports whether name is one of the module's declared topics.
func (m CourseModule) HasTopic(name string) bool {
	for _, t := range m.Topics {
		if t == name {
			return true
		}
	}
	return false
}

// FirstTopic returns the module's first topic, or "" for an empty module.
func (m CourseModule) FirstTopic() string {
	if len(m.Topics) == 0 {
		return ""
	}
	return m.Topics[0]
}
