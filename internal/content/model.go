package content

// HomeID is the id of the hero region, which precedes every section.
const HomeID = "home"

// Kind selects how a section body is rendered.
type Kind string

const (
	KindCards    Kind = "cards"
	KindProjects Kind = "projects"
	KindTimeline Kind = "timeline"
	KindSkills   Kind = "skills"
	KindList     Kind = "list"
	KindContact  Kind = "contact"
)

func (k Kind) valid() bool {
	switch k {
	case KindCards, KindProjects, KindTimeline, KindSkills, KindList, KindContact:
		return true
	}
	return false
}

// Portfolio is the whole page: who it is about, the hero copy, the nav menu
// and the sections in render order.
type Portfolio struct {
	Owner    Owner     `yaml:"owner"`
	Hero     Hero      `yaml:"hero"`
	Nav      []NavItem `yaml:"nav"`
	Sections []Section `yaml:"sections"`
}

type Owner struct {
	Name          string `yaml:"name"`
	Brand         string `yaml:"brand"`
	Email         string `yaml:"email"`
	Phone         string `yaml:"phone"`
	Location      string `yaml:"location"`
	GitHubURL     string `yaml:"githubUrl"`
	GitHubLabel   string `yaml:"githubLabel"`
	LinkedInURL   string `yaml:"linkedinUrl"`
	LinkedInLabel string `yaml:"linkedinLabel"`
}

type Hero struct {
	Headline string `yaml:"headline"`
	Accent   string `yaml:"accent"`
	Tail     string `yaml:"tail"`
	Tagline  string `yaml:"tagline"`
}

// NavItem links a menu label to a section anchor.
type NavItem struct {
	Label  string `yaml:"label"`
	Anchor string `yaml:"anchor"`
}

// Section is one anchorable page region. Only the body fields matching Kind
// are rendered.
type Section struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Kind     Kind   `yaml:"kind"`
	// Columns is the grid width for card and project bodies.
	Columns int `yaml:"columns"`

	Cards    []Card          `yaml:"cards"`
	Projects []Project       `yaml:"projects"`
	Timeline []TimelineEntry `yaml:"timeline"`
	Skills   []SkillGroup    `yaml:"skills"`
	Items    []string        `yaml:"items"`
}

// Card is a heading with a markdown body and optional bullet points.
type Card struct {
	Heading string   `yaml:"heading"`
	Body    string   `yaml:"body"`
	Points  []string `yaml:"points"`
}

type Project struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Links       []Link   `yaml:"links"`
}

type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

type TimelineEntry struct {
	Period       string   `yaml:"period"`
	Role         string   `yaml:"role"`
	Organization string   `yaml:"organization"`
	Location     string   `yaml:"location"`
	Points       []string `yaml:"points"`
}

type SkillGroup struct {
	Name string   `yaml:"name"`
	Tags []string `yaml:"tags"`
}

// Section returns the section with the given id.
func (p *Portfolio) Section(id string) (Section, bool) {
	for _, s := range p.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}
