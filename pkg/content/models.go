// Package content defines the portfolio's static content and loads it once at
// process start.
package content

// Entry is one biographical milestone on the journey timeline. A leaf entry
// carries Time and Description; a composite entry carries Roles instead.
type Entry struct {
	Category    string `yaml:"category" toml:"category" json:"category"`
	Logo        string `yaml:"logo" toml:"logo" json:"logo"`
	Title       string `yaml:"title" toml:"title" json:"title"`
	URL         string `yaml:"url,omitempty" toml:"url,omitempty" json:"url,omitempty"`
	Time        string `yaml:"time,omitempty" toml:"time,omitempty" json:"time,omitempty"`
	Description string `yaml:"description,omitempty" toml:"description,omitempty" json:"description,omitempty"`
	Roles       []Role `yaml:"roles,omitempty" toml:"roles,omitempty" json:"roles,omitempty"`
}

// Role is one position held at a composite entry's organization.
type Role struct {
	Time        string `yaml:"time" toml:"time" json:"time"`
	Description string `yaml:"description" toml:"description" json:"description"`
}

// IsComposite reports whether e lists several roles.
func (e Entry) IsComposite() bool {
	return len(e.Roles) > 0
}

// Project is a card on the projects page.
type Project struct {
	Title       string   `yaml:"title" toml:"title" json:"title"`
	Description string   `yaml:"description" toml:"description" json:"description"`
	TechStack   []string `yaml:"tech_stack,omitempty" toml:"tech_stack,omitempty" json:"tech_stack,omitempty"`
	Image       string   `yaml:"image,omitempty" toml:"image,omitempty" json:"image,omitempty"`
	URL         string   `yaml:"url,omitempty" toml:"url,omitempty" json:"url,omitempty"`
}

type Link struct {
	Name string `yaml:"name" toml:"name" json:"name"`
	URL  string `yaml:"url" toml:"url" json:"url"`
	Icon string `yaml:"icon,omitempty" toml:"icon,omitempty" json:"icon,omitempty"`
}

// Photo is a gallery image. Width is "", "1/3" or "2/3" of the row.
type Photo struct {
	Src      string `yaml:"src" toml:"src" json:"src"`
	Alt      string `yaml:"alt" toml:"alt" json:"alt"`
	Width    string `yaml:"width,omitempty" toml:"width,omitempty" json:"width,omitempty"`
	Position string `yaml:"position,omitempty" toml:"position,omitempty" json:"position,omitempty"`
}

// Site is the whole content set.
type Site struct {
	Owner     string    `yaml:"owner" toml:"owner" json:"owner"`
	Tagline   string    `yaml:"tagline" toml:"tagline" json:"tagline"`
	Portrait  string    `yaml:"portrait" toml:"portrait" json:"portrait"`
	Family    string    `yaml:"family" toml:"family" json:"family"`
	TechStack []Link    `yaml:"tech_stack" toml:"tech_stack" json:"tech_stack"`
	Journey   []Entry   `yaml:"journey" toml:"journey" json:"journey"`
	Gallery   []Photo   `yaml:"gallery" toml:"gallery" json:"gallery"`
	Projects  []Project `yaml:"projects" toml:"projects" json:"projects"`
	Contact   []Link    `yaml:"contact" toml:"contact" json:"contact"`
}
