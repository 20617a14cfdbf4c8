package carousel

// Kind discriminates the Item variants.
type Kind string

const (
	KindProject Kind = "project"
	KindCTA     Kind = "cta"
)

// Item is one card in the carousel. It is either a project (Title, ImageURL,
// TechStack, ProjectURL) or a call to action (Heading, ButtonText, Link),
// selected by Kind. Fields of the other variant are left empty.
type Item struct {
	ID   string `yaml:"id"`
	Kind Kind   `yaml:"type"`

	// Project variant
	Title       string   `yaml:"title,omitempty"`
	ImageURL    string   `yaml:"image_url,omitempty"`
	TechStack   []string `yaml:"tech_stack,omitempty"`
	ProjectURL  string   `yaml:"project_url,omitempty"`
	CodeURL     string   `yaml:"code_url,omitempty"`
	ClientType  string   `yaml:"client_type,omitempty"`
	Description string   `yaml:"description,omitempty"`

	// Call-to-action variant
	Heading    string `yaml:"cta_title,omitempty"`
	ButtonText string `yaml:"cta_text,omitempty"`
	Link       string `yaml:"cta_link,omitempty"`
}

// Project builds a project item.
func Project(id, title, imageURL string, techStack []string, projectURL string) Item {
	return Item{
		ID:         id,
		Kind:       KindProject,
		Title:      title,
		ImageURL:   imageURL,
		TechStack:  techStack,
		ProjectURL: projectURL,
	}
}

// CallToAction builds a call-to-action item.
func CallToAction(id, heading, buttonText, link string) Item {
	return Item{
		ID:         id,
		Kind:       KindCTA,
		Heading:    heading,
		ButtonText: buttonText,
		Link:       link,
	}
}

// IsProject reports whether the item is the project variant.
func (i Item) IsProject() bool {
	return i.Kind == KindProject
}

// Label is the human-readable name used in announcements.
func (i Item) Label() string {
	if i.Kind == KindCTA {
		return i.Heading
	}
	return i.Title
}
