package entity

import "strings"

// Publisher is a news outlet articles can be attributed to.
type Publisher struct {
	ID   string
	Name string
	Logo string
}

// Validate checks that the publisher has a name.
func (p *Publisher) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	return nil
}

// Testimonial is a short piece of reader feedback shown on the landing page.
type Testimonial struct {
	ID   string
	Name string
	Text string
}

// Validate checks that the testimonial carries text.
func (t *Testimonial) Validate() error {
	if strings.TrimSpace(t.Text) == "" {
		return &ValidationError{Field: "text", Message: "is required"}
	}
	return nil
}
