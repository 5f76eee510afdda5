package reflection

// Comment holds the documentation text attached to a reflection.
type Comment struct {
	// ShortText is the one-line summary shown in listings
	ShortText string `json:"shortText,omitempty" yaml:"shortText,omitempty"`

	// Text is the full body, typically multiple paragraphs of markdown
	Text string `json:"text,omitempty" yaml:"text,omitempty"`
}

// IsEmpty reports whether the comment carries no text at all.
func (c *Comment) IsEmpty() bool {
	return c == nil || (c.ShortText == "" && c.Text == "")
}
