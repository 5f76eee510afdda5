// Package describe generates package descriptions with Gemini for
// packages the readme walk left undescribed.
package describe

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"google.golang.org/genai"

	"github.com/docforge/modmap/pkg/constants"
	"github.com/docforge/modmap/pkg/errors"
	"github.com/docforge/modmap/pkg/reflection"
)

// Describer is a Gemini-backed enhancer for package reflections.
type Describer struct {
	model  string
	client *genai.Client
}

// Option configures a Describer.
type Option func(*Describer)

// WithModel overrides the Gemini model used for descriptions.
func WithModel(model string) Option {
	return func(d *Describer) {
		if model != "" {
			d.model = model
		}
	}
}

// New creates a Gemini-backed describer using the AI Studio backend.
func New(ctx context.Context, apiKey string, opts ...Option) (*Describer, error) {
	if apiKey == "" {
		return nil, &errors.ConfigError{
			Component: "describe",
			Message:   "no API key configured - set GEMINI_API_KEY",
			Err:       errors.ErrAPIKeyRequired,
		}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  apiKey,
	})
	if err != nil {
		return nil, errors.WrapAPI("gemini", 0, err)
	}

	d := &Describer{
		model:  constants.DefaultDescribeModel,
		client: client,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Name returns the enhancer name.
func (d *Describer) Name() string {
	return "describe"
}

// CanEnhance checks that the reflection is a package still missing a
// description. A readme comment attached during annotation always wins.
func (d *Describer) CanEnhance(r *reflection.Reflection) bool {
	return r != nil && r.Package && !r.HasComment()
}

// Enhance asks Gemini for a short package description.
func (d *Describer) Enhance(ctx context.Context, r *reflection.Reflection) (*reflection.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.EnhanceTimeout)
	defer cancel()

	resp, err := d.client.Models.GenerateContent(ctx, d.model, genai.Text(Prompt(r)), nil)
	if err != nil {
		return nil, errors.WrapEnhance(d.Name(), r.Name, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return nil, nil
	}
	if len(text) > constants.MaxDescriptionLength {
		text = text[:constants.MaxDescriptionLength]
	}
	return &reflection.Comment{Text: text}, nil
}

// Prompt builds the description request for a package reflection.
func Prompt(r *reflection.Reflection) string {
	var b strings.Builder
	b.WriteString("Write a concise description, two or three sentences, of a software package for API documentation.\n")
	fmt.Fprintf(&b, "Package name: %s\n", r.Name)
	if filepath.IsAbs(r.OriginalName) {
		fmt.Fprintf(&b, "Source location: %s\n", r.OriginalName)
	}
	b.WriteString("Respond with plain prose only, no headings or lists.")
	return b.String()
}
