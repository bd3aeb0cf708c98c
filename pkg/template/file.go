package template

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/mailmerge/pkg/richtext"
)

// ParamDef declares a custom parameter in a campaign file.
type ParamDef struct {
	Label string `yaml:"label"`
	Ident string `yaml:"ident"`
}

// file is the campaign file schema. Tag keys are bare integers; anything
// else fails decoding.
type file struct {
	Subject string           `yaml:"subject"`
	Content string           `yaml:"content"`
	Mode    string           `yaml:"mode"`
	Font    Font             `yaml:"font"`
	Tags    map[int][]string `yaml:"tags"`
	Params  []ParamDef       `yaml:"params"`
	Rich    bool             `yaml:"rich_values"`
}

// Load decodes a campaign file into a Template plus its custom parameter
// declarations. Decoding is strict: unknown fields and malformed tag keys
// are errors, not warnings.
func Load(r io.Reader) (*Template, []ParamDef, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		return nil, nil, errors.Join(ErrLoadFailed, err)
	}

	opts := []Option{
		WithFont(f.Font),
	}
	if len(f.Tags) > 0 {
		opts = append(opts, WithTags(richtext.Tags(f.Tags)))
	}
	if f.Rich {
		opts = append(opts, WithRichValues())
	}

	switch Mode(f.Mode) {
	case ModeHTML, Mode(""):
		// HTML is the default.
	case ModeText:
		opts = append(opts, WithMode(ModeText))
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrInvalidMode, f.Mode)
	}

	return New(f.Subject, f.Content, opts...), f.Params, nil
}
