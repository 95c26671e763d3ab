// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package prompt turns a headline, subtitle and call-to-action into the
// natural-language instruction sent to the image backend. The wording is
// chosen by a strategy (one embedded template per strategy) and the colour
// palette by a theme from a fixed table.
package prompt

import (
	"embed"
	"fmt"
	"maps"
	"slices"
	"strings"
	"text/template"
)

// Strategy names accepted by NewBuilder.
const (
	StrategyConcise = "concise"
	StrategyMaster  = "master"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// strategy pairs a parsed template with the quality tag echoed to clients.
type strategy struct {
	tmpl    *template.Template
	quality string
}

// strategies is parsed once at init. text/template is used (not
// html/template) so caller text reaches the prompt unescaped.
var strategies = map[string]strategy{
	StrategyConcise: {tmpl: mustParse(StrategyConcise), quality: "STANDARD"},
	StrategyMaster:  {tmpl: mustParse(StrategyMaster), quality: "MASTER_LEVEL"},
}

func mustParse(name string) *template.Template {
	return template.Must(template.New(name+".tmpl").ParseFS(templateFS, "templates/"+name+".tmpl"))
}

// Strategies returns the supported strategy names in sorted order.
func Strategies() []string {
	names := slices.Collect(maps.Keys(strategies))
	slices.Sort(names)
	return names
}

// Builder renders prompts with a single strategy. It holds no mutable
// state and is safe for concurrent use.
type Builder struct {
	name     string
	strategy strategy
}

// NewBuilder returns a Builder for the named strategy.
func NewBuilder(name string) (*Builder, error) {
	s, ok := strategies[name]
	if !ok {
		return nil, fmt.Errorf("prompt: unsupported strategy %q (supported: %s)",
			name, strings.Join(Strategies(), ", "))
	}
	return &Builder{name: name, strategy: s}, nil
}

// Strategy returns the name of the builder's strategy.
func (b *Builder) Strategy() string { return b.name }

// Quality returns the quality tag reported alongside generated images.
func (b *Builder) Quality() string { return b.strategy.quality }

// templateData is the value the strategy templates are executed against.
type templateData struct {
	Headline string
	Subtitle string
	CTA      string
	Theme    Theme
}

// Build renders the prompt. The three text fields are substituted verbatim
// and the theme is resolved with LookupTheme, so Build cannot fail on any
// input.
func (b *Builder) Build(headline, subtitle, cta, theme string) string {
	data := templateData{
		Headline: headline,
		Subtitle: subtitle,
		CTA:      cta,
		Theme:    LookupTheme(theme),
	}

	var sb strings.Builder
	// The templates only reference string fields of templateData, so
	// Execute can only fail on a write error, which strings.Builder never
	// returns.
	_ = b.strategy.tmpl.Execute(&sb, data)
	return strings.TrimSpace(sb.String())
}
