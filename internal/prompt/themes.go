// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package prompt

import "sort"

// DefaultTheme is the theme used when the caller omits the theme or names
// one that does not exist.
const DefaultTheme = "success"

// Theme describes the visual style a prompt strategy injects around the
// caller's text. Values are copied out of the table, so callers cannot
// mutate the shared definitions.
type Theme struct {
	Key string

	// Style is the one-line descriptor used by the concise strategy.
	Style string

	// Environment and TextTreatment are used by the master strategy.
	Environment   string
	TextTreatment string
}

// themes is the fixed theme table. It is never written after init.
var themes = map[string]Theme{
	"success": {
		Key:           "success",
		Style:         "luxury gold and blue gradient background, premium 3D aesthetic",
		Environment:   "Ultra-premium 3D environment with deep cinematic lighting, professional studio quality. Smooth gradient background transitioning from deep navy blue (#0A1128) through rich purple (#6B46C1) to subtle gold accents (#F59E0B). Atmospheric effects with subtle particle systems, soft rim lighting, and professional depth of field.",
		TextTreatment: "premium gold gradient materials with metallic finish and realistic reflections",
	},
	"automation": {
		Key:           "automation",
		Style:         "futuristic blue and cyan tech environment, modern 3D design",
		Environment:   "Futuristic 3D tech environment with advanced lighting systems. Dynamic gradient background from midnight blue (#0F172A) through electric blue (#2563EB) to cyan highlights (#06B6D4). Tech elements including neon line accents and holographic effects.",
		TextTreatment: "holographic blue-cyan gradient with tech glow effects",
	},
	"opportunity": {
		Key:           "opportunity",
		Style:         "professional purple and gold business design, executive 3D style",
		Environment:   "Professional executive 3D environment with luxury business lighting. Rich gradient background from deep purple (#581C87) through royal blue (#1E40AF) to gold highlights (#F59E0B). Premium corporate aesthetic with professional color grading.",
		TextTreatment: "executive gold gradient with premium metallic finish",
	},
	"transformation": {
		Key:           "transformation",
		Style:         "energetic blue to gold gradient, motivational 3D elements",
		Environment:   "Dynamic transformation 3D space with motivational lighting. Energetic gradient background from deep teal (#0F766E) through vibrant blue (#0EA5E9) to success gold (#F59E0B). Growth-oriented atmospheric effects.",
		TextTreatment: "energetic blue-gold gradient with transformation glow",
	},
}

// LookupTheme returns the theme registered under key, falling back to
// DefaultTheme for empty or unknown keys. Keys are case-sensitive.
func LookupTheme(key string) Theme {
	if t, ok := themes[key]; ok {
		return t
	}
	return themes[DefaultTheme]
}

// HasTheme reports whether key names a theme in the table.
func HasTheme(key string) bool {
	_, ok := themes[key]
	return ok
}

// Themes returns every theme sorted by key.
func Themes() []Theme {
	out := make([]Theme, 0, len(themes))
	for _, t := range themes {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
