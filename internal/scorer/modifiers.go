package scorer

import (
	"strings"

	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/model"
)

// weightedTerm is one vocabulary entry of a modifier family.
type weightedTerm struct {
	term   string
	weight float64
}

// modifierOrder fixes the summation order when averaging families, so
// scoring the same document twice yields bit-identical results.
var modifierOrder = []model.ModifierFamily{
	model.ModifierFinancialMagnitude,
	model.ModifierTemporalUrgency,
	model.ModifierRegulatorySeverity,
	model.ModifierImpactScale,
}

// modifierVocabularies defines the four modifier families. Each family's
// modifier is the weighted fraction of its vocabulary present anywhere in
// the document, expressed as a 0-100 percentage.
var modifierVocabularies = map[model.ModifierFamily][]weightedTerm{
	model.ModifierFinancialMagnitude: {
		{"billion", 30},
		{"million", 20},
		{"thousand", 10},
		{"percent", 15},
	},
	model.ModifierTemporalUrgency: {
		{"imminent", 25},
		{"immediate", 25},
		{"urgent", 20},
		{"pending", 15},
		{"potential", 10},
	},
	model.ModifierRegulatorySeverity: {
		{"investigation", 25},
		{"lawsuit", 30},
		{"subpoena", 25},
		{"enforcement", 20},
		{"review", 15},
	},
	model.ModifierImpactScale: {
		{"crisis", 30},
		{"collapse", 30},
		{"breach", 25},
		{"failure", 20},
		{"concern", 10},
	},
}

func intensityModifiers(text string) map[model.ModifierFamily]float64 {
	lower := strings.ToLower(text)
	modifiers := make(map[model.ModifierFamily]float64, len(modifierVocabularies))

	for family, vocab := range modifierVocabularies {
		present, possible := 0.0, 0.0
		for _, wt := range vocab {
			possible += wt.weight
			if strings.Contains(lower, wt.term) {
				present += wt.weight
			}
		}
		if possible > 0 {
			modifiers[family] = present / possible * 100
		} else {
			modifiers[family] = 0
		}
	}
	return modifiers
}
