package service

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// PreparationNatural is the preparation assigned when a food name matches
// no rule: the food is bought as it is eaten, factor 1.00.
const PreparationNatural = "natural"

// NameAnalysis is the result of parsing a free-text food name: the base
// ingredient to purchase, the inferred preparation, and the factor that
// converts consumed (prepared) grams into raw purchase grams.
type NameAnalysis struct {
	BaseName         string
	Preparation      string
	ConversionFactor float64
}

type preparationRule struct {
	phrase      string
	preparation string
	factor      float64
}

// preparationRules is an ordered matcher: specific ingredient+preparation
// combos come first, generic single-word preparations close the table.
// Factors convert prepared mass to raw purchase mass (grilled meat loses
// water, so 1.25; cooked rice absorbs it, so the table carries the
// rice-specific 2.5 ahead of the generic "cozido").
var preparationRules = []preparationRule{
	{"arroz cozido", "cozido", 2.5},
	{"macarrao cozido", "cozido", 2.0},
	{"feijao cozido", "cozido", 2.2},
	{"cooked rice", "cozido", 2.5},
	{"boiled rice", "cozido", 2.5},
	{"frango grelhado", "grelhado", 1.25},
	{"carne grelhada", "grelhado", 1.3},
	{"peixe grelhado", "grelhado", 1.2},
	{"grilled chicken", "grelhado", 1.25},

	{"grelhado", "grelhado", 1.25},
	{"grelhada", "grelhado", 1.25},
	{"grilled", "grelhado", 1.25},
	{"cozido", "cozido", 1.2},
	{"cozida", "cozido", 1.2},
	{"boiled", "cozido", 1.2},
	{"cooked", "cozido", 1.2},
	{"assado", "assado", 1.15},
	{"assada", "assado", 1.15},
	{"baked", "assado", 1.15},
	{"roasted", "assado", 1.15},
	{"frito", "frito", 1.1},
	{"frita", "frito", 1.1},
	{"fried", "frito", 1.1},
	{"refogado", "refogado", 1.1},
	{"refogada", "refogado", 1.1},
	{"empanado", "empanado", 1.1},
	{"empanada", "empanado", 1.1},
	{"cru", PreparationNatural, 1.0},
	{"crua", PreparationNatural, 1.0},
	{"raw", PreparationNatural, 1.0},
}

// preparationWords are every token that names a preparation; they are
// stripped from the name when deriving the base ingredient.
var preparationWords = buildPreparationWords()

func buildPreparationWords() map[string]bool {
	words := map[string]bool{}
	generic := []string{
		"grelhado", "grelhada", "grilled",
		"cozido", "cozida", "boiled", "cooked",
		"assado", "assada", "baked", "roasted",
		"frito", "frita", "fried",
		"refogado", "refogada",
		"empanado", "empanada",
		"cru", "crua", "raw",
	}
	for _, w := range generic {
		words[w] = true
	}
	return words
}

// nameStopwords are filler prepositions dropped when deriving base names,
// so "peito de frango" and "peito frango" group together.
var nameStopwords = map[string]bool{
	"de": true, "da": true, "do": true, "das": true, "dos": true,
	"com": true, "em": true, "no": true, "na": true, "e": true,
	"of": true, "with": true, "in": true,
}

// AnalyzeFoodName infers the preparation of a free-text food name and the
// base ingredient left when preparation words and filler stopwords are
// stripped. Anything unrecognized degrades to the natural preparation;
// this function never fails.
func AnalyzeFoodName(rawName string) NameAnalysis {
	name := foldName(rawName)
	if name == "" {
		return NameAnalysis{Preparation: PreparationNatural, ConversionFactor: 1.0}
	}
	tokens := strings.Fields(name)

	preparation := PreparationNatural
	factor := 1.0
	for _, rule := range preparationRules {
		if containsAllTokens(tokens, strings.Fields(rule.phrase)) {
			preparation = rule.preparation
			factor = rule.factor
			break
		}
	}

	base := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if preparationWords[tok] || nameStopwords[tok] {
			continue
		}
		base = append(base, tok)
	}
	baseName := strings.Join(base, " ")
	if baseName == "" {
		baseName = name
	}

	return NameAnalysis{
		BaseName:         baseName,
		Preparation:      preparation,
		ConversionFactor: factor,
	}
}

// containsAllTokens reports whether every phrase token occurs in the name
// tokens, regardless of position, so "chicken breast grilled" still
// matches the "grilled chicken" combo.
func containsAllTokens(tokens, phrase []string) bool {
	for _, want := range phrase {
		found := false
		for _, tok := range tokens {
			if tok == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldName lowercases, trims, and strips diacritics so "macarrão" and
// "macarrao" resolve to the same tokens.
func foldName(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return ""
	}
	if folded, _, err := transform.String(diacriticStripper, name); err == nil {
		name = folded
	}
	return strings.Join(strings.Fields(name), " ")
}
