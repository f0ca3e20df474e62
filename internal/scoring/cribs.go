package scoring

import (
	"strings"

	"github.com/cipherkit/go-columnar-solver/internal/textutil"
	"github.com/cipherkit/go-columnar-solver/model"
)

const (
	// cribBonusPerChar scales the reward for a found crib by its length:
	// long known phrases are much stronger evidence than short ones.
	cribBonusPerChar = 10.0

	// minCribLenForFuzzy is the shortest crib also credited on a
	// near-miss. Mirrors the idea that only sufficiently long tokens can
	// absorb an error without becoming ambiguous.
	minCribLenForFuzzy = 8

	// fuzzyCribFactor discounts a distance-1 match relative to an exact
	// one.
	fuzzyCribFactor = 0.5
)

// CribBonus returns the additive bonus for built-in cribs appearing as
// substrings of text.
func (s *Service) CribBonus(text string) float64 {
	return s.cribBonus(textutil.Normalize(text), s.tables.Cribs())
}

// CribBonusWith returns the additive bonus for the supplied cribs
// appearing as substrings of text. Cribs are normalized before
// matching; empty cribs are ignored.
func (s *Service) CribBonusWith(text string, cribs []string) float64 {
	return s.cribBonus(textutil.Normalize(text), cribs)
}

func (s *Service) cribBonus(normalized string, cribs []string) float64 {
	bonus := 0.0
	for _, raw := range cribs {
		crib := textutil.Normalize(raw)
		if crib == "" {
			continue
		}
		if strings.Contains(normalized, crib) {
			bonus += cribBonusPerChar * float64(len(crib))
			continue
		}
		if len(crib) >= minCribLenForFuzzy && containsNearMatch(normalized, crib) {
			bonus += fuzzyCribFactor * cribBonusPerChar * float64(len(crib))
		}
	}
	return bonus
}

// PositionalCribBonus rewards each hinted phrase only when it is found
// within window characters of its expected position. This scores
// structural hypotheses — a known phrase expected near a particular
// offset — without requiring an exact placement.
func (s *Service) PositionalCribBonus(text string, hints []model.CribHint, window int) float64 {
	return s.positionalCribBonus(textutil.Normalize(text), hints, window)
}

func (s *Service) positionalCribBonus(normalized string, hints []model.CribHint, window int) float64 {
	if window < 0 {
		window = 0
	}

	bonus := 0.0
	for _, hint := range hints {
		crib := textutil.Normalize(hint.Phrase)
		if crib == "" {
			continue
		}

		lo := hint.Position - window
		if lo < 0 {
			lo = 0
		}
		hi := hint.Position + window + len(crib)
		if hi > len(normalized) {
			hi = len(normalized)
		}
		if hi-lo < len(crib) {
			continue
		}

		region := normalized[lo:hi]
		if strings.Contains(region, crib) {
			bonus += cribBonusPerChar * float64(len(crib))
			continue
		}
		if len(crib) >= minCribLenForFuzzy && containsNearMatch(region, crib) {
			bonus += fuzzyCribFactor * cribBonusPerChar * float64(len(crib))
		}
	}
	return bonus
}

// containsNearMatch reports whether any window of text the length of
// crib is within edit distance 1 of it. Only same-length windows are
// tried, so this catches substitutions but not alignment shifts; exact
// substring matching has already failed by the time this runs.
func containsNearMatch(text, crib string) bool {
	if len(text) < len(crib) {
		return false
	}
	for i := 0; i+len(crib) <= len(text); i++ {
		if textutil.WithinDistance(text[i:i+len(crib)], crib, 1) {
			return true
		}
	}
	return false
}
