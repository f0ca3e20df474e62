package model

// Candidate pairs a decrypted string with the permutation that produced
// it and its fitness score. Higher scores are better; scores are
// typically negative for non-English text because of log-likelihood
// scoring.
type Candidate struct {
	Plaintext   string      `json:"plaintext"`
	Permutation Permutation `json:"permutation"`
	Score       float64     `json:"score"`
}

// PeriodCandidate is one entry in a period ranking: a candidate number
// of columns, its proxy score, and a short preview of the best
// reconstruction found for it.
type PeriodCandidate struct {
	Period  int     `json:"period"`
	Score   float64 `json:"score"`
	Preview string  `json:"preview"`
}

// BaselineStats bundles every scoring component for one text. It is a
// diagnostic aggregate for reporting callers; the search loops use only
// the combined score.
type BaselineStats struct {
	Length             int     `json:"length"`
	IndexOfCoincidence float64 `json:"index_of_coincidence"`
	ChiSquare          float64 `json:"chi_square"`
	BigramScore        float64 `json:"bigram_score"`
	TrigramScore       float64 `json:"trigram_score"`
	QuadgramScore      float64 `json:"quadgram_score"`
	WordHitRate        float64 `json:"word_hit_rate"`
	CribBonus          float64 `json:"crib_bonus"`
	Combined           float64 `json:"combined"`
}

// CribHint is a known phrase expected near a particular offset in the
// plaintext. Position is the expected start offset; the scoring window
// around it is supplied per call.
type CribHint struct {
	Phrase   string `json:"phrase" yaml:"phrase"`
	Position int    `json:"position" yaml:"position"`
}
