package barasa

// Language is the language code of a WordNet Bahasa entry.
type Language string

const (
	LangBahasa     Language = "B" // Indonesian and Malaysian
	LangIndonesian Language = "I"
	LangMalaysian  Language = "M"
)

// Goodness is the quality rating of a WordNet Bahasa entry.
type Goodness string

const (
	GoodnessChecked    Goodness = "Y" // hand-checked good
	GoodnessGood       Goodness = "O"
	GoodnessOK         Goodness = "M"
	GoodnessLow        Goodness = "L"
	GoodnessCheckedBad Goodness = "X" // hand-checked bad
)

// SynsetScore holds the SentiWordNet scores of one synset.
// Scores are kept verbatim as they appear in the lexicon.
type SynsetScore struct {
	// Synset is the synset identifier, e.g. "00001740-a".
	Synset string
	// PosScore is the positive polarity score.
	PosScore string
	// NegScore is the negative polarity score.
	NegScore string
}

// MappingRow is one line of the WordNet Bahasa table.
type MappingRow struct {
	Synset   string
	Lang     Language
	Goodness Goodness
	Lemma    string
}

// Record is a WordNet Bahasa entry joined with the scores of its synset.
// It is the unit persisted in the Barasa file.
type Record struct {
	Synset   string   `json:"synset"`
	Lang     Language `json:"lang"`
	Goodness Goodness `json:"goodness"`
	Lemma    string   `json:"lemma"`
	PosScore string   `json:"pos_score"`
	NegScore string   `json:"neg_score"`
}

// Indexed reports whether r belongs in a LemmaIndex: Indonesian or
// Indonesian+Malaysian entries rated good or hand-checked good.
func (r Record) Indexed() bool {
	return (r.Lang == LangIndonesian || r.Lang == LangBahasa) &&
		(r.Goodness == GoodnessChecked || r.Goodness == GoodnessGood)
}

// JoinStats counts the outcome of a join.
type JoinStats struct {
	// Rows is the number of mapping rows examined.
	Rows int
	// Matched is the number of rows whose synset had scores.
	Matched int
	// Skipped is the number of rows dropped for lack of scores.
	Skipped int
}
