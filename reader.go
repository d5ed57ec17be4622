package barasa

import (
	"io"
	"sort"
)

// LemmaIndex maps a lemma to its indexed records, in file order.
type LemmaIndex map[string][]Record

// ParseLemmaIndex reads a Barasa file and indexes the records that pass
// Record.Indexed. Every line must have exactly six fields.
func ParseLemmaIndex(r io.Reader) (LemmaIndex, error) {
	return parseLemmaIndex(r, "")
}

func parseLemmaIndex(r io.Reader, name string) (LemmaIndex, error) {
	idx := make(LemmaIndex)
	err := scanFields(r, name, recordFields, nil, func(f []string) {
		rec := Record{
			Synset:   f[0],
			Lang:     Language(f[1]),
			Goodness: Goodness(f[2]),
			Lemma:    f[3],
			PosScore: f[4],
			NegScore: f[5],
		}
		if rec.Indexed() {
			idx[rec.Lemma] = append(idx[rec.Lemma], rec)
		}
	})
	if err != nil {
		return nil, err
	}
	return idx, nil
}

// ReadLemmaIndex reads the Barasa file at path.
func ReadLemmaIndex(path string) (LemmaIndex, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseLemmaIndex(f, path)
}

// Lookup returns the records of lemma. If the lemma is not found as
// given, its normalized form is tried.
func (idx LemmaIndex) Lookup(lemma string) []Record {
	if recs, ok := idx[lemma]; ok {
		return recs
	}
	return idx[NormalizeLemma(lemma)]
}

// Lemmas returns every indexed lemma in sorted order.
func (idx LemmaIndex) Lemmas() []string {
	out := make([]string, 0, len(idx))
	for l := range idx {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Records returns the total number of indexed records.
func (idx LemmaIndex) Records() int {
	n := 0
	for _, recs := range idx {
		n += len(recs)
	}
	return n
}
