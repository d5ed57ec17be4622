package barasa

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"
)

const (
	sentiFields   = 6 // pos, offset, pos score, neg score, terms, gloss
	mappingFields = 4 // synset, lang, goodness, lemma
	recordFields  = 6 // synset, lang, goodness, lemma, pos score, neg score

	// SentiWordNet glosses run long; allow lines well past bufio's 64K default.
	maxLineSize = 1 << 20
)

// openFile opens path for reading, reporting failures as *FileError.
func openFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fileError("open", path, err)
	}
	return f, nil
}

func fileError(op, path string, err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	return &FileError{Op: op, Path: path, Err: err}
}

// scanFields splits every line of r on tabs and hands the fields to fn.
// Lines for which skip returns true are ignored. Any other line must have
// exactly want fields.
func scanFields(r io.Reader, name string, want int, skip func(string) bool, fn func([]string)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSuffix(sc.Text(), "\r")
		if skip != nil && skip(line) {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != want {
			return &LineError{Path: name, Line: n, Got: len(fields), Want: want}
		}
		fn(fields)
	}
	if err := sc.Err(); err != nil {
		return fileError("read", name, err)
	}
	return nil
}

func blank(line string) bool { return line == "" }

func sentiSkip(line string) bool {
	return line == "" || strings.HasPrefix(line, "#")
}

// SynsetID builds the synset identifier used by WordNet Bahasa from a
// SentiWordNet offset and part-of-speech tag: "00001740" + "a" → "00001740-a".
func SynsetID(offset, pos string) string {
	return offset + "-" + pos
}

// ParseSentiWordNet reads a SentiWordNet lexicon and returns the scores of
// every synset. Lines starting with '#' are comments. When a synset occurs
// more than once the last occurrence wins.
func ParseSentiWordNet(r io.Reader) (map[string]SynsetScore, error) {
	return parseSentiWordNet(r, "")
}

func parseSentiWordNet(r io.Reader, name string) (map[string]SynsetScore, error) {
	scores := make(map[string]SynsetScore)
	err := scanFields(r, name, sentiFields, sentiSkip, func(f []string) {
		id := SynsetID(f[1], f[0])
		scores[id] = SynsetScore{Synset: id, PosScore: f[2], NegScore: f[3]}
	})
	if err != nil {
		return nil, err
	}
	return scores, nil
}

// LoadSentiWordNet reads the SentiWordNet file at path.
func LoadSentiWordNet(path string) (map[string]SynsetScore, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseSentiWordNet(f, path)
}

// ParseMappings reads a WordNet Bahasa table, one row per line, in order.
func ParseMappings(r io.Reader) ([]MappingRow, error) {
	return parseMappings(r, "")
}

func parseMappings(r io.Reader, name string) ([]MappingRow, error) {
	var rows []MappingRow
	err := scanFields(r, name, mappingFields, blank, func(f []string) {
		rows = append(rows, MappingRow{
			Synset:   f[0],
			Lang:     Language(f[1]),
			Goodness: Goodness(f[2]),
			Lemma:    f[3],
		})
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// LoadMappings reads the WordNet Bahasa file at path.
func LoadMappings(path string) ([]MappingRow, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseMappings(f, path)
}

// Join attaches scores to every mapping row whose synset has them.
// Rows without scores produce no record. The order of rows is kept.
func Join(rows []MappingRow, scores map[string]SynsetScore) ([]Record, JoinStats) {
	stats := JoinStats{Rows: len(rows)}
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		score, ok := scores[row.Synset]
		if !ok {
			stats.Skipped++
			continue
		}
		records = append(records, Record{
			Synset:   row.Synset,
			Lang:     row.Lang,
			Goodness: row.Goodness,
			Lemma:    row.Lemma,
			PosScore: score.PosScore,
			NegScore: score.NegScore,
		})
		stats.Matched++
	}
	return records, stats
}
