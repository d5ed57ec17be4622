package barasa

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Line renders r as one line of the Barasa file, without a newline.
func (r Record) Line() string {
	return strings.Join([]string{
		r.Synset, string(r.Lang), string(r.Goodness), r.Lemma, r.PosScore, r.NegScore,
	}, "\t")
}

// WriteRecords writes records as tab-separated lines joined by '\n'.
// The last line is not terminated.
func WriteRecords(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)
	for i, r := range records {
		if i > 0 {
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(r.Line()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes records to path, replacing any existing file.
func WriteFile(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fileError("create", path, err)
	}
	if err := WriteRecords(f, records); err != nil {
		f.Close()
		return fileError("write", path, err)
	}
	if err := f.Close(); err != nil {
		return fileError("close", path, err)
	}
	return nil
}
