// Package barasa builds Barasa, an Indonesian SentiWordNet, by carrying the
// polarity scores of SentiWordNet over to the lemmas of WordNet Bahasa that
// share their synset.
//
// Generation reads both lexicons, joins them on the synset identifier and
// writes a tab-separated file of six columns:
//
//	synset  lang  goodness  lemma  pos_score  neg_score
//
// ReadLemmaIndex reads that file back for lookups.
package barasa

// Default locations of the resource files, relative to the working directory.
const (
	DefaultSentiWordNetFile  = "data/SentiWordNet_3.0.0_20130122.txt"
	DefaultWordNetBahasaFile = "data/wn-msa-all.tab"
	DefaultBarasaFile        = "data/barasa.txt"
)

// Paths names the files a generation run reads and writes.
type Paths struct {
	SentiWordNet  string
	WordNetBahasa string
	Barasa        string
}

// DefaultPaths returns the default file locations.
func DefaultPaths() Paths {
	return Paths{
		SentiWordNet:  DefaultSentiWordNetFile,
		WordNetBahasa: DefaultWordNetBahasaFile,
		Barasa:        DefaultBarasaFile,
	}
}

// Generate loads SentiWordNet and WordNet Bahasa, joins them and writes the
// result to p.Barasa. The written records are returned for further use.
func Generate(p Paths) ([]Record, JoinStats, error) {
	scores, err := LoadSentiWordNet(p.SentiWordNet)
	if err != nil {
		return nil, JoinStats{}, err
	}
	rows, err := LoadMappings(p.WordNetBahasa)
	if err != nil {
		return nil, JoinStats{}, err
	}
	records, stats := Join(rows, scores)
	if err := WriteFile(p.Barasa, records); err != nil {
		return nil, stats, err
	}
	return records, stats, nil
}
