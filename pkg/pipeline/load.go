package pipeline

import (
	wellio "github.com/matzehuels/wellsketch/pkg/io"
	"github.com/matzehuels/wellsketch/pkg/well"
)

// Load reads a well description file and builds the well. The document is
// returned as well so callers can apply its [view] section.
func Load(path string) (*well.Well, *wellio.Document, error) {
	doc, err := wellio.ImportTOML(path)
	if err != nil {
		return nil, nil, err
	}
	w, err := doc.Build()
	if err != nil {
		return nil, nil, err
	}
	return w, doc, nil
}
