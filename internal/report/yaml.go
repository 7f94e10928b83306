package report

import (
	"io"

	"gopkg.in/yaml.v3"
)

// WriteYAML writes the document as a YAML stream.
func WriteYAML(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
