package report

import (
	"encoding/json"
	"io"
)

// WriteJSON writes the document as indented JSON with a trailing newline.
func WriteJSON(w io.Writer, doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
