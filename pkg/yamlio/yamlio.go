// Package yamlio reads and writes multi-document YAML streams.
package yamlio

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// WriteFile writes docs to path as one YAML stream, documents separated by
// "---" markers, mappings indented two spaces.
func WriteFile(path string, docs []interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	for _, doc := range docs {
		if err := enc.Encode(doc); err != nil {
			f.Close()
			return errors.Wrapf(err, "encoding document for %v", path)
		}
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// EachDocument invokes decode once per document in the YAML stream at path.
// The callback should call Decode exactly once and return its error
// unfiltered; end of stream is handled here.
func EachDocument(path string, decode func(dec *yaml.Decoder) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	for {
		if err := decode(dec); err != nil {
			if err == io.EOF {
				return nil
			}
			return errors.Wrapf(err, "decoding document in %v", path)
		}
	}
}
