package afscript

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Definition is the input definition of a script, as found in a catalog
// file. Definitions are not validated; see Build.
type Definition struct {
	Name            string           `yaml:"name"`
	Tag             string           `yaml:"tag"`
	HintTopToBottom bool             `yaml:"hint_top_to_bottom,omitempty"`
	StdChars        string           `yaml:"std_chars"`
	BaseRanges      []Interval       `yaml:"base_ranges"`
	NonBaseRanges   []Interval       `yaml:"non_base_ranges"`
	Blues           []BlueDefinition `yaml:"blues"`
}

// BlueDefinition is the input definition of a blue zone. Flags is a flag
// expression, see ParseBlueFlags.
type BlueDefinition struct {
	Chars string `yaml:"chars"`
	Flags string `yaml:"flags"`
}

// catalogFile is the top level structure of a YAML catalog.
type catalogFile struct {
	Scripts []Definition `yaml:"scripts"`
}

//go:embed freetype.yaml
var freetypeCatalog []byte

// Default returns the bundled script definitions, which follow FreeType's
// autofit module. Each call returns a fresh copy.
func Default() []Definition {
	defs, err := Load(bytes.NewReader(freetypeCatalog))
	if err != nil {
		panic(fmt.Sprintf("bundled script catalog is corrupt: %v", err))
	}
	return defs
}

// Load reads script definitions from a YAML catalog. The order of
// definitions in the catalog is preserved. A catalog is a single YAML
// document listing at least one script.
func Load(r io.Reader) ([]Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var cf catalogFile
	if err := dec.Decode(&cf); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("script catalog is empty")
		}
		return nil, fmt.Errorf("script catalog: %w", err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); err != io.EOF {
		if err != nil {
			return nil, fmt.Errorf("script catalog: %w", err)
		}
		return nil, fmt.Errorf("script catalog must be a single YAML document")
	}
	if len(cf.Scripts) == 0 {
		return nil, fmt.Errorf("script catalog lists no scripts")
	}
	tracer().Debugf("loaded %d script definitions", len(cf.Scripts))
	return cf.Scripts, nil
}

// LoadFile reads script definitions from a YAML catalog file.
func LoadFile(path string) ([]Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	defs, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return defs, nil
}
