// Package langmap classifies file extensions into programming languages.
//
// The registry is built once, at first use, from an embedded base table (a
// Linguist-style languages.yaml) merged with an explicit override table.
// Base entries are merged alphabetically by language name, first claim to an
// extension wins; overrides always win. The resulting table is read-only for
// the lifetime of the process.
package langmap

import (
	_ "embed"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/languages.yaml
var languagesYAML []byte

//go:embed data/overrides.yaml
var overridesYAML []byte

// Language is one registry entry.
type Language struct {
	Name     string
	Category string // "programming", "markup", "data" or "prose"
}

type baseEntry struct {
	Type       string   `yaml:"type"`
	Extensions []string `yaml:"extensions"`
}

type overrideFile struct {
	Extensions map[string]string `yaml:"extensions"`
}

var (
	buildOnce sync.Once
	table     map[string]Language
)

// Lookup returns the language registered for an extension. The extension is
// matched lowercased and without a leading dot.
func Lookup(ext string) (Language, bool) {
	buildOnce.Do(build)
	lang, ok := table[strings.ToLower(strings.TrimPrefix(ext, "."))]
	return lang, ok
}

// ForFilename classifies a file path by the text after the final dot of its
// base name. Files without an extension are not classified.
func ForFilename(name string) (Language, bool) {
	base := path.Base(name)
	idx := strings.LastIndex(base, ".")
	if idx < 0 || idx == len(base)-1 {
		return Language{}, false
	}
	return Lookup(base[idx+1:])
}

// build merges the embedded base registry and overrides into the lookup
// table. The data is compiled into the binary, so a parse failure is a
// packaging defect, not a runtime condition.
func build() {
	var base map[string]baseEntry
	if err := yaml.Unmarshal(languagesYAML, &base); err != nil {
		panic(fmt.Sprintf("langmap: bad embedded languages.yaml: %v", err))
	}
	var overrides overrideFile
	if err := yaml.Unmarshal(overridesYAML, &overrides); err != nil {
		panic(fmt.Sprintf("langmap: bad embedded overrides.yaml: %v", err))
	}

	names := make([]string, 0, len(base))
	for name := range base {
		names = append(names, name)
	}
	sort.Strings(names)

	table = make(map[string]Language)
	for _, name := range names {
		entry := base[name]
		category := entry.Type
		if category == "" {
			category = "data"
		}
		for _, ext := range entry.Extensions {
			key := strings.ToLower(strings.TrimPrefix(ext, "."))
			if _, taken := table[key]; !taken {
				table[key] = Language{Name: name, Category: category}
			}
		}
	}

	for ext, name := range overrides.Extensions {
		entry, known := base[name]
		if !known {
			panic(fmt.Sprintf("langmap: override %q maps to unknown language %q", ext, name))
		}
		category := entry.Type
		if category == "" {
			category = "data"
		}
		table[strings.ToLower(strings.TrimPrefix(ext, "."))] = Language{Name: name, Category: category}
	}
}
