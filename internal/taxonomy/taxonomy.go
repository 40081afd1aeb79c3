// Package taxonomy provides the skills vocabulary used for lexical matching:
// canonical skill names grouped by category, each with an ordered synonym list.
package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/xeipuuv/gojsonschema"
)

// Skill maps a canonical name to the surface forms that count as a mention.
type Skill struct {
	Name     string
	Synonyms []string
}

// Category groups skills for organizational clarity only; it has no scoring effect.
type Category struct {
	Name   string
	Skills []Skill
}

// Taxonomy is the full skills vocabulary. It is loaded once at startup and
// must not be mutated afterwards; extractors share it read-only.
type Taxonomy struct {
	Categories []Category
}

// Load reads a taxonomy JSON file, falling back to the built-in default when
// the path is empty or the file is missing or invalid. It never fails.
func Load(path string) *Taxonomy {
	if path == "" {
		return Default()
	}
	t, err := LoadFile(path)
	if err != nil {
		return Default()
	}
	return t
}

// LoadFile reads and validates a taxonomy JSON file. The file format mirrors
// the canonical data file: category -> canonical skill -> synonym list.
func LoadFile(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file %s: %w", path, err)
	}

	if schemaPath := resolveSchemaPath(filepath.Join("schemas", "skills_taxonomy.schema.json")); schemaPath != "" {
		if err := validateAgainstSchema(schemaPath, data); err != nil {
			return nil, err
		}
	}

	var raw map[string]map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy JSON: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("taxonomy file %s contains no categories", path)
	}

	return fromRaw(raw), nil
}

// fromRaw converts the JSON map form into sorted slices. JSON object order is
// not preserved by Go maps; sorting keeps traversal deterministic, which is
// safe because skill extraction produces a set.
func fromRaw(raw map[string]map[string][]string) *Taxonomy {
	t := &Taxonomy{Categories: make([]Category, 0, len(raw))}

	categoryNames := make([]string, 0, len(raw))
	for name := range raw {
		categoryNames = append(categoryNames, name)
	}
	sort.Strings(categoryNames)

	for _, categoryName := range categoryNames {
		skills := raw[categoryName]
		category := Category{Name: categoryName, Skills: make([]Skill, 0, len(skills))}

		skillNames := make([]string, 0, len(skills))
		for name := range skills {
			skillNames = append(skillNames, name)
		}
		sort.Strings(skillNames)

		for _, skillName := range skillNames {
			category.Skills = append(category.Skills, Skill{
				Name:     skillName,
				Synonyms: skills[skillName],
			})
		}
		t.Categories = append(t.Categories, category)
	}
	return t
}

// validateAgainstSchema checks the raw taxonomy JSON against the repo schema.
func validateAgainstSchema(schemaPath string, data []byte) error {
	absPath, err := filepath.Abs(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to resolve schema path: %w", err)
	}
	schemaLoader := gojsonschema.NewReferenceLoader("file://" + absPath)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("taxonomy schema validation error: %w", err)
	}
	if !result.Valid() {
		first := result.Errors()[0]
		return fmt.Errorf("taxonomy file is not valid: %s: %s", first.Field(), first.Description())
	}
	return nil
}

// resolveSchemaPath tries the schema path relative to the working directory and
// up to two parent directories, so commands and tests resolve it regardless of
// where they run from. Returns empty when not found; validation is then skipped.
func resolveSchemaPath(relativePath string) string {
	candidates := []string{
		relativePath,
		filepath.Join("..", relativePath),
		filepath.Join("..", "..", relativePath),
	}
	for _, candidate := range candidates {
		if absPath, err := filepath.Abs(candidate); err == nil {
			if _, err := os.Stat(absPath); err == nil {
				return absPath
			}
		}
	}
	return ""
}

// SkillCount returns the number of canonical skills across all categories.
func (t *Taxonomy) SkillCount() int {
	count := 0
	for _, category := range t.Categories {
		count += len(category.Skills)
	}
	return count
}
