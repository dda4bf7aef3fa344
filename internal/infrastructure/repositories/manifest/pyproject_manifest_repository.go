package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"

	"github.com/rios0rios0/cihelper/internal/domain/entities"
	"github.com/rios0rios0/cihelper/internal/domain/repositories"
)

const pyprojectName = "pyproject.toml"

//nolint:gochecknoglobals // read-only key path
var optionalDependenciesPath = []string{"project", "optional-dependencies"}

// PyprojectManifestRepository reads the PEP 621 [project] table of pyproject.toml.
type PyprojectManifestRepository struct{}

// NewPyprojectManifestRepository creates a new pyproject.toml reader.
func NewPyprojectManifestRepository() repositories.ManifestRepository {
	return &PyprojectManifestRepository{}
}

func (m *PyprojectManifestRepository) Name() string { return pyprojectName }

// Read parses pyproject.toml. Missing keys leave the corresponding fields empty.
// Extras keep the order in which they are declared.
func (m *PyprojectManifestRepository) Read(projectDir string) (entities.ProjectMetadata, error) {
	path := filepath.Join(projectDir, pyprojectName)
	data, err := os.ReadFile(path)
	if err != nil {
		return entities.ProjectMetadata{}, fmt.Errorf("failed to read %s: %w", pyprojectName, err)
	}

	var doc map[string]interface{}
	if unmarshalErr := toml.Unmarshal(data, &doc); unmarshalErr != nil {
		return entities.ProjectMetadata{}, fmt.Errorf("failed to parse %s: %w", pyprojectName, unmarshalErr)
	}

	metadata := entities.ProjectMetadata{Manifest: path, Extras: []string{}}

	project, ok := doc["project"].(map[string]interface{})
	if !ok {
		return metadata, nil
	}

	if name, isString := project["name"].(string); isString {
		metadata.Name = name
	}
	if requires, isString := project["requires-python"].(string); isString {
		metadata.RequiresPython = requires
	}
	if extras, isTable := project["optional-dependencies"].(map[string]interface{}); isTable {
		for _, extra := range extrasInDocumentOrder(data) {
			if _, declared := extras[extra]; declared {
				metadata.Extras = append(metadata.Extras, extra)
			}
		}
	}

	return metadata, nil
}

// extrasInDocumentOrder lists the optional-dependency group names in the order
// they appear in the document. Decoding into a map loses that order, so the
// expressions are walked with the low-level parser instead. It covers the
// [project.optional-dependencies] table, dotted keys and inline tables.
func extrasInDocumentOrder(data []byte) []string {
	var (
		parser unstable.Parser
		table  []string
		extras []string
	)
	seen := make(map[string]bool)
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			extras = append(extras, name)
		}
	}

	parser.Reset(data)
	for parser.NextExpression() {
		expr := parser.Expression()
		switch expr.Kind {
		case unstable.Table, unstable.ArrayTable:
			table = keyPath(expr.Key())
			if name, ok := extraAt(table); ok {
				add(name)
			}
		case unstable.KeyValue:
			path := append(slices.Clone(table), keyPath(expr.Key())...)
			if name, ok := extraAt(path); ok {
				add(name)
				continue
			}
			if !slices.Equal(path, optionalDependenciesPath) || expr.Value().Kind != unstable.InlineTable {
				continue
			}
			entries := expr.Value().Children()
			for entries.Next() {
				if entry := entries.Node(); entry.Kind == unstable.KeyValue {
					add(keyPath(entry.Key())[0])
				}
			}
		}
	}
	return extras
}

// extraAt returns the group name when path points below project.optional-dependencies.
func extraAt(path []string) (string, bool) {
	prefix := len(optionalDependenciesPath)
	if len(path) <= prefix || !slices.Equal(path[:prefix], optionalDependenciesPath) {
		return "", false
	}
	return path[prefix], true
}

func keyPath(key unstable.Iterator) []string {
	var path []string
	for key.Next() {
		path = append(path, string(key.Node().Data))
	}
	return path
}
