// Package prompts holds the externalized Gemini prompt templates for the
// JD analyzer. Each JSON file covers one LLM task and maps prompt keys
// ("system", "user") to template text. Files are embedded at compile time.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

var (
	loadOnce sync.Once
	library  map[string]map[string]string
	loadErr  error
)

// loadLibrary parses every embedded prompt file. The embedded FS cannot
// change after compilation, so a single pass covers the process lifetime.
func loadLibrary() (map[string]map[string]string, error) {
	loadOnce.Do(func() {
		entries, err := promptFiles.ReadDir(".")
		if err != nil {
			loadErr = fmt.Errorf("list prompt files: %w", err)
			return
		}

		lib := make(map[string]map[string]string, len(entries))
		for _, entry := range entries {
			data, err := promptFiles.ReadFile(entry.Name())
			if err != nil {
				loadErr = fmt.Errorf("read prompt file %s: %w", entry.Name(), err)
				return
			}
			templates := make(map[string]string)
			if err := json.Unmarshal(data, &templates); err != nil {
				loadErr = fmt.Errorf("parse prompt file %s: %w", entry.Name(), err)
				return
			}
			lib[entry.Name()] = templates
		}
		library = lib
	})
	return library, loadErr
}

// Get returns the template stored under key in the named prompt file,
// e.g. Get("analyzer.json", "system").
func Get(filename, key string) (string, error) {
	lib, err := loadLibrary()
	if err != nil {
		return "", err
	}

	templates, ok := lib[filename]
	if !ok {
		return "", fmt.Errorf("prompt file %s not found", filename)
	}
	template, ok := templates[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return template, nil
}

// MustGet is Get for prompts required at initialization time. A missing
// prompt is a packaging defect, so it panics.
func MustGet(filename, key string) string {
	template, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("load prompt: %v", err))
	}
	return template
}

// Format substitutes {{.Key}} placeholders in a template with values from
// data. Unmatched placeholders are left in place.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		result = strings.ReplaceAll(result, "{{."+key+"}}", value)
	}
	return result
}

// List returns the sorted prompt keys available in a file.
func List(filename string) ([]string, error) {
	lib, err := loadLibrary()
	if err != nil {
		return nil, err
	}

	templates, ok := lib[filename]
	if !ok {
		return nil, fmt.Errorf("prompt file %s not found", filename)
	}
	keys := make([]string, 0, len(templates))
	for key := range templates {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}
