package gradle

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Dialect identifies the language a Gradle script is written in.
type Dialect int

const (
	// Groovy is the classic Gradle DSL (build.gradle, settings.gradle).
	Groovy Dialect = iota
	// KotlinDSL is the Kotlin variant (build.gradle.kts, settings.gradle.kts).
	KotlinDSL
)

// String makes Dialect satisfy the fmt.Stringer interface.
func (d Dialect) String() string {
	switch d {
	case Groovy:
		return "groovy"
	case KotlinDSL:
		return "kotlin-dsl"
	default:
		return "unknown"
	}
}

// DialectForPath returns the dialect implied by the script file name.
func DialectForPath(path string) Dialect {
	if strings.HasSuffix(path, ".kts") {
		return KotlinDSL
	}
	return Groovy
}

// ErrScriptNotFound is returned when neither the Kotlin DSL nor the Groovy
// variant of a script exists.
var ErrScriptNotFound = errors.New("gradle script not found")

// Script is a Gradle build or settings script loaded into memory. Edits
// operate on the in-memory content; Save writes it back to disk.
type Script struct {
	Path    string
	Dialect Dialect

	content string
}

// LoadScript reads the script at path.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gradle script %s: %w", path, err)
	}
	return &Script{
		Path:    path,
		Dialect: DialectForPath(path),
		content: string(data),
	}, nil
}

// Content returns the current (possibly edited) script content.
func (s *Script) Content() string {
	return s.content
}

// Contains reports whether the script already carries the given snippet.
func (s *Script) Contains(snippet string) bool {
	return strings.Contains(s.content, snippet)
}

// Save writes the in-memory content back to the script's path, preserving
// the file mode when the file already exists.
func (s *Script) Save() error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(s.Path); err == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(s.Path, []byte(s.content), mode); err != nil {
		return fmt.Errorf("failed to write gradle script %s: %w", s.Path, err)
	}
	return nil
}

// locate loads the first existing candidate, preferring earlier entries.
func locate(candidates ...string) (*Script, error) {
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return LoadScript(path)
		}
	}
	return nil, ErrScriptNotFound
}

// LocateSettings returns the settings script of the project at root. The
// Kotlin DSL variant takes precedence when both exist.
func LocateSettings(root string) (*Script, error) {
	return locate(
		filepath.Join(root, "settings.gradle.kts"),
		filepath.Join(root, "settings.gradle"),
	)
}

// LocateAppBuildScript returns the build script of the given application
// module. The Kotlin DSL variant takes precedence when both exist.
func LocateAppBuildScript(root, module string) (*Script, error) {
	return locate(
		filepath.Join(root, module, "build.gradle.kts"),
		filepath.Join(root, module, "build.gradle"),
	)
}
