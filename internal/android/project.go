package android

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gabrieluxcam/mcp-uxcam-android/internal/gradle"
	"github.com/gabrieluxcam/mcp-uxcam-android/pkg/logging"
)

// Language identifies the source language of an Android class file.
type Language int

const (
	LanguageJava Language = iota
	LanguageKotlin
)

// String makes Language satisfy the fmt.Stringer interface.
func (l Language) String() string {
	switch l {
	case LanguageJava:
		return "java"
	case LanguageKotlin:
		return "kotlin"
	default:
		return "unknown"
	}
}

// LanguageForPath returns the language implied by the source file extension.
func LanguageForPath(path string) Language {
	if strings.HasSuffix(path, ".kt") {
		return LanguageKotlin
	}
	return LanguageJava
}

// SourceFile is a candidate Application class source file.
type SourceFile struct {
	Path     string
	Language Language
}

// Project describes the discovered shape of an Android project.
type Project struct {
	Root      string
	AppModule string

	// SettingsScript is the path of settings.gradle(.kts), empty when the
	// project has none.
	SettingsScript  string
	SettingsDialect gradle.Dialect

	// AppBuildScript is the path of <module>/build.gradle(.kts), empty when
	// the module has none.
	AppBuildScript  string
	AppBuildDialect gradle.Dialect

	// ManifestApplication is the android:name of the <application> element
	// in the module manifest, empty when undeclared.
	ManifestApplication string

	// ApplicationSources are the Application class candidates found under
	// the module source tree, ordered by preference.
	ApplicationSources []SourceFile
}

// Scan inspects the Android project at root and returns what it found.
// Missing pieces (no settings script, no Application class) are reported as
// empty fields, not errors; only filesystem failures surface as errors.
func Scan(root, module string) (*Project, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("cannot access project root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project root %s is not a directory", root)
	}

	p := &Project{Root: root, AppModule: module}

	if settings, err := gradle.LocateSettings(root); err == nil {
		p.SettingsScript = settings.Path
		p.SettingsDialect = settings.Dialect
	} else if !errors.Is(err, gradle.ErrScriptNotFound) {
		return nil, err
	}

	if build, err := gradle.LocateAppBuildScript(root, module); err == nil {
		p.AppBuildScript = build.Path
		p.AppBuildDialect = build.Dialect
	} else if !errors.Is(err, gradle.ErrScriptNotFound) {
		return nil, err
	}

	name, err := manifestApplicationName(root, module)
	if err != nil {
		logging.Warn("Android", "Failed to parse manifest for %s/%s: %v", root, module, err)
	}
	p.ManifestApplication = name

	sources, err := findApplicationSources(root, module)
	if err != nil {
		return nil, err
	}
	p.ApplicationSources = orderByManifest(sources, p.ManifestApplication)

	return p, nil
}

// PreferredApplicationSource returns the best Application class candidate,
// or nil when the project has none.
func (p *Project) PreferredApplicationSource() *SourceFile {
	if len(p.ApplicationSources) == 0 {
		return nil
	}
	return &p.ApplicationSources[0]
}

// HasGradleScripts reports whether both the settings script and the app
// module build script were found.
func (p *Project) HasGradleScripts() bool {
	return p.SettingsScript != "" && p.AppBuildScript != ""
}

// findApplicationSources walks <root>/<module>/src looking for
// *Application*.kt and *Application*.java files, the same heuristic the
// Android Studio integration wizard uses.
func findApplicationSources(root, module string) ([]SourceFile, error) {
	srcDir := filepath.Join(root, module, "src")
	if _, err := os.Stat(srcDir); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var sources []SourceFile
	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		ext := filepath.Ext(name)
		if ext != ".kt" && ext != ".java" {
			return nil
		}
		if !strings.Contains(strings.TrimSuffix(name, ext), "Application") {
			return nil
		}
		sources = append(sources, SourceFile{Path: path, Language: LanguageForPath(path)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", srcDir, err)
	}

	sort.Slice(sources, func(i, j int) bool { return sources[i].Path < sources[j].Path })
	return sources, nil
}

// orderByManifest moves sources matching the manifest-declared Application
// class to the front, keeping the alphabetical order otherwise.
func orderByManifest(sources []SourceFile, manifestName string) []SourceFile {
	if manifestName == "" || len(sources) < 2 {
		return sources
	}

	simple := manifestName
	if idx := strings.LastIndex(simple, "."); idx >= 0 {
		simple = simple[idx+1:]
	}

	sort.SliceStable(sources, func(i, j int) bool {
		return matchesClass(sources[i].Path, simple) && !matchesClass(sources[j].Path, simple)
	})
	return sources
}

func matchesClass(path, simpleName string) bool {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) == simpleName
}
