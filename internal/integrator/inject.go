package integrator

import (
	"errors"
	"regexp"
	"strings"

	"github.com/gabrieluxcam/mcp-uxcam-android/internal/android"
	"github.com/gabrieluxcam/mcp-uxcam-android/internal/snippet"
)

var errNoOnCreate = errors.New("no onCreate method found")

var (
	onCreatePattern = regexp.MustCompile(`onCreate\s*\([^)]*\)\s*\{`)
	importPattern   = regexp.MustCompile(`(?m)^import\s+[^\n]+$`)
	packagePattern  = regexp.MustCompile(`(?m)^package\s+[^\n]+$`)
)

const initIndent = "        "

// injectIntoSource adds the UXCam imports to the file header and the
// initialization statements to the top of onCreate. The input content is
// assumed not to contain the init call already.
func injectIntoSource(content string, lang android.Language, keyExpr string) (string, error) {
	loc := onCreatePattern.FindStringIndex(content)
	if loc == nil {
		return "", errNoOnCreate
	}

	statements, err := snippet.InitStatements(lang, keyExpr)
	if err != nil {
		return "", err
	}

	block := "\n" + initIndent + strings.ReplaceAll(statements, "\n", "\n"+initIndent)
	content = content[:loc[1]] + block + content[loc[1]:]

	return addImports(content, lang), nil
}

// addImports inserts the UXCam import statements after the existing import
// section, or after the package declaration when the file imports nothing
// yet. Imports already present are not duplicated.
func addImports(content string, lang android.Language) string {
	var missing []string
	for _, line := range snippet.ImportLines(lang) {
		if !strings.Contains(content, line) {
			missing = append(missing, line)
		}
	}
	if len(missing) == 0 {
		return content
	}
	insert := strings.Join(missing, "\n")

	if locs := importPattern.FindAllStringIndex(content, -1); len(locs) > 0 {
		last := locs[len(locs)-1]
		return content[:last[1]] + "\n" + insert + content[last[1]:]
	}

	if loc := packagePattern.FindStringIndex(content); loc != nil {
		return content[:loc[1]] + "\n\n" + insert + content[loc[1]:]
	}

	// No package declaration (unusual, but legal in Java's default package).
	return insert + "\n\n" + content
}
