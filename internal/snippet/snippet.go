package snippet

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/gabrieluxcam/mcp-uxcam-android/internal/android"
)

// InitMarker is the call every rendered snippet contains. Its presence in a
// source file means UXCam initialization is already wired up.
const InitMarker = "UXCam.startWithConfiguration"

// Imports lists the classes the initialization code references.
var Imports = []string{
	"com.uxcam.UXCam",
	"com.uxcam.datamodel.UXConfig",
}

const javaInitTemplate = `String uxcamKey = {{ .KeyExpr }};
UXConfig config = new UXConfig.Builder(uxcamKey)
        .enableIntegrationLogging(BuildConfig.DEBUG)
        .build();
UXCam.startWithConfiguration(config);`

const kotlinInitTemplate = `val uxcamKey = {{ .KeyExpr }}
val config = UXConfig.Builder(uxcamKey)
    .enableIntegrationLogging(BuildConfig.DEBUG)
    .build()
UXCam.startWithConfiguration(config)`

const previewTemplate = `{{ .ImportLines | join "\n" }}

{{ .Body }}`

var templates = template.Must(
	template.New("snippets").Funcs(sprig.TxtFuncMap()).Parse(
		`{{ define "java" }}` + javaInitTemplate + `{{ end }}` +
			`{{ define "kotlin" }}` + kotlinInitTemplate + `{{ end }}` +
			`{{ define "preview" }}` + previewTemplate + `{{ end }}`))

// codeRefPattern matches expressions that should be passed through verbatim:
// dotted identifier references like BuildConfig.UXCAM_KEY.
var codeRefPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

// NormalizeKeyExpr turns the caller-provided app key reference into a code
// expression. Identifier references (BuildConfig.UXCAM_KEY) and already
// quoted literals pass through; anything else becomes a string literal.
func NormalizeKeyExpr(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if codeRefPattern.MatchString(trimmed) {
		return trimmed
	}
	if len(trimmed) >= 2 && strings.HasPrefix(trimmed, `"`) && strings.HasSuffix(trimmed, `"`) {
		return trimmed
	}
	return strconv.Quote(trimmed)
}

// InitStatements renders the initialization statement block (without imports)
// for the given language and app key expression.
func InitStatements(lang android.Language, keyExpr string) (string, error) {
	name := "java"
	if lang == android.LanguageKotlin {
		name = "kotlin"
	}

	var sb strings.Builder
	err := templates.ExecuteTemplate(&sb, name, map[string]string{
		"KeyExpr": NormalizeKeyExpr(keyExpr),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render %s init snippet: %w", lang, err)
	}
	return sb.String(), nil
}

// ImportLines renders the import statements for the given language.
func ImportLines(lang android.Language) []string {
	lines := make([]string, 0, len(Imports))
	for _, imp := range Imports {
		if lang == android.LanguageKotlin {
			lines = append(lines, "import "+imp)
		} else {
			lines = append(lines, "import "+imp+";")
		}
	}
	return lines
}

// Render produces the complete snippet (imports plus statements) for
// preview, as exposed through the uxcam://snippet/* MCP resources.
func Render(lang android.Language, keyExpr string) (string, error) {
	body, err := InitStatements(lang, keyExpr)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	err = templates.ExecuteTemplate(&sb, "preview", map[string]interface{}{
		"ImportLines": ImportLines(lang),
		"Body":        body,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render %s preview: %w", lang, err)
	}
	return sb.String(), nil
}
