package gradle

import "fmt"

const repositoryIndent = "        "

// MavenRepoSnippet returns the repository declaration for the given dialect.
func MavenRepoSnippet(dialect Dialect, url string) string {
	if dialect == KotlinDSL {
		return fmt.Sprintf("maven(%q)", url)
	}
	return fmt.Sprintf("maven { url %q }", url)
}

// EnsureMavenRepo adds the given Maven repository to the first repositories
// block of the script. It reports whether the script was changed; an
// already-present declaration is left untouched.
//
// Settings scripts generated by recent Android Studio versions declare
// repositories under dependencyResolutionManagement, older projects declare
// them at the top level. Both shapes carry a "repositories {" block, so the
// first-occurrence insertion covers either layout.
func (s *Script) EnsureMavenRepo(url string) (bool, error) {
	snippet := MavenRepoSnippet(s.Dialect, url)
	if s.Contains(snippet) {
		return false, nil
	}
	if err := s.InsertIntoBlock("repositories", snippet, repositoryIndent); err != nil {
		return false, err
	}
	return true, nil
}
