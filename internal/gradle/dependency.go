package gradle

import "fmt"

const dependencyIndent = "    "

// DependencyLine returns the implementation declaration for the given
// dialect and Maven coordinate.
func DependencyLine(dialect Dialect, coordinate string) string {
	if dialect == KotlinDSL {
		return fmt.Sprintf("implementation(%q)", coordinate)
	}
	return fmt.Sprintf("implementation '%s'", coordinate)
}

// EnsureDependency adds an implementation dependency on the given Maven
// coordinate to the first dependencies block of the script. It reports
// whether the script was changed; an already-present declaration is left
// untouched.
func (s *Script) EnsureDependency(coordinate string) (bool, error) {
	line := DependencyLine(s.Dialect, coordinate)
	if s.Contains(line) {
		return false, nil
	}
	if err := s.InsertIntoBlock("dependencies", line, dependencyIndent); err != nil {
		return false, err
	}
	return true, nil
}
