package gradle

import (
	"fmt"
	"regexp"
)

// blockPattern matches the opening of a named configuration block, e.g.
// "repositories {" or "dependencies {".
func blockPattern(block string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(block) + `\s*\{`)
}

// InsertIntoBlock inserts line on a new row directly after the opening brace
// of the first occurrence of the named block, using the given indentation.
// Only the first occurrence is touched; nested or repeated blocks further
// down the script are left alone.
func (s *Script) InsertIntoBlock(block, line, indent string) error {
	loc := blockPattern(block).FindStringIndex(s.content)
	if loc == nil {
		return fmt.Errorf("no %q block found in %s", block, s.Path)
	}

	head := s.content[:loc[1]]
	tail := s.content[loc[1]:]
	s.content = head + "\n" + indent + line + tail
	return nil
}

// HasBlock reports whether the script contains the named block.
func (s *Script) HasBlock(block string) bool {
	return blockPattern(block).MatchString(s.content)
}
