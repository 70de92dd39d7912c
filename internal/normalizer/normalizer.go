// Package normalizer maps file and directory names to their canonical form.
//
// A canonical name is lowercase, uses hyphens in place of spaces and
// underscores, and keeps only ASCII letters, digits, dots and hyphens in the
// base portion. The extension is preserved apart from lowercasing.
package normalizer

import (
	"regexp"
	"strings"
)

// disallowedRun matches any run of characters that may not appear in a
// normalized base name.
var disallowedRun = regexp.MustCompile(`[^a-zA-Z0-9.]+`)

// Normalize returns the canonical form of name.
//
// The base (everything before the extension) has spaces and underscores
// replaced with hyphens, then every run of remaining disallowed characters
// collapsed into a single hyphen. The base and the original extension are
// then lowercased together.
//
// Examples:
//   - "My File_Name.TXT" -> "my-file-name.txt"
//   - "Report (final)!.pdf" -> "report-final-.pdf"
//   - "archive.tar.GZ" -> "archive.tar.gz"
func Normalize(name string) string {
	base, ext := SplitExt(name)

	base = strings.NewReplacer(" ", "-", "_", "-").Replace(base)
	base = disallowedRun.ReplaceAllString(base, "-")

	return strings.ToLower(base + ext)
}

// ShouldRename reports whether name needs normalizing.
// A name needs renaming when it contains a space, an underscore or an
// uppercase character, or when its base carries a run of disallowed
// characters other than a single hyphen. When ShouldRename is false,
// Normalize(name) == name.
func ShouldRename(name string) bool {
	if strings.ContainsAny(name, " _") {
		return true
	}
	if name != strings.ToLower(name) {
		return true
	}
	base, _ := SplitExt(name)
	return disallowedRun.ReplaceAllString(base, "-") != base
}

// SplitExt splits name into base and extension.
// The extension starts at the last dot, unless every character before that
// dot is itself a dot, in which case there is no extension. This keeps
// dotfiles such as ".bashrc" whole while "a." splits into "a" and ".".
func SplitExt(name string) (base, ext string) {
	dot := strings.LastIndexByte(name, '.')
	if dot <= 0 {
		return name, ""
	}
	if strings.Trim(name[:dot], ".") == "" {
		return name, ""
	}
	return name[:dot], name[dot:]
}
