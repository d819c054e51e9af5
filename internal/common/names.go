package common

import (
	"path/filepath"
	"strings"
)

// Separator joins the components of a collection name.
const Separator = "."

// SplitName splits a dotted collection name into its components.
func SplitName(name string) []string {
	if name == "" {
		return nil
	}

	return strings.Split(name, Separator)
}

// NameFromPath turns a relative directory path into a dotted name.
func NameFromPath(rel string) string {
	rel = filepath.ToSlash(filepath.Clean(rel))
	if rel == "." {
		return ""
	}

	return strings.ReplaceAll(rel, "/", Separator)
}

// PathFromName turns a dotted or slash-separated name into a relative
// directory path.
func PathFromName(name string) string {
	name = strings.ReplaceAll(name, "/", Separator)

	return filepath.Join(SplitName(name)...)
}

// NormalizeName accepts "a.b" or "a/b" and returns "a.b".
func NormalizeName(name string) string {
	return strings.Trim(strings.ReplaceAll(filepath.ToSlash(name), "/", Separator), Separator)
}

// IsYAML reports whether name carries a .yaml or .yml extension.
func IsYAML(name string) bool {
	ext := filepath.Ext(name)

	return ext == ".yaml" || ext == ".yml"
}
