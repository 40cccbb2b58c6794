package test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// StrStartsWith is a gomock.Cond predicate for strings with the given prefix.
func StrStartsWith(prefix string) func(x any) bool {
	res := func(x any) bool {
		str, ok := x.(string)
		if !ok {
			return false
		}
		return strings.HasPrefix(str, prefix)
	}
	return res
}

// StrContainsAll is a gomock.Cond predicate for strings holding every part.
func StrContainsAll(parts ...string) func(x any) bool {
	res := func(x any) bool {
		str, ok := x.(string)
		if !ok {
			return false
		}
		for _, part := range parts {
			if !strings.Contains(str, part) {
				return false
			}
		}
		return true
	}
	return res
}

// WriteFile creates a file under dir and returns its path.
func WriteFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	filePath := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filePath, content, 0644); err != nil {
		t.Fatal(err)
	}
	return filePath
}
