package result

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// MatchName matches files called exactly name.
func MatchName(name string) func(string) bool {
	return func(base string) bool { return base == name }
}

// MatchPattern matches file names whose beginning matches re.
func MatchPattern(re *regexp.Regexp) func(string) bool {
	return func(base string) bool {
		loc := re.FindStringIndex(base)
		return loc != nil && loc[0] == 0
	}
}

// Discover returns every regular file under root whose base name satisfies
// match. Paths come back in lexical walk order.
func Discover(root string, match func(string) bool) ([]string, error) {
	var paths []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() && match(info.Name()) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return paths, nil
}

// WriteFileAtomic writes data to a temporary sibling and renames it into place.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	return os.Rename(tmp.Name(), path)
}
