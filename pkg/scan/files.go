package scan

import (
	"context"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
)

// DefaultExtensions lists the source and header suffixes scanned by default.
var DefaultExtensions = []string{".cpp", ".cc", ".cxx", ".h", ".hpp", ".hxx", ".hh"}

// DefaultIgnoreDirs lists directory names skipped at any depth. Hidden
// directories (leading dot) are always skipped as well.
var DefaultIgnoreDirs = []string{"build", "bin", "obj", "Debug", "Release", "x64", "x86", "external"}

// Filter decides which files are scanned and which directories are pruned.
// The zero value matches nothing; use [NewFilter].
type Filter struct {
	extensions map[string]struct{} // lower-cased, with leading dot
	ignoreDirs map[string]struct{}
}

// NewFilter builds a filter from the defaults plus the given extra
// extensions and ignored directory names.
func NewFilter(extraExtensions, extraIgnoreDirs []string) Filter {
	f := Filter{
		extensions: make(map[string]struct{}),
		ignoreDirs: make(map[string]struct{}),
	}
	for _, ext := range slices.Concat(DefaultExtensions, extraExtensions) {
		f.extensions[strings.ToLower(ext)] = struct{}{}
	}
	for _, name := range slices.Concat(DefaultIgnoreDirs, extraIgnoreDirs) {
		f.ignoreDirs[name] = struct{}{}
	}
	return f
}

// IsSourceFile reports whether name carries a recognised extension.
func (f Filter) IsSourceFile(name string) bool {
	ext := filepath.Ext(name)
	if ext == "" {
		return false
	}
	_, ok := f.extensions[strings.ToLower(ext)]
	return ok
}

// IsIgnoredDir reports whether a directory with this base name is pruned.
func (f Filter) IsIgnoredDir(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	_, ok := f.ignoreDirs[name]
	return ok
}

// Extensions returns the recognised extensions in sorted order.
func (f Filter) Extensions() []string {
	exts := make([]string, 0, len(f.extensions))
	for ext := range f.extensions {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}

// File is a source file found by [Walker.Walk].
type File struct {
	Path string // Filesystem path (root joined with the relative path)
	Dir  string // Directory identifier, relative to the root
}

// Walker traverses an analysis root.
type Walker struct {
	Filter Filter

	// OnError, when set, receives entries that could not be listed.
	// They are skipped either way.
	OnError func(path string, err error)
}

// Walk calls fn for every recognised source file under root, in lexical
// order. It stops at the first error returned by fn, or when ctx is done.
func (w Walker) Walk(ctx context.Context, root string, fn func(File) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if path == root {
				return err
			}
			if w.OnError != nil {
				w.OnError(path, err)
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != root && w.Filter.IsIgnoredDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !w.Filter.IsSourceFile(d.Name()) {
			return nil
		}

		dir, err := DirID(root, filepath.Dir(path))
		if err != nil {
			return err
		}
		return fn(File{Path: path, Dir: dir})
	})
}

// DirID converts a filesystem directory under root into a directory
// identifier.
func DirID(root, dir string) (string, error) {
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}
