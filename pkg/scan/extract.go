package scan

import (
	"os"
	"path"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/matzehuels/includecycle/pkg/errors"
)

// includePattern matches quoted include directives only. Angle-bracket
// includes name system or library headers and never match.
var includePattern = regexp.MustCompile(`#include\s*"([^"]+)"`)

// HeaderRef is a validated quoted include: the header's file name and the
// identifier of the directory that owns it.
type HeaderRef struct {
	Name string
	Dir  string
}

// Extractor resolves quoted includes against an analysis root.
type Extractor struct {
	Root string
}

// NewExtractor returns an extractor for the given analysis root.
func NewExtractor(root string) *Extractor {
	return &Extractor{Root: root}
}

// Extract returns the header references contributed by one file.
//
// file is the including file's path, dir its directory identifier and
// content its text. Includes containing a directory separator are resolved
// relative to the root; the rest must exist next to the including file and
// are dropped after validation. The result is deduplicated and sorted.
//
// A reference may still carry Dir == dir (e.g. "core/a.h" included from
// core/). Deciding whether that forms an edge is left to the caller.
//
// The first include that does not resolve on disk stops extraction with an
// [*errors.IntegrityError].
func (x *Extractor) Extract(file, dir string, content []byte) ([]HeaderRef, error) {
	var refs []HeaderRef
	for _, m := range includePattern.FindAllSubmatch(content, -1) {
		ref, ok, err := x.resolve(file, dir, string(m[1]))
		if err != nil {
			return nil, err
		}
		if ok {
			refs = append(refs, ref)
		}
	}

	slices.SortFunc(refs, compareRefs)
	return slices.Compact(refs), nil
}

func (x *Extractor) resolve(file, dir, include string) (HeaderRef, bool, error) {
	if !strings.ContainsAny(include, `/\`) {
		full := absPath(filepath.Join(x.Root, filepath.FromSlash(dir), include))
		if !exists(full) {
			return HeaderRef{}, false, &errors.IntegrityError{
				IncludePath:  include,
				ReferencedIn: file,
				Resolved:     full,
				Base:         dir,
				SameDir:      true,
			}
		}
		return HeaderRef{}, false, nil
	}

	rel := path.Clean(strings.ReplaceAll(include, `\`, "/"))
	full := absPath(filepath.Join(x.Root, filepath.FromSlash(rel)))
	if !exists(full) {
		return HeaderRef{}, false, &errors.IntegrityError{
			IncludePath:  include,
			ReferencedIn: file,
			Resolved:     full,
			Base:         absPath(x.Root),
		}
	}

	owner := path.Dir(rel)
	if owner != dir && x.sameDir(owner, dir) {
		owner = dir
	}
	return HeaderRef{Name: path.Base(rel), Dir: owner}, true, nil
}

// sameDir reports whether two directory identifiers name the same directory
// on disk, which catches case-insensitive filesystems and symlinked aliases.
func (x *Extractor) sameDir(a, b string) bool {
	sa, err := os.Stat(filepath.Join(x.Root, filepath.FromSlash(a)))
	if err != nil {
		return false
	}
	sb, err := os.Stat(filepath.Join(x.Root, filepath.FromSlash(b)))
	if err != nil {
		return false
	}
	return os.SameFile(sa, sb)
}

func compareRefs(a, b HeaderRef) int {
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return strings.Compare(a.Dir, b.Dir)
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}

func exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
