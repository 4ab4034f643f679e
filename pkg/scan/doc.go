// Package scan finds C and C++ source files under an analysis root and
// extracts the quoted includes that couple one directory to another.
//
// # Include Extraction
//
// [Extractor.Extract] recognises only quoted directives:
//
//	#include "utils/u.h"   // matched, resolved against the analysis root
//	#include "local.h"     // matched, must exist next to the including file
//	#include <vector>      // never matched
//
// Every matched path is checked on disk. A path that does not resolve is a
// tree-integrity violation and is returned as an
// [github.com/matzehuels/includecycle/pkg/errors.IntegrityError]; callers
// are expected to stop the analysis. Includes without a directory separator
// are validated and then dropped, since they never cross a directory.
//
// # Walking
//
// [Walker.Walk] visits files in lexical order, pruning hidden directories and
// build or vendored directories by name at any depth (see
// [DefaultIgnoreDirs]). Files are recognised by extension, case-insensitively
// (see [DefaultExtensions]).
//
// # Directory Identifiers
//
// Directories are identified by slash-separated paths relative to the
// analysis root. The root itself is ".".
package scan
