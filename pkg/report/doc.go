// Package report renders analysis results for people and tools.
//
// # Console
//
// [Reporter] writes the console report. A clean run prints a single line; a
// cycle prints a banner, one line per leg naming the headers responsible,
// and a closing banner:
//
//	============================================================
//	Circular dependency detected! Please restructure the code to break the circular dependency.
//	Cycle path:
//	  core -> utils (via: u.h)
//	  utils -> core (via: a.h)
//	============================================================
//
// Broken includes are rendered with [Reporter.Integrity]. Styling uses
// lipgloss and is dropped automatically when the writer is not a terminal.
//
// # JSON
//
// [WriteJSON] emits the whole graph plus the cycle, for CI annotations and
// other tooling.
//
// # Graphviz
//
// [ToDOT] converts the directory graph to DOT with cycle legs highlighted;
// [RenderSVG] renders DOT in-process using [github.com/goccy/go-graphviz].
package report
