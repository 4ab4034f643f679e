package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/includecycle/pkg/cycle"
	"github.com/matzehuels/includecycle/pkg/depgraph"
	"github.com/matzehuels/includecycle/pkg/errors"
)

const bannerWidth = 60

// Reporter writes human-readable reports to a writer.
type Reporter struct {
	w io.Writer

	banner lipgloss.Style
	alert  lipgloss.Style
	dir    lipgloss.Style
	dim    lipgloss.Style
	ok     lipgloss.Style
}

// New creates a reporter writing to w. Colors are only emitted when w is a
// terminal.
func New(w io.Writer) *Reporter {
	r := lipgloss.NewRenderer(w)
	return &Reporter{
		w:      w,
		banner: r.NewStyle().Foreground(lipgloss.Color("240")),
		alert:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("167")),
		dir:    r.NewStyle().Foreground(lipgloss.Color("36")),
		dim:    r.NewStyle().Foreground(lipgloss.Color("245")),
		ok:     r.NewStyle().Foreground(lipgloss.Color("35")),
	}
}

// Result writes the clean-pass line or the cycle report.
func (r *Reporter) Result(g *depgraph.Graph, c cycle.Cycle, found bool) {
	if !found {
		r.Clean()
		return
	}
	r.Cycle(g, c)
}

// Clean writes the no-cycle line.
func (r *Reporter) Clean() {
	fmt.Fprintln(r.w, r.ok.Render("No circular dependencies detected."))
}

// Cycle writes the cycle banner and one line per leg.
func (r *Reporter) Cycle(g *depgraph.Graph, c cycle.Cycle) {
	banner := r.banner.Render(strings.Repeat("=", bannerWidth))

	fmt.Fprintln(r.w, banner)
	fmt.Fprintln(r.w, r.alert.Render("Circular dependency detected! Please restructure the code to break the circular dependency."))
	fmt.Fprintln(r.w, "Cycle path:")
	for _, leg := range c.Legs(g) {
		fmt.Fprintf(r.w, "  %s -> %s %s\n",
			r.dir.Render(leg.From),
			r.dir.Render(leg.To),
			r.dim.Render("(via: "+strings.Join(leg.Headers, ", ")+")"))
	}
	fmt.Fprintln(r.w, banner)
}

// Integrity writes the error block for an include that did not resolve.
func (r *Reporter) Integrity(err *errors.IntegrityError) {
	fmt.Fprintln(r.w, r.alert.Render("ERROR: Header not found at "+err.Resolved))
	fmt.Fprintf(r.w, "  Referenced in: %s\n", err.ReferencedIn)
	fmt.Fprintf(r.w, "  Include path: %s\n", err.IncludePath)
	if err.SameDir {
		fmt.Fprintf(r.w, "  Source dir: %s\n", err.Base)
	} else {
		fmt.Fprintf(r.w, "  Solution dir: %s\n", err.Base)
	}
}
