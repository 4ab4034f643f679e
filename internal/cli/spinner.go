package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

const spinnerInterval = 80 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner animates a status line on stderr while a slow export step runs,
// such as SVG rendering. The outcome line is printed to out once it stops.
// Cancelling the parent context clears the line and ends the animation.
type Spinner struct {
	label  string
	out    io.Writer
	term   io.Writer
	parent context.Context
	ctx    context.Context
	cancel context.CancelFunc

	stopOnce sync.Once
	exited   chan struct{}
	mu       sync.Mutex
}

// newSpinner creates a spinner that runs until stopped.
func newSpinner(out io.Writer, label string) *Spinner {
	return newSpinnerWithContext(context.Background(), out, label)
}

// newSpinnerWithContext creates a spinner bound to ctx.
func newSpinnerWithContext(ctx context.Context, out io.Writer, label string) *Spinner {
	sctx, cancel := context.WithCancel(ctx)
	return &Spinner{
		label:  label,
		out:    out,
		term:   os.Stderr,
		parent: ctx,
		ctx:    sctx,
		cancel: cancel,
		exited: make(chan struct{}),
	}
}

// Start draws frames until Stop is called or the context ends.
func (s *Spinner) Start() {
	go s.animate()
}

func (s *Spinner) animate() {
	defer close(s.exited)
	tick := time.NewTicker(spinnerInterval)
	defer tick.Stop()

	for frame := 0; ; frame++ {
		select {
		case <-s.ctx.Done():
			s.erase()
			return
		case <-tick.C:
			s.draw(spinnerFrames[frame%len(spinnerFrames)])
		}
	}
}

func (s *Spinner) draw(frame string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.term, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.label))
}

func (s *Spinner) erase() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.term, "\r%s\r", strings.Repeat(" ", len(s.label)+4))
}

// Stop ends the animation and waits for the status line to be erased.
// It must follow Start; repeated calls are no-ops.
func (s *Spinner) Stop() {
	s.stopOnce.Do(func() {
		s.cancel()
		<-s.exited
	})
}

// StopWithSuccess stops the spinner and prints msg as a success line.
func (s *Spinner) StopWithSuccess(msg string) {
	s.Stop()
	printSuccess(s.out, "%s", msg)
}

// StopWithError stops the spinner and prints msg as a failure line.
func (s *Spinner) StopWithError(msg string) {
	s.Stop()
	printError(s.out, "%s", msg)
}

// Cancelled reports whether the parent context ended before Stop.
func (s *Spinner) Cancelled() bool {
	return s.parent.Err() != nil
}
