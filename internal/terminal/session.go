// Package terminal owns the interactive terminal for one run of the app.
//
// A Session is acquired once, runs a Bubble Tea program on the alternate
// screen and is released exactly once on every exit path. Fatal failures
// come back as *Error with the Kind that caused them.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
)

// Program is the part of *tea.Program a Session drives.
type Program interface {
	Run() (tea.Model, error)
	Kill()
}

// quitter is implemented by models that can tell a requested quit apart
// from the loop being cut short.
type quitter interface {
	Quitting() bool
}

// Options configure Acquire. Zero values mean stdin and stdout.
type Options struct {
	Input  io.Reader
	Output io.Writer
	// AllowNonTTY skips the interactive terminal check, e.g. for piped input.
	AllowNonTTY bool
}

// Session is the single process-wide terminal surface.
type Session struct {
	program Program
	display *displayWriter
	input   *inputReader

	mu      sync.Mutex
	hooks   []func()
	running bool
	once    sync.Once
}

var isTerminal = term.IsTerminal

// Acquire prepares the terminal for model. It fails with KindAcquire when
// the input is not an interactive terminal and opts.AllowNonTTY is unset.
func Acquire(model tea.Model, opts Options) (*Session, error) {
	in := opts.Input
	if in == nil {
		in = os.Stdin
	}
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	_, tty := isTerminalFile(in)
	if !tty && !opts.AllowNonTTY {
		return nil, &Error{Kind: KindAcquire, Err: fmt.Errorf("input: %w", ErrNotTerminal)}
	}

	s := &Session{display: &displayWriter{out: out}}

	// A terminal goes to Bubble Tea untouched so it can switch to raw mode.
	progIn := in
	if !tty {
		s.input = &inputReader{in: in}
		progIn = s.input
	}

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithInput(progIn),
		tea.WithOutput(s.display),
	)
	s.program = p
	s.display.onFail = p.Kill

	log.Printf("terminal: session acquired (tty=%t)", tty)
	return s, nil
}

// newSession wraps an already built program, used with fakes in tests.
func newSession(p Program, display *displayWriter, input *inputReader) *Session {
	return &Session{program: p, display: display, input: input}
}

// OnRelease registers fn to run when the session is released. Hooks run in
// reverse registration order.
func (s *Session) OnRelease(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, fn)
}

// Run blocks until the program quits or fails, then releases the session.
// The returned model is the program's final model.
func (s *Session) Run() (tea.Model, error) {
	defer s.Release()

	s.setRunning(true)
	final, err := s.program.Run()
	s.setRunning(false)
	return final, s.classify(final, err)
}

func (s *Session) setRunning(v bool) {
	s.mu.Lock()
	s.running = v
	s.mu.Unlock()
}

// Release stops the program if it is still running and runs the release
// hooks. It is safe to call any number of times; only the first call acts.
func (s *Session) Release() {
	s.once.Do(func() {
		s.mu.Lock()
		running := s.running
		hooks := s.hooks
		s.hooks = nil
		s.mu.Unlock()

		// Bubble Tea restores the terminal itself when Run returns.
		if running {
			s.program.Kill()
		}

		for i := len(hooks) - 1; i >= 0; i-- {
			hooks[i]()
		}
		log.Printf("terminal: session released")
	})
}

func (s *Session) classify(final tea.Model, err error) error {
	// Piped input often closes right behind the quit key; the quit wins.
	if q, ok := final.(quitter); ok && q.Quitting() {
		return nil
	}
	if err == nil {
		return nil
	}
	if s.display != nil {
		if derr := s.display.Err(); derr != nil {
			return &Error{Kind: KindDisplay, Err: derr}
		}
	}
	if s.input != nil {
		if ierr := s.input.Err(); ierr != nil {
			return &Error{Kind: KindInput, Err: ierr}
		}
	}
	if errors.Is(err, tea.ErrProgramKilled) {
		// Killed without a recorded I/O failure: a recovered panic inside
		// the program, which means nothing could be drawn.
		return &Error{Kind: KindDisplay, Err: err}
	}
	return &Error{Kind: KindInput, Err: err}
}
