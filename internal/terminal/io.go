package terminal

import (
	"errors"
	"io"
	"os"
	"sync"
)

// displayWriter forwards frames to the terminal and remembers the first
// write failure. Bubble Tea's renderer drops write errors, so onFail is how
// a broken display stops the program.
type displayWriter struct {
	out    io.Writer
	onFail func()

	mu  sync.Mutex
	err error
}

func (d *displayWriter) Write(p []byte) (int, error) {
	n, err := d.out.Write(p)
	if err != nil {
		d.mu.Lock()
		first := d.err == nil
		if first {
			d.err = err
		}
		d.mu.Unlock()
		if first && d.onFail != nil {
			d.onFail()
		}
	}
	return n, err
}

// Read is only here so the writer satisfies term.File.
func (d *displayWriter) Read(p []byte) (int, error) {
	if r, ok := d.out.(io.Reader); ok {
		return r.Read(p)
	}
	return 0, io.EOF
}

func (d *displayWriter) Close() error {
	return nil
}

// Fd exposes the underlying descriptor so Bubble Tea can still query the
// terminal size and color support through the wrapper.
func (d *displayWriter) Fd() uintptr {
	if f, ok := d.out.(interface{ Fd() uintptr }); ok {
		return f.Fd()
	}
	return ^uintptr(0)
}

func (d *displayWriter) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.err
}

// inputReader is used for non-terminal input. Bubble Tea stops reading
// silently at EOF; turning EOF into an error ends the session instead of
// leaving it waiting forever.
type inputReader struct {
	in io.Reader

	mu  sync.Mutex
	err error
}

func (r *inputReader) Read(p []byte) (int, error) {
	n, err := r.in.Read(p)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = ErrInputClosed
		}
		r.mu.Lock()
		if r.err == nil {
			r.err = err
		}
		r.mu.Unlock()
	}
	return n, err
}

func (r *inputReader) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

func isTerminalFile(v any) (*os.File, bool) {
	f, ok := v.(*os.File)
	if !ok {
		return nil, false
	}
	return f, isTerminal(f.Fd())
}
