// Package prompt reads line-oriented answers from an interactive console.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Separator is printed between report sections.
var Separator = strings.Repeat("-", 40)

// ErrClosed is returned once the input stream is exhausted.
var ErrClosed = errors.New("prompt: input closed")

type result struct {
	line string
	err  error
}

// Prompter writes questions to w and reads one line per answer from r.
// Lines are read by a background goroutine so a blocked read never keeps
// Ask from returning when its context is cancelled.
type Prompter struct {
	r     *bufio.Reader
	w     io.Writer
	once  sync.Once
	lines chan result
}

// New creates a prompter over the given console streams.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(r), w: w, lines: make(chan result)}
}

// Writer returns the console output stream.
func (p *Prompter) Writer() io.Writer { return p.w }

func (p *Prompter) read() {
	defer close(p.lines)
	for {
		line, err := p.r.ReadString('\n')
		p.lines <- result{line: line, err: err}
		if err != nil {
			return
		}
	}
}

// Ask prints msg and returns the next input line without its line ending.
// A final line that is not newline-terminated is still returned; the call
// after it reports ErrClosed. Cancelling ctx returns ctx.Err() at once; a
// line arriving afterwards is kept for the next Ask.
func (p *Prompter) Ask(ctx context.Context, msg string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if msg != "" {
		if _, err := fmt.Fprint(p.w, msg); err != nil {
			return "", err
		}
	}
	p.once.Do(func() { go p.read() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-p.lines:
		if !ok {
			return "", ErrClosed
		}
		if res.err != nil {
			if !errors.Is(res.err, io.EOF) {
				return "", fmt.Errorf("read input: %w", res.err)
			}
			if res.line == "" {
				return "", ErrClosed
			}
		}
		return strings.TrimRight(res.line, "\r\n"), nil
	}
}

// Confirm asks msg and reports whether the answer equals want, ignoring case
// and surrounding whitespace.
func (p *Prompter) Confirm(ctx context.Context, msg, want string) (bool, error) {
	ans, err := p.Ask(ctx, msg)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(ans), want), nil
}
