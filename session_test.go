package bikeshare

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/theoremus-urban-solutions/bikeshare-stats/config"
	"github.com/theoremus-urban-solutions/bikeshare-stats/internal/testutil"
	"github.com/theoremus-urban-solutions/bikeshare-stats/trips"
)

func testConfig(t *testing.T) config.AppConfig {
	t.Helper()
	cfg := config.Default()
	cfg.Data.Dir = testutil.GetTestDataPath()
	cfg.Data.Cities = []config.CityConfig{
		{Name: "Chicago", File: "chicago.csv"},
		{Name: "Washington", File: "washington.csv"},
	}
	if err := config.Validate(cfg); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return cfg
}

func run(t *testing.T, cfg config.AppConfig, input string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := NewSession(cfg, strings.NewReader(input), &out, logger)
	err := s.Run(context.Background())
	return out.String(), err
}

func TestSession_RestartWithMonthFilter(t *testing.T) {
	input := strings.Join([]string{
		"chicago", "all", "all", "no", "yes",
		"chicago", "february", "all", "no", "no",
	}, "\n") + "\n"

	out, err := run(t, testConfig(t), input)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if n := strings.Count(out, "Hello! Let's explore some US bikeshare data!"); n != 2 {
		t.Fatalf("expected two iterations, got %d", n)
	}
	second := strings.LastIndex(out, "Hello!")
	first, rest := out[:second], out[second:]

	if !strings.Contains(first, "Most common month: March") {
		t.Errorf("unfiltered run should report March, output:\n%s", first)
	}
	if !strings.Contains(rest, "Most common month: February") {
		t.Errorf("February run should report February, output:\n%s", rest)
	}
	if !strings.Contains(rest, "Most common start hour: 8") {
		t.Errorf("February run should only see February hours, output:\n%s", rest)
	}
}

func TestSession_ReportOrder(t *testing.T) {
	out, err := run(t, testConfig(t), "washington\nall\nall\nyes\nno\nno\n")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	order := []string{
		"Loading the data...",
		"Calculating The Most Frequent Times of Travel...",
		"Calculating The Most Popular Stations and Trip...",
		"Calculating Trip Duration...",
		"Calculating User Stats...",
		"No gender data available.",
		"would you like to inspect the raw data?",
		"14th & Belmont St NW",
		"Would you like to restart?",
	}
	pos := 0
	for _, want := range order {
		i := strings.Index(out[pos:], want)
		if i < 0 {
			t.Fatalf("expected %q after offset %d, output:\n%s", want, pos, out)
		}
		pos += i + len(want)
	}
}

func TestSession_InvalidInputReprompts(t *testing.T) {
	out, err := run(t, testConfig(t), "boston\nchicago\nmarch\nmonday\nno\nno\n")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !strings.Contains(out, "please select from the available options") {
		t.Error("expected re-prompt for unknown city")
	}
	if !strings.Contains(out, "Most common day: Monday") {
		t.Errorf("expected Monday report, output:\n%s", out)
	}
}

func TestSession_UnprovisionedCity(t *testing.T) {
	_, err := run(t, testConfig(t), "new york city\nall\nall\n")
	if !errors.Is(err, trips.ErrUnknownCity) {
		t.Errorf("expected ErrUnknownCity, got %v", err)
	}
}

func TestSession_MissingFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.Data.Dir = t.TempDir()

	if _, err := run(t, cfg, "chicago\nall\nall\n"); err == nil {
		t.Error("expected error for missing data file")
	}
}

func TestSession_InputClosed(t *testing.T) {
	for _, input := range []string{"", "chicago\n", "chicago\nall\nall\nyes\n"} {
		if _, err := run(t, testConfig(t), input); err != nil {
			t.Errorf("input %q: closed input should end the session cleanly, got %v", input, err)
		}
	}
}

func TestSession_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewSession(testConfig(t), strings.NewReader("chicago\nall\nall\n"), &bytes.Buffer{}, nil)
	if err := s.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestSession_CancelWhileWaitingForInput(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	var out syncBuffer
	s := NewSession(testConfig(t), pr, &out, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	if _, err := pw.Write([]byte("chicago\n")); err != nil {
		t.Fatalf("write city: %v", err)
	}
	// the session is now blocked on the month question
	deadline := time.Now().Add(2 * time.Second)
	for !strings.Contains(out.String(), "name of the month to filter by") && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after its context was cancelled")
	}
}

// syncBuffer guards a bytes.Buffer written by the session goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
