package metrics

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"srcmetrics/src/model"
	"srcmetrics/src/service/lexer"
	"srcmetrics/src/util"
)

// TokenStream yields the tokens of one file, ending with a KindEOF token
type TokenStream interface {
	Next() lexer.Token
}

// StreamFactory opens a token stream over a file buffer
type StreamFactory func(file string, content []byte) TokenStream

// SourceSet enumerates the files of a translation unit and their buffers
type SourceSet interface {
	Files() []string
	Buffer(name string) ([]byte, error)
}

// InclusionPolicy decides which files and functions are measured
type InclusionPolicy interface {
	ShouldIncludeFile(name string) bool
	ShouldIncludeFunction(name string) bool
}

// Driver runs one lexical pass per file and attributes every token to the
// project tree. It is not safe for concurrent use.
type Driver struct {
	policy  InclusionPolicy
	streams StreamFactory
	trace   io.Writer
}

// Option configures a Driver
type Option func(*Driver)

// WithTrace writes every counted token and every scope change to w
func WithTrace(w io.Writer) Option {
	return func(d *Driver) {
		d.trace = w
	}
}

// WithStreamFactory replaces the built-in C/C++ scanner
func WithStreamFactory(f StreamFactory) Option {
	return func(d *Driver) {
		d.streams = f
	}
}

// NewDriver creates a driver applying the given inclusion policy
func NewDriver(policy InclusionPolicy, opts ...Option) *Driver {
	d := &Driver{
		policy: policy,
		streams: func(file string, content []byte) TokenStream {
			return lexer.NewScanner(file, content)
		},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// scope tracks the active function and its uniqueness accumulators
type scope struct {
	unit     *model.Unit
	function string
	acc      *Accumulators
}

// close commits the accumulators into the active unit when it is a function
func (s *scope) close() {
	if s.unit.IsFunctionScope() {
		s.acc.Drain(s.unit)
	}
}

// Run measures every file of sources and returns the project unit. Any
// unreadable buffer aborts the whole run and no tree is returned.
func (d *Driver) Run(project string, sources SourceSet, ranges []model.FunctionRange) (*model.Unit, error) {
	startTime := time.Now()
	root := model.NewProjectUnit(project)
	index := NewRangeIndex(ranges)

	for _, o := range FindOverlaps(ranges) {
		util.Warn("Function ranges overlap: %s (%s) and %s (%s); the first one wins",
			o.First.Name, o.First.Start, o.Second.Name, o.Second.Start)
	}

	st := &scope{acc: NewAccumulators()}
	files := sources.Files()
	for _, name := range files {
		buf, err := sources.Buffer(name)
		if err != nil {
			util.Error("Invalid buffer for %s: %v", name, err)
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}

		if !d.policy.ShouldIncludeFile(name) {
			util.Debug("Skipping excluded file: %s", name)
			continue
		}

		d.lexFile(root, st, index, name, buf)
	}

	util.Info("Lexed %d files with %d function ranges (took %v)", len(files), len(ranges), time.Since(startTime))
	return root, nil
}

func (d *Driver) lexFile(root *model.Unit, st *scope, index *RangeIndex, name string, buf []byte) {
	file := root.Child(name, model.UnitFile)
	file.Set(model.MetricLineCount, bytes.Count(buf, []byte{'\n'}))

	st.unit = file
	st.function = ""

	stream := d.streams(name, buf)
	tokens, counted := 0, 0
	for {
		tok := stream.Next()
		if tok.Is(lexer.KindEOF) {
			break
		}
		tokens++

		function := index.Locate(tok.Pos)
		if function != st.function {
			d.tracef("[fn:%s]", function)
			st.close()
			st.function = function
		}

		include := true
		if function == "" {
			st.unit = file
		} else {
			st.unit = file.Child(function, model.UnitFunction)
			include = d.policy.ShouldIncludeFunction(function)
		}

		if include {
			d.count(tok, st)
			counted++
		}
	}
	st.close()

	util.Debug("Lexed %s: %d tokens, %d counted", name, tokens, counted)
}

func (d *Driver) count(tok lexer.Token, st *scope) {
	Classify(tok, st.unit, st.acc)
	if d.trace == nil {
		return
	}

	switch {
	case tok.Is(lexer.KindRawIdentifier) && IsKeyword(tok.Text):
		d.tracef("(%s,reserved,%s)", tok.Kind, tok.Text)
	case tok.Is(lexer.KindRawIdentifier):
		d.tracef("(%s,unreserved,%s)", tok.Kind, tok.Text)
	case tok.Is(lexer.KindNumericConstant), tok.Is(lexer.KindStringLiteral):
		d.tracef("(%s,%s)", tok.Kind, tok.Text)
	default:
		d.tracef("(%s)", tok.Kind)
	}
}

func (d *Driver) tracef(format string, args ...any) {
	if d.trace == nil {
		return
	}
	fmt.Fprintf(d.trace, format+"\n", args...)
}
