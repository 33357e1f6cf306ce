package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vango-dev/vsel/internal/errors"
	"github.com/vango-dev/vsel/pkg/vdom"
)

// DefaultMaxBytes is the document size limit used when none is configured.
const DefaultMaxBytes = 4 << 20

// Kind identifies where a document reference points.
type Kind int

const (
	KindFile Kind = iota
	KindStdin
	KindS3
)

// Ref is a parsed document reference.
type Ref struct {
	Kind   Kind
	Path   string // KindFile
	Bucket string // KindS3
	Key    string // KindS3
}

// String returns the reference in its textual form.
func (r Ref) String() string {
	switch r.Kind {
	case KindStdin:
		return "-"
	case KindS3:
		return "s3://" + r.Bucket + "/" + r.Key
	default:
		return r.Path
	}
}

// ParseRef parses a document reference.
func ParseRef(ref string) (Ref, error) {
	switch {
	case ref == "":
		return Ref{}, errors.New("E103").
			WithDetail("The document reference is empty.")
	case ref == "-":
		return Ref{Kind: KindStdin}, nil
	case strings.HasPrefix(ref, "s3://"):
		bucket, key, ok := strings.Cut(strings.TrimPrefix(ref, "s3://"), "/")
		if !ok || bucket == "" || key == "" {
			return Ref{}, errors.New("E103").
				WithDetail("S3 references must have the form s3://bucket/key, got " + ref)
		}
		return Ref{Kind: KindS3, Bucket: bucket, Key: key}, nil
	case strings.Contains(ref, "://"):
		return Ref{}, errors.New("E103").
			WithDetail("Unsupported scheme in " + ref).
			WithSuggestion("Use a file path, '-' or s3://bucket/key")
	default:
		return Ref{Kind: KindFile, Path: ref}, nil
	}
}

// Loader reads and parses documents.
type Loader struct {
	s3       ObjectGetter
	stdin    io.Reader
	maxBytes int64
	logger   *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithS3 sets the getter used for s3:// references.
func WithS3(g ObjectGetter) Option {
	return func(l *Loader) { l.s3 = g }
}

// WithStdin sets the reader used for the "-" reference.
func WithStdin(r io.Reader) Option {
	return func(l *Loader) { l.stdin = r }
}

// WithMaxBytes sets the document size limit. Zero or less disables it.
func WithMaxBytes(n int64) Option {
	return func(l *Loader) { l.maxBytes = n }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) { l.logger = logger }
}

// NewLoader creates a Loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		stdin:    os.Stdin,
		maxBytes: DefaultMaxBytes,
		logger:   slog.Default().With("component", "source"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the referenced document and parses it.
func (l *Loader) Load(ctx context.Context, ref string) (*vdom.VNode, error) {
	r, err := ParseRef(ref)
	if err != nil {
		return nil, err
	}
	data, err := l.Read(ctx, r)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	l.logger.Debug("document loaded", "ref", r.String(), "bytes", len(data))
	return doc, nil
}

// Read returns the raw bytes of the referenced document.
func (l *Loader) Read(ctx context.Context, r Ref) ([]byte, error) {
	switch r.Kind {
	case KindStdin:
		return l.readAll(l.stdin, r)
	case KindS3:
		return l.readS3(ctx, r)
	default:
		f, err := os.Open(r.Path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.New("E100").
					WithDetail("No document at " + r.Path).
					Wrap(err)
			}
			return nil, errors.New("E101").Wrap(err)
		}
		defer f.Close()
		return l.readAll(f, r)
	}
}

func (l *Loader) readAll(rd io.Reader, r Ref) ([]byte, error) {
	if rd == nil {
		return nil, errors.New("E101").WithDetail("No reader is configured for " + r.String())
	}
	if l.maxBytes > 0 {
		rd = io.LimitReader(rd, l.maxBytes+1)
	}
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, errors.New("E101").Wrap(err)
	}
	if l.maxBytes > 0 && int64(len(data)) > l.maxBytes {
		return nil, errors.New("E105").
			WithDetail(fmt.Sprintf("%s exceeds %d bytes", r.String(), l.maxBytes)).
			WithSuggestion("Raise server.maxBodyBytes in vsel.json")
	}
	return data, nil
}

// Parse parses an HTML document held in memory.
func Parse(data []byte) (*vdom.VNode, error) {
	doc, err := vdom.ParseHTML(bytes.NewReader(data))
	if err != nil {
		return nil, errors.New("E102").Wrap(err)
	}
	return doc, nil
}

// ParseString parses an HTML document held in a string.
func ParseString(html string) (*vdom.VNode, error) {
	return Parse([]byte(html))
}
