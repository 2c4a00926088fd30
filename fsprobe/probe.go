package fsprobe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/seqkit/seq"
)

const tracerName = "github.com/kbukum/seqkit/fsprobe"

// Option configures a probe run.
type Option func(*Prober)

// WithLogger routes probe progress and degradation warnings to log.
// Without it the probe is silent.
func WithLogger(log zerolog.Logger) Option {
	return func(p *Prober) { p.log = log }
}

// WithTracerProvider emits one span per probe step through tp instead of
// the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(p *Prober) { p.tracer = tp.Tracer(tracerName) }
}

// Prober runs the capability checks against one file system location.
type Prober struct {
	log    zerolog.Logger
	tracer trace.Tracer
}

func newProber(opts []Option) *Prober {
	p := &Prober{
		log:    zerolog.Nop(),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(p)
	}
	// one id per probe run, so interleaved runs stay distinguishable
	p.log = p.log.With().Str("run_id", uuid.NewString()).Logger()
	return p
}

// step is one named capability check feeding the report.
type step struct {
	name string
	run  func(ctx context.Context) error
}

// runSteps drives the checks through the sequence core, one span and one
// debug line per step. The first failing step aborts the run.
func (p *Prober) runSteps(ctx context.Context, steps []step) error {
	return seq.ForEach(ctx, seq.FromSlice(steps), func(ctx context.Context, st step) error {
		ctx, span := p.tracer.Start(ctx, "fsprobe."+st.name,
			trace.WithAttributes(attribute.String("fsprobe.step", st.name)))
		defer span.End()
		if err := st.run(ctx); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return fmt.Errorf("%s: %w", st.name, err)
		}
		p.log.Debug().Str("step", st.name).Msg("probe step completed")
		return nil
	})
}

// ProbeReadOnly determines the capabilities that can be tested without
// writing to the file system under root. Fields whose checks require
// writing remain SupportUnknown.
func ProbeReadOnly(ctx context.Context, root string, opts ...Option) (*Abilities, error) {
	p := newProber(opts)
	p.log.Info().Str("path", root).Msg("probing file system read-only")

	a := &Abilities{Name: root, ReadOnly: true}
	steps := []step{
		{"extended-attrs", func(context.Context) error { return p.checkExtendedAttrs(a, root, false) }},
		{"acls", func(context.Context) error { return p.checkACLs(a, root) }},
		{"resource-forks", func(ctx context.Context) error { return p.checkResourceForksReadOnly(ctx, a, root) }},
	}
	if err := p.runSteps(ctx, steps); err != nil {
		return nil, err
	}
	return a, nil
}

// ProbeReadWrite creates a scratch directory under root and determines
// the full capability set by writing into it. The scratch directory is
// removed again before returning; root is created if it does not exist.
func ProbeReadWrite(ctx context.Context, root string, opts ...Option) (*Abilities, error) {
	p := newProber(opts)
	p.log.Info().Str("path", root).Msg("probing file system read/write")

	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	scratch := filepath.Join(root, "fsprobe-"+uuid.NewString())
	if err := os.Mkdir(scratch, 0o700); err != nil {
		return nil, err
	}
	defer os.RemoveAll(scratch)
	p.log.Debug().Str("scratch", scratch).Msg("created probe scratch directory")

	a := &Abilities{Name: root}
	steps := []step{
		{"ownership", func(context.Context) error { return p.checkOwnership(a, scratch) }},
		{"hardlinks", func(context.Context) error { return p.checkHardlinks(a, scratch) }},
		{"fsync-dirs", func(context.Context) error { return p.checkFsyncDirs(a, scratch) }},
		{"extended-attrs", func(context.Context) error { return p.checkExtendedAttrs(a, scratch, true) }},
		{"acls", func(context.Context) error { return p.checkACLs(a, scratch) }},
		{"dir-inc-perms", func(context.Context) error { return p.checkDirIncPerms(a, scratch) }},
		{"resource-forks", func(context.Context) error { return p.checkResourceForksReadWrite(a, scratch) }},
		{"quote-chars", func(context.Context) error { return p.checkQuoteChars(a, scratch) }},
	}
	if err := p.runSteps(ctx, steps); err != nil {
		return nil, err
	}
	return a, nil
}
