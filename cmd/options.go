package cmd

// Options holds the shared command-line options for the ghdump CLI.
type Options struct {
	Prefix       string // Output filename prefix inside the timestamped directory
	Token        string // GitHub token; falls back to GITHUB_TOKEN
	OutputDir    string // Parent directory for the timestamped output directory
	MaxDiffLines int    // Per-file diff embedding limit (0 = default)
	Public       bool   // Force unauthenticated access to public repositories
	Verbosity    int
}

// Option is a functional option for configuring Options.
type Option func(*Options)

// NewOptions creates a new Options with defaults and applies any provided options.
func NewOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithPrefix sets the output filename prefix.
func WithPrefix(prefix string) Option {
	return func(o *Options) {
		o.Prefix = prefix
	}
}

// WithToken sets the GitHub token.
func WithToken(token string) Option {
	return func(o *Options) {
		o.Token = token
	}
}

// WithOutputDir sets the parent directory for output.
func WithOutputDir(dir string) Option {
	return func(o *Options) {
		o.OutputDir = dir
	}
}

// WithMaxDiffLines sets the per-file diff embedding limit.
func WithMaxDiffLines(limit int) Option {
	return func(o *Options) {
		o.MaxDiffLines = limit
	}
}

// WithPublic forces unauthenticated access; any token is ignored.
func WithPublic(public bool) Option {
	return func(o *Options) {
		o.Public = public
	}
}

// WithVerbosity sets the verbosity level.
func WithVerbosity(v int) Option {
	return func(o *Options) {
		o.Verbosity = v
	}
}
