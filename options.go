package jsondiff

// LargeFileThreshold is the default number of lines above which line diffs
// switch from LCS alignment to positional comparison
const LargeFileThreshold = 1000

// Config holds every tunable for line & structural diffs. Each diff reads
// only the fields it cares about
type Config struct {
	// MaxLines truncates both sides of a line diff to this many lines before
	// comparing. Zero or negative means no limit, a negative count never
	// drops lines from the end
	MaxLines int
	// LargeFileThreshold picks the line diff algorithm: if either side has
	// more lines than this, lines are compared by position
	LargeFileThreshold int
	// BasePath prefixes every path in a structural diff. The empty base path
	// is the document root, which never gets a synthetic "changed" entry
	BasePath string
	// Provide a non-nil stats pointer & diff will populate it with data from
	// the diff process
	Stats *Stats
}

// Option is a function that adjusts a config, zero or more Options can be
// passed to ComputeLineDiffs, ComputeDeepDiff & DiffJSON
type Option func(cfg *Config)

func newConfig(opts []Option) *Config {
	cfg := &Config{LargeFileThreshold: LargeFileThreshold}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// OptionMaxLines limits line diffs to the first n lines of each side
func OptionMaxLines(n int) Option {
	return func(cfg *Config) {
		cfg.MaxLines = n
	}
}

// OptionLargeFileThreshold overrides LargeFileThreshold
func OptionLargeFileThreshold(n int) Option {
	return func(cfg *Config) {
		cfg.LargeFileThreshold = n
	}
}

// OptionBasePath sets the path structural diffs start from
func OptionBasePath(path string) Option {
	return func(cfg *Config) {
		cfg.BasePath = path
	}
}

// OptionSetStats will set the passed-in stats pointer when a diff is computed
func OptionSetStats(st *Stats) Option {
	return func(cfg *Config) {
		cfg.Stats = st
	}
}
