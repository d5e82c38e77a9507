package store

// Options configures a store implementation.
type Options struct {
	// VerifyTargets makes Put reject objects whose already-present
	// references carry the wrong stored kind (commit tree -> tree,
	// commit parents -> commit, tree records per mode). References that
	// are not in the store yet are never an error: Merkle-DAGs are built
	// bottom-up but the store does not mandate insertion order.
	VerifyTargets bool

	// Compression selects the payload codec used by the file store.
	// The memory store ignores it.
	Compression Compression
}

// Option is a functional option for configuring a store.
type Option func(*Options)

func defaultOptions() *Options {
	return &Options{
		VerifyTargets: false,
		Compression:   CompressionZstd,
	}
}

// WithTargetCheck enables reference-kind verification at Put time.
func WithTargetCheck() Option {
	return func(o *Options) { o.VerifyTargets = true }
}

// WithCompression selects the payload codec for the file store.
func WithCompression(c Compression) Option {
	return func(o *Options) { o.Compression = c }
}
