package translatable

import "sync"

// defaultTranslator builds the environment-configured translator exactly
// once for the process lifetime. Concurrent first callers race to enter, a
// single build runs, and every caller observes the same result. A build
// error is sticky: a misconfigured process fails consistently instead of
// re-reading the filesystem on every call.
var defaultTranslator = sync.OnceValues(func() (*Translator, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return New(opts...)
})

// Default returns the process-wide translator configured from the
// environment, building it on first use.
func Default() (*Translator, error) {
	return defaultTranslator()
}
