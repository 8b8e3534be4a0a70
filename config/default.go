package config

import (
	_ "embed"
	"sync"
)

//go:embed sdk_config.properties
var bundledDefault []byte

var (
	defaultStore     *Store
	defaultStoreOnce sync.Once
)

// Default returns the process-wide Store used by the package-level SDK calls.
func Default() *Store {
	defaultStoreOnce.Do(func() {
		defaultStore = NewStore()
	})
	return defaultStore
}
