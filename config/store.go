package config

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/kbukum/restsdk/errors"
	"github.com/kbukum/restsdk/logger"
)

// Store holds the current Configuration and performs the one-time default load.
type Store struct {
	mu      sync.Mutex
	current atomic.Pointer[Configuration]

	fs            FileSystem
	envFile       string
	defaultSource func() (io.ReadCloser, error)
	log           *logger.Logger

	defaultLoads atomic.Int32
}

// Option configures a Store.
type Option func(*Store)

// WithFileSystem sets the filesystem used to find and read files.
func WithFileSystem(fs FileSystem) Option {
	return func(s *Store) { s.fs = fs }
}

// WithEnvFile layers a dotenv file of RESTSDK_* overrides into every load.
func WithEnvFile(path string) Option {
	return func(s *Store) { s.envFile = path }
}

// WithDefaultSource replaces the default file lookup with open.
func WithDefaultSource(open func() (io.ReadCloser, error)) Option {
	return func(s *Store) { s.defaultSource = open }
}

// WithLogger sets the logger load failures are reported to.
func WithLogger(l *logger.Logger) Option {
	return func(s *Store) { s.log = l }
}

// NewStore creates an uninitialized Store.
func NewStore(opts ...Option) *Store {
	s := &Store{}
	for _, opt := range opts {
		opt(s)
	}
	if s.fs == nil {
		s.fs = &RealFileSystem{}
	}
	return s
}

// LoadReader replaces the configuration with the properties read from r.
// On failure the previous configuration stays in effect.
func (s *Store) LoadReader(r io.Reader) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked("stream", func() (map[string]string, error) {
		return parseProperties(r)
	})
}

// LoadFile replaces the configuration with the properties file at path.
func (s *Store) LoadFile(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(path, func() (map[string]string, error) {
		return s.readFile(path)
	})
}

// LoadMap replaces the configuration with values. It cannot fail.
func (s *Store) LoadMap(values map[string]string) {
	src := make(map[string]string, len(values))
	for k, v := range values {
		src[normalizeKey(k)] = v
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.install(src)
}

// EnsureInitialized loads the default source if nothing has been loaded yet.
// Concurrent callers share a single load.
func (s *Store) EnsureInitialized() error {
	if s.current.Load() != nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current.Load() != nil {
		return nil
	}

	s.defaultLoads.Add(1)
	rc, source, err := s.openDefault()
	if err != nil {
		return s.fail(source, err)
	}
	defer rc.Close()
	return s.loadLocked(source, func() (map[string]string, error) {
		return parseProperties(rc)
	})
}

// Current returns the loaded configuration, or nil before the first load.
func (s *Store) Current() *Configuration {
	return s.current.Load()
}

// Initialized reports whether a configuration has been loaded.
func (s *Store) Initialized() bool {
	return s.current.Load() != nil
}

func (s *Store) loadLocked(source string, parse func() (map[string]string, error)) error {
	src, err := parse()
	if err != nil {
		return s.fail(source, err)
	}
	s.install(src)
	s.logger().Debug("configuration loaded", logger.Fields(logger.FieldSource, source, "keys", len(src)))
	return nil
}

func (s *Store) install(src map[string]string) {
	s.current.Store(newConfiguration(resolve(src, s.readEnvFile())))
}

func (s *Store) fail(source string, err error) error {
	s.logger().Severe("failed to load configuration", err, logger.Fields(logger.FieldSource, source))
	return errors.ConfigLoad(err)
}

func (s *Store) readFile(path string) (map[string]string, error) {
	if !s.fs.Exists(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		return nil, fmt.Errorf("file doesn't exist: %s", abs)
	}
	f, err := s.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseProperties(f)
}

func (s *Store) readEnvFile() map[string]string {
	if s.envFile == "" {
		return nil
	}
	values, err := s.fs.ReadEnv(s.envFile)
	if err != nil {
		s.logger().Warn("failed to load env file", logger.Fields(logger.FieldSource, s.envFile, logger.FieldError, err.Error()))
		return nil
	}
	return values
}

func (s *Store) openDefault() (io.ReadCloser, string, error) {
	if s.defaultSource != nil {
		rc, err := s.defaultSource()
		return rc, "default", err
	}
	resolver := &Resolver{FileSystem: s.fs}
	if path := resolver.FindDefault(); path != "" {
		rc, err := s.fs.Open(path)
		return rc, path, err
	}
	return io.NopCloser(bytes.NewReader(bundledDefault)), "bundled:" + DefaultFileName, nil
}

func (s *Store) logger() *logger.Logger {
	if s.log != nil {
		return s.log
	}
	return logger.Get("config")
}
