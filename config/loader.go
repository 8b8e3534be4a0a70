package config

import (
	stderrors "errors"
	"fmt"
	"io"
	"maps"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/magiconair/properties"
	"github.com/spf13/viper"
)

// DefaultFileName is the properties file looked up when no configuration was loaded explicitly.
const DefaultFileName = "sdk_config.properties"

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	Open(path string) (io.ReadCloser, error)
	ReadEnv(path string) (map[string]string, error)
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (rfs *RealFileSystem) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

func (rfs *RealFileSystem) ReadEnv(path string) (map[string]string, error) {
	return godotenv.Read(path)
}

// Resolver handles finding the default configuration file.
type Resolver struct {
	FileSystem FileSystem
}

// FindDefault searches for sdk_config.properties in standard locations.
// Returns "" when none exists.
func (cr *Resolver) FindDefault() string {
	searchPaths := []string{
		"./" + DefaultFileName,
		"./config/" + DefaultFileName,
		"../config/" + DefaultFileName,
	}

	for _, path := range searchPaths {
		if cr.FileSystem.Exists(path) {
			return path
		}
	}
	return ""
}

// parseProperties reads a Java-properties stream into lower-cased keys.
// Values are kept literally; ${...} is not expanded.
func parseProperties(r io.Reader) (map[string]string, error) {
	if r == nil {
		return nil, stderrors.New("nil configuration stream")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read properties: %w", err)
	}
	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	p, err := loader.LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parse properties: %w", err)
	}

	values := make(map[string]string, p.Len())
	for _, k := range p.Keys() {
		v, _ := p.Get(k)
		values[normalizeKey(k)] = v
	}
	return values, nil
}

// resolve applies dotenv and process environment overrides to src. Process
// environment wins over dotenv, dotenv over source. Keys are never nested, so
// "service" and "service.endpoint" coexist.
func resolve(src, dotenv map[string]string) map[string]string {
	values := maps.Clone(src)
	if values == nil {
		values = make(map[string]string)
	}

	// The viper instance holds nothing but the environment layer, so IsSet
	// reports only real overrides.
	env := viper.New()
	env.SetEnvPrefix(EnvPrefix)
	env.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	env.AutomaticEnv()

	for _, k := range candidateKeys(src) {
		if v, ok := dotenv[EnvName(k)]; ok {
			values[k] = v
		}
		if env.IsSet(k) {
			values[k] = env.GetString(k)
		}
	}
	return values
}

// candidateKeys returns the source keys plus every known key.
func candidateKeys(src map[string]string) []string {
	keys := make([]string, 0, len(src)+len(KnownKeys))
	seen := make(map[string]bool, cap(keys))
	for _, k := range KnownKeys {
		seen[k] = true
		keys = append(keys, k)
	}
	for k := range src {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	return keys
}
