package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
)

// mapFS is an in-memory FileSystem.
type mapFS struct {
	files map[string]string
	env   map[string]map[string]string
	opens atomic.Int32
}

func (m *mapFS) Exists(path string) bool {
	_, ok := m.files[path]
	return ok
}

func (m *mapFS) Open(path string) (io.ReadCloser, error) {
	m.opens.Add(1)
	content, ok := m.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return io.NopCloser(strings.NewReader(content)), nil
}

func (m *mapFS) ReadEnv(path string) (map[string]string, error) {
	values, ok := m.env[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return values, nil
}

func TestResolverFindDefault(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  string
	}{
		{"none", nil, ""},
		{"working directory", []string{"./sdk_config.properties", "./config/sdk_config.properties"}, "./sdk_config.properties"},
		{"config directory", []string{"./config/sdk_config.properties"}, "./config/sdk_config.properties"},
		{"parent config directory", []string{"../config/sdk_config.properties"}, "../config/sdk_config.properties"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fs := &mapFS{files: map[string]string{}}
			for _, f := range tc.files {
				fs.files[f] = ""
			}
			r := &Resolver{FileSystem: fs}
			if got := r.FindDefault(); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestParseProperties(t *testing.T) {
	t.Run("keys are lower-cased", func(t *testing.T) {
		values, err := parseProperties(strings.NewReader(`
# comment
service.EndPoint = https://api.example.com/
http.ConnectionTimeOut: 5000
http.ProxyPassword=p@ss word
`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := map[string]string{
			"service.endpoint":       "https://api.example.com/",
			"http.connectiontimeout": "5000",
			"http.proxypassword":     "p@ss word",
		}
		if len(values) != len(want) {
			t.Fatalf("expected %d keys, got %v", len(want), values)
		}
		for k, v := range want {
			if values[k] != v {
				t.Errorf("%s: expected %q, got %q", k, v, values[k])
			}
		}
	})

	t.Run("placeholders are kept literally", func(t *testing.T) {
		t.Setenv("RESTSDK_TEST_SECRET", "leaked")
		values, err := parseProperties(strings.NewReader(`
http.ProxyUserName=bob
http.ProxyPassword=se${cret}
custom.home=${RESTSDK_TEST_SECRET}
custom.ref=x${http.ProxyUserName}
`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := map[string]string{
			"http.proxypassword": "se${cret}",
			"custom.home":        "${RESTSDK_TEST_SECRET}",
			"custom.ref":         "x${http.ProxyUserName}",
		}
		for k, v := range want {
			if values[k] != v {
				t.Errorf("%s: expected %q, got %q", k, v, values[k])
			}
		}
	})

	t.Run("nil stream", func(t *testing.T) {
		if _, err := parseProperties(nil); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("empty stream", func(t *testing.T) {
		values, err := parseProperties(strings.NewReader(""))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(values) != 0 {
			t.Errorf("expected no keys, got %v", values)
		}
	})

	t.Run("read failure", func(t *testing.T) {
		if _, err := parseProperties(failingReader{}); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestResolveLayers(t *testing.T) {
	t.Setenv(EnvName(KeyEndpoint), "http://env.local/")

	src := map[string]string{
		KeyEndpoint:     "https://file.example.com/",
		KeyProxyHost:    "file-proxy",
		"custom.option": "file",
	}
	dotenv := map[string]string{
		"RESTSDK_SERVICE_ENDPOINT": "http://dotenv.local/",
		"RESTSDK_HTTP_PROXYHOST":   "dotenv-proxy",
		"RESTSDK_HTTP_PROXYPORT":   "3128",
		"UNRELATED":                "x",
	}

	got := resolve(src, dotenv)

	tests := map[string]string{
		KeyEndpoint:     "http://env.local/",
		KeyProxyHost:    "dotenv-proxy",
		KeyProxyPort:    "3128",
		"custom.option": "file",
	}
	for k, want := range tests {
		if got[k] != want {
			t.Errorf("%s: expected %q, got %q", k, want, got[k])
		}
	}
	if _, ok := got[KeyProxyUsername]; ok {
		t.Error("unset key should not appear")
	}
}

func TestResolveKeepsPrefixKeys(t *testing.T) {
	t.Setenv(EnvName("service"), "env-legacy")

	src := map[string]string{
		"service":   "legacy",
		KeyEndpoint: "https://file.example.com/",
		"http":      "plain",
	}
	dotenv := map[string]string{"RESTSDK_HTTP_PROXYHOST": "dotenv-proxy"}

	got := resolve(src, dotenv)

	want := map[string]string{
		"service":    "env-legacy",
		KeyEndpoint:  "https://file.example.com/",
		"http":       "plain",
		KeyProxyHost: "dotenv-proxy",
	}
	if len(got) != len(want) {
		t.Errorf("expected %d keys, got %v", len(want), got)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s: expected %q, got %q", k, v, got[k])
		}
	}
	if src[KeyProxyHost] != "" {
		t.Error("resolve must not modify its source")
	}
}

func TestRealFileSystemReadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("RESTSDK_HTTP_PROXYHOST=proxy.local\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	fs := &RealFileSystem{}
	values, err := fs.ReadEnv(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if values["RESTSDK_HTTP_PROXYHOST"] != "proxy.local" {
		t.Errorf("expected proxy.local, got %v", values)
	}
	if os.Getenv("RESTSDK_HTTP_PROXYHOST") != "" {
		t.Error("reading an env file must not modify the process environment")
	}
	if fs.Exists(filepath.Dir(path)) {
		t.Error("directories are not files")
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }
