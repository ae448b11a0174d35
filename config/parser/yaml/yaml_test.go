package yaml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, data string) *Document {
	t.Helper()

	doc, err := Parse([]byte(data))
	require.NoError(t, err)

	return doc
}

func TestParse_EmptyData(t *testing.T) {
	t.Parallel()

	for _, data := range []string{"", "   \n\t\n"} {
		doc, err := Parse([]byte(data))
		require.NoError(t, err)

		keys, ok := doc.Keys("")
		assert.True(t, ok)
		assert.Empty(t, keys)
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("invalid: yaml: content: [\n"))

	require.Error(t, err)
}

func TestParse_NonMappingTopLevel(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("- one\n- two\n"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotMapping)
}

func TestDocument_IsSet(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `
api:
  host: localhost
  permissions:
    admin:
      read: true
  empty:
name: test-app
`)

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "top level scalar", path: "name", want: true},
		{name: "nested mapping", path: "api.permissions", want: true},
		{name: "deep scalar", path: "api.permissions.admin.read", want: true},
		{name: "missing key", path: "api.port", want: false},
		{name: "missing top level", path: "nonexistent", want: false},
		{name: "through scalar", path: "api.host.nested", want: false},
		{name: "null leaf", path: "api.empty", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, doc.IsSet(tt.path))
		})
	}
}

func TestDocument_Get(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `
config:
  name: test-value
  port: 8080
  negative: -12
  ratio: 3.14159
  enabled: true
  hosts:
    - host1.example.com
    - host2.example.com
  database:
    host: primary.db.com
`)

	value, ok := doc.Get("config.name")
	require.True(t, ok)
	assert.Equal(t, "test-value", value)

	value, ok = doc.Get("config.port")
	require.True(t, ok)
	assert.Equal(t, int64(8080), value)

	value, ok = doc.Get("config.negative")
	require.True(t, ok)
	assert.Equal(t, int64(-12), value)

	value, ok = doc.Get("config.ratio")
	require.True(t, ok)
	assert.InDelta(t, 3.14159, value, 0.00001)

	value, ok = doc.Get("config.enabled")
	require.True(t, ok)
	assert.Equal(t, true, value)

	value, ok = doc.Get("config.hosts")
	require.True(t, ok)
	assert.Equal(t, []any{"host1.example.com", "host2.example.com"}, value)

	value, ok = doc.Get("config.database")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"host": "primary.db.com"}, value)

	_, ok = doc.Get("config.missing")
	assert.False(t, ok)
}

func TestDocument_KindProbes(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `
whole: 10
decimal: 10.0
big: 4294967296
text: "10"
flag: true
`)

	tests := []struct {
		path   string
		isInt  bool
		isLong bool
		double bool
	}{
		{path: "whole", isInt: true, isLong: true, double: false},
		{path: "decimal", isInt: false, isLong: false, double: true},
		{path: "big", isInt: false, isLong: true, double: false},
		{path: "text", isInt: false, isLong: false, double: false},
		{path: "flag", isInt: false, isLong: false, double: false},
		{path: "missing", isInt: false, isLong: false, double: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.isInt, doc.IsInt(tt.path), "IsInt")
			assert.Equal(t, tt.isLong, doc.IsLong(tt.path), "IsLong")
			assert.Equal(t, tt.double, doc.IsDouble(tt.path), "IsDouble")
		})
	}
}

func TestDocument_Set(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `
api:
  host: localhost
  port: "not a mapping"
`)

	doc.Set("api.timeout", 30)
	doc.Set("feature.flags.beta", false)
	doc.Set("api.port.number", 8080)
	doc.Set("api.host", "example.com")

	value, ok := doc.Get("api.timeout")
	require.True(t, ok)
	assert.Equal(t, int64(30), value)

	value, ok = doc.Get("feature.flags.beta")
	require.True(t, ok)
	assert.Equal(t, false, value)

	assert.True(t, doc.IsInt("api.port.number"), "scalar intermediate should be replaced by a mapping")

	value, ok = doc.Get("api.host")
	require.True(t, ok)
	assert.Equal(t, "example.com", value)

	keys, ok := doc.Keys("api")
	require.True(t, ok)
	assert.Equal(t, []string{"host", "port", "timeout"}, keys)
}

func TestDocument_SetNilRemoves(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `
api:
  host: localhost
  port: 8080
name: app
`)

	doc.Set("api.host", nil)
	doc.Set("missing.path", nil)
	doc.Set("name.child", nil)

	assert.False(t, doc.IsSet("api.host"))
	assert.True(t, doc.IsSet("api.port"))
	assert.False(t, doc.IsSet("missing"))
	assert.True(t, doc.IsSet("name"))
}

func TestDocument_SetMapValue(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, "")

	doc.Set("server", map[string]any{"port": 8080, "host": "localhost"})

	assert.True(t, doc.IsInt("server.port"))

	keys, ok := doc.Keys("server")
	require.True(t, ok)
	assert.Equal(t, []string{"host", "port"}, keys)
}

func TestDocument_Keys(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `
zeta: 1
alpha:
  second: 2
  first: 1
`)

	keys, ok := doc.Keys("")
	require.True(t, ok)
	assert.Equal(t, []string{"zeta", "alpha"}, keys)

	keys, ok = doc.Keys("alpha")
	require.True(t, ok)
	assert.Equal(t, []string{"second", "first"}, keys)

	_, ok = doc.Keys("zeta")
	assert.False(t, ok)

	_, ok = doc.Keys("missing")
	assert.False(t, ok)
}

func TestDocument_Marshal_RoundTrip(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `
server:
  host: api.example.com
  port: 8080
  tags:
    - a
    - b
`)
	doc.Set("server.enabled", false)

	data, err := doc.Marshal()
	require.NoError(t, err)

	reloaded, err := Parse(data)
	require.NoError(t, err)

	value, ok := reloaded.Get("server.enabled")
	require.True(t, ok)
	assert.Equal(t, false, value)

	value, ok = reloaded.Get("server.tags")
	require.True(t, ok)
	assert.Equal(t, []any{"a", "b"}, value)

	keys, ok := reloaded.Keys("server")
	require.True(t, ok)
	assert.Equal(t, []string{"host", "port", "tags", "enabled"}, keys)
}

func TestDocument_Marshal_Empty(t *testing.T) {
	t.Parallel()

	data, err := mustParse(t, "").Marshal()

	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestParseScalar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  any
	}{
		{name: "integer", input: "10", want: int64(10)},
		{name: "double", input: "10.0", want: 10.0},
		{name: "boolean", input: "true", want: true},
		{name: "quoted", input: "'10'", want: "10"},
		{name: "plain text", input: "hello world", want: "hello world"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			value, err := ParseScalar(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, value)
		})
	}
}
