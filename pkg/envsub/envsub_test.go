package envsub_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lwmacct/251016-go-pkg-envsub/pkg/envsub"
	"github.com/lwmacct/251016-go-pkg-envsub/pkg/envsub/mocks"
)

func TestSubstituteString(t *testing.T) {
	env := envsub.MapReader{
		"FOO":   "bar",
		"A":     "x",
		"B":     "y",
		"EMPTY": "",
		"}":     "brace",
		"A B":   "spaced",
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "single placeholder", input: "${FOO}", want: "bar"},
		{name: "missing becomes empty", input: "${NOPE}", want: ""},
		{name: "set but empty", input: "[${EMPTY}]", want: "[]"},
		{name: "multiple placeholders", input: "${A}-${B}", want: "x-y"},
		{name: "adjacent placeholders", input: "${A}${B}${A}", want: "xyx"},
		{name: "surrounding text", input: "http://${FOO}:8080/", want: "http://bar:8080/"},
		{name: "no placeholder", input: "plain text", want: "plain text"},
		{name: "bare dollar var ignored", input: "$FOO", want: "$FOO"},
		{name: "unterminated", input: "${FOO", want: "${FOO"},
		{name: "empty name not matched", input: "${}", want: "${}"},
		{name: "stops at first brace", input: "${}}", want: "brace"},
		{name: "nested braces unsupported", input: "${A${B}}", want: "}"},
		{name: "any characters in name", input: "${A B}", want: "spaced"},
		{name: "does not cross newline", input: "${FO\nO}", want: "${FO\nO}"},
		{name: "default syntax is a plain name", input: "${FOO:-x}", want: ""},
		{name: "empty string", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, envsub.SubstituteString(tt.input, env))
		})
	}
}

func TestSubstitute_Scalars(t *testing.T) {
	env := envsub.MapReader{"X": "1"}

	values := []any{nil, 42, int64(-7), uint8(3), 3.14, float32(1.5), true, false, complex(1, 2)}
	for _, v := range values {
		assert.Equal(t, v, envsub.Substitute(v, env))
	}

	assert.Equal(t, 42, envsub.Substitute(42, env))
	assert.True(t, envsub.Substitute(true, env))
	assert.Equal(t, time.Second, envsub.Substitute(time.Second, env))
}

func TestSubstitute_DynamicTree(t *testing.T) {
	env := envsub.MapReader{"X": "1", "Y": "2"}

	input := map[string]any{
		"a": "${X}",
		"b": []any{1, "${Y}", true},
	}
	got := envsub.Substitute(input, env)

	assert.Equal(t, map[string]any{
		"a": "1",
		"b": []any{1, "2", true},
	}, got)
	assert.Equal(t, "${X}", input["a"], "input must not be mutated")
	assert.Equal(t, "${Y}", input["b"].([]any)[1], "nested input must not be mutated")
}

func TestSubstitute_PreservesShape(t *testing.T) {
	env := envsub.MapReader{"V": "v"}

	input := []any{
		"${V}",
		[]any{},
		map[string]any{},
		map[any]any{1: "${V}", "k": []any{"${V}", nil}},
		[]any(nil),
		map[string]any(nil),
		nil,
	}
	got := envsub.Substitute(input, env)

	require.Len(t, got, len(input))
	assert.Equal(t, "v", got[0])
	assert.Equal(t, []any{}, got[1])
	assert.Equal(t, map[string]any{}, got[2])
	assert.Equal(t, map[any]any{1: "v", "k": []any{"v", nil}}, got[3])
	assert.Nil(t, got[4])
	assert.IsType(t, []any(nil), got[4])
	assert.IsType(t, map[string]any(nil), got[5])
	assert.Nil(t, got[6])
}

func TestSubstitute_KeysAreNotSubstituted(t *testing.T) {
	env := envsub.MapReader{"K": "key", "V": "value"}

	got := envsub.Substitute(map[string]any{"${K}": "${V}"}, env)

	assert.Equal(t, map[string]any{"${K}": "value"}, got)
}

type endpoint string

type tlsConfig struct {
	CertFile string
	Ciphers  []string
}

type serverConfig struct {
	Name     endpoint
	Addr     string
	Port     int
	Timeout  time.Duration
	Tags     []string
	Labels   map[string]string
	Hosts    [2]string
	TLS      *tlsConfig
	Missing  *tlsConfig
	Extra    any
	internal string
}

func TestSubstitute_TypedStruct(t *testing.T) {
	env := envsub.MapReader{
		"HOST": "db.local",
		"NAME": "primary",
		"CERT": "/etc/tls.crt",
	}

	tls := &tlsConfig{CertFile: "${CERT}", Ciphers: []string{"${NONE}", "aes"}}
	input := serverConfig{
		Name:     "${NAME}",
		Addr:     "${HOST}:5432",
		Port:     5432,
		Timeout:  5 * time.Second,
		Tags:     []string{"a", "${HOST}"},
		Labels:   map[string]string{"${HOST}": "${NAME}"},
		Hosts:    [2]string{"${HOST}", "backup"},
		TLS:      tls,
		Extra:    map[string]any{"x": "${NAME}"},
		internal: "${HOST}",
	}

	got := envsub.Substitute(input, env)

	assert.Equal(t, endpoint("primary"), got.Name)
	assert.Equal(t, "db.local:5432", got.Addr)
	assert.Equal(t, 5432, got.Port)
	assert.Equal(t, 5*time.Second, got.Timeout)
	assert.Equal(t, []string{"a", "db.local"}, got.Tags)
	assert.Equal(t, map[string]string{"${HOST}": "primary"}, got.Labels)
	assert.Equal(t, [2]string{"db.local", "backup"}, got.Hosts)
	require.NotNil(t, got.TLS)
	assert.Equal(t, "/etc/tls.crt", got.TLS.CertFile)
	assert.Equal(t, []string{"", "aes"}, got.TLS.Ciphers)
	assert.Nil(t, got.Missing)
	assert.Equal(t, map[string]any{"x": "primary"}, got.Extra)
	assert.Equal(t, "${HOST}", got.internal, "unexported fields are copied as-is")

	// 输入保持不变
	assert.NotSame(t, tls, got.TLS)
	assert.Equal(t, "${CERT}", tls.CertFile)
	assert.Equal(t, "${HOST}", input.Tags[1])
	assert.Equal(t, "${NAME}", input.Labels["${HOST}"])
}

func TestSubstitute_PointerRoot(t *testing.T) {
	env := envsub.MapReader{"A": "x"}
	in := &tlsConfig{CertFile: "${A}"}

	got := envsub.Substitute(in, env)

	require.NotNil(t, got)
	assert.NotSame(t, in, got)
	assert.Equal(t, "x", got.CertFile)
	assert.Equal(t, "${A}", in.CertFile)
}

func TestSubstitute_NilInterface(t *testing.T) {
	var v any
	assert.Nil(t, envsub.Substitute(v, envsub.MapReader{}))

	var p *tlsConfig
	assert.Nil(t, envsub.Substitute(p, envsub.MapReader{}))
}

func TestSubstitute_NotIdempotent(t *testing.T) {
	env := envsub.MapReader{"OUTER": "${INNER}", "INNER": "deep"}

	once := envsub.Substitute("${OUTER}", env)
	twice := envsub.Substitute(once, env)

	assert.Equal(t, "${INNER}", once, "a single pass does not re-expand values")
	assert.Equal(t, "deep", twice)
}

func TestSubstitute_LookupPerPlaceholder(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockReader(ctrl)

	gomock.InOrder(
		reader.EXPECT().LookupEnv("A").Return("1", true),
		reader.EXPECT().LookupEnv("B").Return("", false),
		reader.EXPECT().LookupEnv("A").Return("1", true),
	)

	assert.Equal(t, "1--1", envsub.Substitute("${A}-${B}-${A}", reader))
}

func TestSubstitute_NoLookupWithoutPlaceholders(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockReader(ctrl)

	got := envsub.Substitute([]any{"plain", 1, map[string]any{"k": "v"}}, reader)

	assert.Equal(t, []any{"plain", 1, map[string]any{"k": "v"}}, got)
}

func TestSubstituteEnv(t *testing.T) {
	t.Setenv("ENVSUB_TEST_HOST", "example.com")

	got := envsub.SubstituteEnv(map[string]any{"url": "https://${ENVSUB_TEST_HOST}${ENVSUB_TEST_UNSET_VAR}"})

	assert.Equal(t, map[string]any{"url": "https://example.com"}, got)
}

func TestLookupFunc(t *testing.T) {
	reader := envsub.LookupFunc(func(name string) (string, bool) {
		return "<" + name + ">", true
	})

	assert.Equal(t, "<a>/<b>", envsub.SubstituteString("${a}/${b}", reader))
}

func TestOSReader(t *testing.T) {
	t.Setenv("ENVSUB_TEST_EMPTY", "")

	val, ok := envsub.OSReader{}.LookupEnv("ENVSUB_TEST_EMPTY")
	assert.True(t, ok)
	assert.Empty(t, val)

	_, ok = envsub.OSReader{}.LookupEnv("ENVSUB_TEST_DEFINITELY_UNSET")
	assert.False(t, ok)
}
