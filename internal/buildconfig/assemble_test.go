package buildconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble_FullEnvironment(t *testing.T) {
	// Arrange
	environ := map[string]string{
		EnvPrivateKey:      "abc123",
		EnvRPCURL:          "https://rpc.example",
		EnvEtherscanAPIKey: "ek_1",
	}

	// Act
	cfg, err := Assemble(environ)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, CompilerVersion, cfg.CompilerVersion())
	assert.Equal(t, NetworkName, cfg.Network().Name)
	assert.Equal(t, []string{"0xabc123"}, cfg.Network().SigningKeys)
	assert.Equal(t, "https://rpc.example", cfg.Network().EndpointURL)
	assert.Equal(t, "ek_1", cfg.Verification().APIKey)
}

func TestAssemble_SigningKeyIsPrefixedVerbatim(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected string
	}{
		{"hex key", "4c0883a69102937d6231471b5dbb6204fe512961708279f8b1a3f3a4e1d2c3b4", "0x4c0883a69102937d6231471b5dbb6204fe512961708279f8b1a3f3a4e1d2c3b4"},
		{"already prefixed", "0xabc", "0x0xabc"},
		{"not hex", "not a key!", "0xnot a key!"},
		{"surrounding spaces", "  abc  ", "0x  abc  "},
		{"unicode", "ключ", "0xключ"},
		{"empty", "", "0x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Assemble(map[string]string{EnvPrivateKey: tt.key})

			require.NoError(t, err)
			require.Len(t, cfg.Network().SigningKeys, 1)
			assert.Equal(t, tt.expected, cfg.Network().SigningKeys[0])
		})
	}
}

// TestAssemble_PassThrough verifies that the endpoint and API key are copied
// byte-for-byte, including values a URL parser would reject.
func TestAssemble_PassThrough(t *testing.T) {
	environ := map[string]string{
		EnvRPCURL:          " not://a url?with=query&and#fragment ",
		EnvEtherscanAPIKey: "key with\ttab and = sign",
	}

	cfg, err := Assemble(environ)

	require.NoError(t, err)
	assert.Equal(t, environ[EnvRPCURL], cfg.Network().EndpointURL)
	assert.Equal(t, environ[EnvEtherscanAPIKey], cfg.Verification().APIKey)
}

func TestAssemble_Idempotent(t *testing.T) {
	environ := map[string]string{
		EnvPrivateKey:      "abc123",
		EnvRPCURL:          "https://rpc.example",
		EnvEtherscanAPIKey: "ek_1",
	}

	first, err := Assemble(environ)
	require.NoError(t, err)
	second, err := Assemble(environ)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAssemble_PrivateKeyUnset(t *testing.T) {
	cfg, err := Assemble(map[string]string{
		EnvRPCURL:          "https://rpc.example",
		EnvEtherscanAPIKey: "ek_1",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"0x"}, cfg.Network().SigningKeys)
	assert.Equal(t, "https://rpc.example", cfg.Network().EndpointURL)
	assert.Equal(t, "ek_1", cfg.Verification().APIKey)
}

// TestAssemble_AllAbsent verifies that assembly is permissive: every field
// falls back to the empty-string placeholder and no error is returned.
func TestAssemble_AllAbsent(t *testing.T) {
	for name, environ := range map[string]map[string]string{
		"nil map":   nil,
		"empty map": {},
		"unrelated": {"HOME": "/root", "PATH": "/usr/bin"},
	} {
		t.Run(name, func(t *testing.T) {
			cfg, err := Assemble(environ)

			require.NoError(t, err)
			assert.Equal(t, CompilerVersion, cfg.CompilerVersion())
			assert.Equal(t, NetworkName, cfg.Network().Name)
			assert.Equal(t, []string{"0x"}, cfg.Network().SigningKeys)
			assert.Empty(t, cfg.Network().EndpointURL)
			assert.Empty(t, cfg.Verification().APIKey)
		})
	}
}

// TestAssemble_DoesNotReadProcessEnvironment verifies that only the explicit
// mapping is consulted.
func TestAssemble_DoesNotReadProcessEnvironment(t *testing.T) {
	t.Setenv(EnvPrivateKey, "from-process")
	t.Setenv(EnvRPCURL, "https://process.example")

	cfg, err := Assemble(map[string]string{})

	require.NoError(t, err)
	assert.Equal(t, []string{"0x"}, cfg.Network().SigningKeys)
	assert.Empty(t, cfg.Network().EndpointURL)
}

func TestAssemble_DoesNotModifyInput(t *testing.T) {
	environ := map[string]string{EnvPrivateKey: "abc123"}

	_, err := Assemble(environ)

	require.NoError(t, err)
	assert.Equal(t, map[string]string{EnvPrivateKey: "abc123"}, environ)
}
