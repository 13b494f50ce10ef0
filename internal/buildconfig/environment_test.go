package buildconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeDotenv(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

// ── EnvironFromList ───────────────────────────────────────────────────────────

func TestEnvironFromList(t *testing.T) {
	tests := []struct {
		name     string
		entries  []string
		expected map[string]string
	}{
		{
			name:     "nil",
			entries:  nil,
			expected: map[string]string{},
		},
		{
			name:     "simple entries",
			entries:  []string{"A=1", "B=two"},
			expected: map[string]string{"A": "1", "B": "two"},
		},
		{
			name:     "value containing equals",
			entries:  []string{"KOVAN_RPC_URL=https://rpc.example/?a=b"},
			expected: map[string]string{"KOVAN_RPC_URL": "https://rpc.example/?a=b"},
		},
		{
			name:     "empty value kept",
			entries:  []string{"PRIVATE_KEY="},
			expected: map[string]string{"PRIVATE_KEY": ""},
		},
		{
			name:     "malformed entries dropped",
			entries:  []string{"NOEQUALS", "=C:=C:\\", "OK=1"},
			expected: map[string]string{"OK": "1"},
		},
		{
			name:     "last duplicate wins",
			entries:  []string{"A=1", "A=2"},
			expected: map[string]string{"A": "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EnvironFromList(tt.entries))
		})
	}
}

// ── LoadEnvironment ───────────────────────────────────────────────────────────

func TestLoadEnvironment_NoDotenvPath(t *testing.T) {
	environ, err := LoadEnvironment([]string{"PRIVATE_KEY=abc"}, "")

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"PRIVATE_KEY": "abc"}, environ)
}

func TestLoadEnvironment_MissingDotenvIsIgnored(t *testing.T) {
	p := filepath.Join(t.TempDir(), "does-not-exist.env")

	environ, err := LoadEnvironment([]string{"PRIVATE_KEY=abc"}, p)

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"PRIVATE_KEY": "abc"}, environ)
}

func TestLoadEnvironment_DotenvFillsMissingKeys(t *testing.T) {
	// Arrange
	p := writeDotenv(t, `# deployment secrets
PRIVATE_KEY=from-file
KOVAN_RPC_URL="https://file.example"
ETHERSCAN_API_KEY=ek_file
`)

	// Act
	environ, err := LoadEnvironment([]string{
		"PRIVATE_KEY=from-process",
		"HOME=/root",
	}, p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "from-process", environ[EnvPrivateKey])
	assert.Equal(t, "https://file.example", environ[EnvRPCURL])
	assert.Equal(t, "ek_file", environ[EnvEtherscanAPIKey])
	assert.Equal(t, "/root", environ["HOME"])
}

// TestLoadEnvironment_EmptyProcessValueWins verifies that a variable the
// process defines as "" is not replaced by the dotenv value.
func TestLoadEnvironment_EmptyProcessValueWins(t *testing.T) {
	// Arrange
	p := writeDotenv(t, "PRIVATE_KEY=from-file\nETHERSCAN_API_KEY=ek_file\n")

	// Act
	environ, err := LoadEnvironment([]string{"PRIVATE_KEY="}, p)

	// Assert
	require.NoError(t, err)
	value, ok := environ[EnvPrivateKey]
	assert.True(t, ok)
	assert.Empty(t, value)
	assert.Equal(t, "ek_file", environ[EnvEtherscanAPIKey])

	cfg, err := Assemble(environ)
	require.NoError(t, err)
	assert.Equal(t, []string{"0x"}, cfg.Network().SigningKeys)
}

func TestLoadEnvironment_UnreadableDotenv(t *testing.T) {
	// a directory exists but cannot be read as a dotenv file
	dir := t.TempDir()

	environ, err := LoadEnvironment(nil, dir)

	require.Error(t, err)
	assert.Nil(t, environ)
	assert.ErrorIs(t, err, ErrReadingDotenv)
}

func TestLoadEnvironment_FeedsAssemble(t *testing.T) {
	p := writeDotenv(t, "PRIVATE_KEY=abc123\nETHERSCAN_API_KEY=ek_1\n")

	environ, err := LoadEnvironment([]string{"KOVAN_RPC_URL=https://rpc.example"}, p)
	require.NoError(t, err)

	cfg, err := Assemble(environ)
	require.NoError(t, err)

	assert.Equal(t, []string{"0xabc123"}, cfg.Network().SigningKeys)
	assert.Equal(t, "https://rpc.example", cfg.Network().EndpointURL)
	assert.Equal(t, "ek_1", cfg.Verification().APIKey)
}
