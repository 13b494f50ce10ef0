package buildconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

// DefaultDotenvPath is the dotenv file read when no other path is configured.
const DefaultDotenvPath = ".env"

// LoadEnvironment builds the environment mapping passed to [Assemble].
//
// osEnviron holds "KEY=VALUE" entries as returned by os.Environ. When
// dotenvPath is non-empty the file is read and its values fill only keys the
// process does not define. A key the process sets, even to "", keeps the
// process value. A dotenv file that does not exist is skipped silently. The
// process environment is not modified.
func LoadEnvironment(osEnviron []string, dotenvPath string) (map[string]string, error) {
	environ := EnvironFromList(osEnviron)
	if dotenvPath == "" {
		return environ, nil
	}

	fileEnv, err := godotenv.Read(dotenvPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return environ, nil
		}
		return nil, fmt.Errorf("%w %s: %w", ErrReadingDotenv, dotenvPath, err)
	}

	return lo.Assign(fileEnv, environ), nil
}

// EnvironFromList converts "KEY=VALUE" entries into a map. Entries without
// "=" or with an empty key are dropped; for duplicate keys the last entry
// wins.
func EnvironFromList(entries []string) map[string]string {
	environ := make(map[string]string, len(entries))
	for _, entry := range entries {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		environ[key] = value
	}

	return environ
}
