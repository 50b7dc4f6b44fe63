// Package envfile reads .env files whose variables are exported before installers run.
package envfile

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/conn-castle/dotpip/internal/messages"
)

// Load reads and parses the .env file at path.
func Load(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}

// Parse reads .env content into a key-value map.
// Blank lines and '#' comments are skipped; a leading "export " is ignored.
func Parse(content string) (map[string]string, error) {
	env := make(map[string]string)
	scanner := bufio.NewScanner(strings.NewReader(content))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		key, value, ok, err := parseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf(messages.EnvfileLineErrorFmt, lineNo, err)
		}
		if ok {
			env[key] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf(messages.EnvfileReadFailedFmt, err)
	}
	return env, nil
}

// Apply calls setenv for every pair in env in key order and stops at the first error.
func Apply(env map[string]string, setenv func(key, value string) error) error {
	keys := make([]string, 0, len(env))
	for key := range env {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if err := setenv(key, env[key]); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

// parseLine returns the key and value on line, or ok=false for blank and comment lines.
func parseLine(line string) (key string, value string, ok bool, err error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false, nil
	}
	trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, "export "))

	rawKey, rawValue, found := strings.Cut(trimmed, "=")
	key = strings.TrimSpace(rawKey)
	if !found || key == "" {
		return "", "", false, fmt.Errorf(messages.EnvfileExpectedKeyValue)
	}
	value, err = parseValue(strings.TrimSpace(rawValue))
	if err != nil {
		return "", "", false, err
	}
	return key, value, true, nil
}

// parseValue strips quoting from raw. Double-quoted values understand \\, \", \n, and \r;
// single-quoted values are literal. Only whitespace or a comment may follow a closing quote.
func parseValue(raw string) (string, error) {
	if raw == "" || (raw[0] != '"' && raw[0] != '\'') {
		return raw, nil
	}
	quote := raw[0]

	var b strings.Builder
	for i := 1; i < len(raw); i++ {
		c := raw[i]
		if c == quote {
			rest := strings.TrimSpace(raw[i+1:])
			if rest != "" && !strings.HasPrefix(rest, "#") {
				return "", fmt.Errorf(messages.EnvfileInvalidQuotedSuffix)
			}
			return b.String(), nil
		}
		if quote == '"' && c == '\\' && i+1 < len(raw) {
			switch raw[i+1] {
			case '\\', '"':
				b.WriteByte(raw[i+1])
				i++
				continue
			case 'n':
				b.WriteByte('\n')
				i++
				continue
			case 'r':
				b.WriteByte('\r')
				i++
				continue
			}
		}
		b.WriteByte(c)
	}
	return "", fmt.Errorf(messages.EnvfileUnterminatedQuotedValue)
}
