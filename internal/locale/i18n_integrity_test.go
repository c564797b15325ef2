package locale_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-chrono/internal/config"
)

// TestI18nIntegrity ensures that every translation key defined in config.go
// exists, with "one" and "other" forms, in every locale file.
func TestI18nIntegrity(t *testing.T) {
	keysToCheck := []string{
		config.TKeySpanYear,
		config.TKeySpanWeek,
		config.TKeySpanDay,
		config.TKeySpanHour,
		config.TKeySpanMinute,
		config.TKeySpanSecond,
		config.TKeySpanMillisecond,
		config.TKeySpanMicrosecond,
		config.TKeySpanNanosecond,
	}

	files, err := filepath.Glob(filepath.Join(config.LocaleDir, config.LocalePrefix+"*"+config.LocaleExt))
	require.NoError(t, err)
	require.NotEmpty(t, files, "locale files must be present")

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			content, err := os.ReadFile(file)
			require.NoError(t, err)

			var jsonMap map[string]map[string]string
			require.NoError(t, json.Unmarshal(content, &jsonMap), "JSON must be valid")

			for _, key := range keysToCheck {
				forms, exists := jsonMap[key]
				if !assert.Truef(t, exists, "Key '%s' is missing", key) {
					continue
				}
				assert.Contains(t, forms, "one", key)
				assert.Contains(t, forms, "other", key)
				assert.Contains(t, forms["other"], "{{.Count}}", key)
			}

			for jsonKey := range jsonMap {
				if strings.HasPrefix(jsonKey, "_") {
					continue
				}
				if !contains(keysToCheck, jsonKey) {
					t.Logf("Warning: Key '%s' exists in JSON but is not checked in the test suite (might be unused)", jsonKey)
				}
			}
		})
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
