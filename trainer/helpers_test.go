package trainer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/neurlang/langid/language"
)

// MockClassifier is a mock implementation of inference.Classifier
type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Learn(label language.Language, features []string) {
	m.Called(label, features)
}

func (m *MockClassifier) Classify(features []string) (language.Language, float64) {
	args := m.Called(features)
	return args.Get(0).(language.Language), args.Get(1).(float64)
}

// firstToken classifies a sentence by its first token
type firstToken map[string]language.Language

func (c firstToken) Learn(language.Language, []string) {}

func (c firstToken) Classify(features []string) (language.Language, float64) {
	if len(features) == 0 {
		return language.NoLanguage, 0
	}
	if l, ok := c[features[0]]; ok {
		return l, 1
	}
	return language.NoLanguage, 0
}

var byCode = firstToken{
	"deu": language.German,
	"eng": language.English,
	"fra": language.French,
	"spa": language.Spanish,
}

func writeLines(t *testing.T, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	var content string
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// numbered returns n lines "<prefix> sentence <i>"
func numbered(prefix string, n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("%s sentence %d", prefix, i)
	}
	return lines
}

// mixed returns a document with count[code] lines starting with each code
func mixed(count map[string]int) []string {
	var lines []string
	for _, code := range []string{"deu", "eng", "fra", "spa"} {
		lines = append(lines, numbered(code, count[code])...)
	}
	return lines
}
