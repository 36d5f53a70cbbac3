package parser

import (
	"os"
	"strings"
)

// ReadSourceLines reads path and splits it into lines with trailing '\r' and
// '\n' stripped. A trailing empty line produced by a final newline is
// dropped, matching how the original reads line-by-line with fgets.
func ReadSourceLines(path string) ([]string, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided assembly file path
	if err != nil {
		return nil, err
	}
	text := string(content)
	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")
	if text == "" {
		return nil, nil
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines, nil
}
