package subtitle

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Dialogue: Layer,Start,End,Style,Name,MarginL,MarginR,MarginV,Effect,Text
const assTextField = 9

var reASSOverride = regexp.MustCompile(`{\\[^}]*}`)

type assExtractor struct{}

// Extract reads Dialogue lines after the [Events] header. The text field may
// itself contain commas; override blocks such as {\an8} are dropped.
func (assExtractor) Extract(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open ass: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var fragments []string
	inEvents := false
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}
		if strings.HasPrefix(line, "[Events]") {
			inEvents = true
			continue
		}
		if !inEvents || !strings.HasPrefix(line, "Dialogue:") {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) <= assTextField {
			continue
		}
		text := strings.TrimSpace(strings.Join(fields[assTextField:], ","))
		fragments = append(fragments, reASSOverride.ReplaceAllString(text, ""))
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read ass %s: %w", path, err)
	}

	return joinFragments(fragments), nil
}
