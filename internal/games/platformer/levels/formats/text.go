package formats

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
)

// ParseText reads a text layout: one row per line using the tile glyphs
// (# wall, % crumbling wall, H ladders, o coin, S start, E end, . empty).
// Lines starting with ';' are comments. Trailing blank lines are dropped.
func ParseText(data []byte) (*core.Grid, error) {
	var rows []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.HasPrefix(line, ";") {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading text level: %w", err)
	}
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	return core.ParseRows(rows...)
}
