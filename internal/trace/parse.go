package trace

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseLine decodes one trace line. Unknown op words, blank lines and lines
// with missing or non-integer operands report false. Tokens past the
// operands are ignored.
func ParseLine(line string) (Op, bool) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return Op{}, false
	}

	switch tokens[0] {
	case "read":
		ints, ok := atoiN(tokens[1:], 1)
		if !ok {
			return Op{}, false
		}
		return Read(ints[0]), true
	case "write":
		ints, ok := atoiN(tokens[1:], 2)
		if !ok {
			return Op{}, false
		}
		return Write(ints[0], ints[1]), true
	case "string":
		return Snapshot(), true
	default:
		return Op{}, false
	}
}

func atoiN(tokens []string, n int) ([]int, bool) {
	if len(tokens) < n {
		return nil, false
	}
	out := make([]int, n)
	for i := 0; i < n; i++ {
		v, err := strconv.Atoi(tokens[i])
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

// Parse reads a trace, skipping lines ParseLine rejects. On a read error the
// ops decoded so far are returned with the error.
func Parse(r io.Reader) (Workload, error) {
	var w Workload
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if op, ok := ParseLine(sc.Text()); ok {
			w = append(w, op)
		}
	}
	if err := sc.Err(); err != nil {
		return w, fmt.Errorf("scan trace: %w", err)
	}
	return w, nil
}

// LoadFromFile parses the trace at path. If the file cannot be opened the
// returned workload is empty and the error says why; callers keep going with
// the empty workload.
func LoadFromFile(path string) (Workload, error) {
	f, err := os.Open(path)
	if err != nil {
		return Workload{}, fmt.Errorf("open trace file %s: %w", path, err)
	}
	defer f.Close()

	w, err := Parse(f)
	if err != nil {
		return w, fmt.Errorf("read trace file %s: %w", path, err)
	}
	return w, nil
}
