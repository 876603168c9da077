package generator

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// WriteValue is the value every generated write carries.
const WriteValue = 1

// Line turns a drawn label into a trace line. Write labels get WriteValue
// appended; everything else is emitted as is.
func Line(label string) string {
	if strings.Contains(label, "write") {
		return label + " " + strconv.Itoa(WriteValue)
	}
	return label
}

// Generate writes n lines drawn from c.
func Generate(w io.Writer, n int, c *Chooser) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < n; i++ {
		if _, err := bw.WriteString(Line(c.Next())); err != nil {
			return fmt.Errorf("write trace line: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("write trace line: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush trace: %w", err)
	}
	return nil
}

// GenerateFile writes n lines drawn from c to path, creating parent
// directories as needed.
func GenerateFile(path string, n int, c *Chooser) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create trace dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create trace file %s: %w", path, err)
	}
	if err := Generate(f, n, c); err != nil {
		f.Close()
		return fmt.Errorf("generate %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close trace file %s: %w", path, err)
	}
	return nil
}
