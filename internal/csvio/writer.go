package csvio

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

// FormatPlain joins cells with commas and rows with newlines. Cell content is
// not escaped.
func FormatPlain(rows [][]string) string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.Join(row, ",")
	}
	return strings.Join(lines, "\n")
}

// WriteQuoted writes rows as RFC 4180 CSV, quoting cells that need it.
func WriteQuoted(out io.Writer, rows [][]string) error {
	writer := gocsv.NewSafeCSVWriter(csv.NewWriter(out))
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return errors.Wrap(err, "failed to write csv row")
		}
	}
	writer.Flush()
	return errors.Wrap(writer.Error(), "failed to flush csv")
}

// FormatQuoted is WriteQuoted into a string, without the final line break so
// it lines up with FormatPlain.
func FormatQuoted(rows [][]string) (string, error) {
	var buf bytes.Buffer
	if err := WriteQuoted(&buf, rows); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Export writes data to the file at path, replacing any previous content,
// and returns the path written.
func Export(path string, data []byte) (string, error) {
	// Remove file if exists
	if _, err := os.Stat(path); err == nil {
		if err := os.Remove(path); err != nil {
			return "", errors.Wrapf(err, "failed to replace %s", path)
		}
	}

	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return "", errors.Wrapf(err, "failed to create %s", path)
	}
	if _, err := out.Write(data); err != nil {
		out.Close()
		return "", errors.Wrapf(err, "failed to write %s", path)
	}
	if err := out.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to close %s", path)
	}
	return path, nil
}
