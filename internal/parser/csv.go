package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/KaramelBytes/inflammation-cli/internal/models"
)

type csvLoader struct{}

func (csvLoader) CanLoad(filename string) bool {
	return hasSuffix(filename, ".csv", ".tsv", ".txt")
}

func (csvLoader) Load(path string, opt Options) (models.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	delim := opt.Delimiter
	if delim == 0 {
		delim = sniffDelimiter(path)
	}
	t, err := LoadCSVFromReader(f, delim)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// LoadCSVFromReader reads a header-less table of numbers separated by delim.
func LoadCSVFromReader(r io.Reader, delim rune) (models.Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return models.ParseRecords(records)
}

func sniffDelimiter(path string) rune {
	if hasSuffix(path, ".tsv") {
		return '\t'
	}
	return ','
}
