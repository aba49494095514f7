// Package parser loads inflammation tables from files on disk.
package parser

import (
	"strings"

	"github.com/KaramelBytes/inflammation-cli/internal/models"
	log "github.com/sirupsen/logrus"
)

// Options controls how tables are read.
type Options struct {
	// Delimiter for CSV. If 0, it is chosen from the file extension.
	Delimiter rune
	// Sheet selects the XLSX sheet by name; empty means the first sheet.
	Sheet string
}

// Loader defines a table loader implementation.
type Loader interface {
	CanLoad(filename string) bool
	Load(path string, opt Options) (models.Table, error)
}

var registry []Loader

// Register adds a loader implementation to the registry.
func Register(l Loader) {
	registry = append(registry, l)
}

// LoadTable selects a loader based on the filename and reads the table.
// Files with an unknown extension are read as comma separated text.
func LoadTable(path string, opt Options) (models.Table, error) {
	var l Loader = csvLoader{}
	for _, candidate := range registry {
		if candidate.CanLoad(path) {
			l = candidate
			break
		}
	}
	t, err := l.Load(path, opt)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"path": path, "rows": t.Rows(), "days": t.Columns()}).Debug("loaded inflammation table")
	return t, nil
}

func init() {
	Register(csvLoader{})
	Register(xlsxLoader{})
}

func hasSuffix(filename string, exts ...string) bool {
	name := strings.ToLower(filename)
	for _, ext := range exts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
