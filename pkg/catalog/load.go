package catalog

import(
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v2"
)

// LoadFile reads a star catalog, a list of records, from a YAML or JSON
// file. The format is picked by file extension.
func LoadFile(filename string) (Table, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("catalog read '%s': %v", filename, err)
	}

	t := Table{}
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &t)
	case ".json":
		err = json.Unmarshal(b, &t)
	default:
		return nil, fmt.Errorf("catalog '%s': unknown format '%s', want .yaml or .json", filename, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("catalog parse '%s': %v", filename, err)
	}

	for i := range t {
		if t[i].ID == "" {
			t[i].ID = t[i].Name
		}
		if t[i].Name == "" {
			t[i].Name = t[i].ID
		}
		if t[i].ID == "" {
			return nil, fmt.Errorf("catalog '%s': record %d has neither id nor name", filename, i)
		}
	}

	return t, nil
}

// LoadFilesAndDirs loads every catalog file named, recursing into
// directories, and merges them in order. Files in a directory that
// aren't .yaml, .yml or .json are skipped.
func LoadFilesAndDirs(args ...string) (Table, error) {
	t := Table{}
	for _, arg := range args {
		item, err := os.Stat(arg)

		switch {

		case err != nil:
			return nil, fmt.Errorf("load %s: %v", arg, err)

		case item.IsDir():
			contents, err := os.ReadDir(arg)
			if err != nil {
				return nil, fmt.Errorf("readdir %s: %v", arg, err)
			}
			for _, content := range contents {
				if !content.IsDir() && !isCatalogFile(content.Name()) {
					continue
				}
				more, err := LoadFilesAndDirs(filepath.Join(arg, content.Name()))
				if err != nil {
					return nil, err
				}
				t = Merge(t, more)
			}

		default: // is a file, load it
			more, err := LoadFile(arg)
			if err != nil {
				return nil, err
			}
			t = Merge(t, more)
		}
	}

	return t, nil
}

func isCatalogFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json": return true
	}
	return false
}

// WriteFile is the inverse of LoadFile.
func (t Table)WriteFile(filename string) error {
	var b []byte
	var err error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".yaml", ".yml":
		b, err = yaml.Marshal(t)
	case ".json":
		b, err = json.MarshalIndent(t, "", "  ")
	default:
		return fmt.Errorf("catalog '%s': unknown format '%s', want .yaml or .json", filename, ext)
	}
	if err != nil {
		return fmt.Errorf("catalog encode '%s': %v", filename, err)
	}

	if err := os.WriteFile(filename, b, 0644); err != nil {
		return fmt.Errorf("catalog open+w '%s': %v", filename, err)
	}
	return nil
}
