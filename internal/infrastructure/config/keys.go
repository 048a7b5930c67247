package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/llmshell/llmshell/internal/domain"
)

// Get resolves a dotted key path ("ui.max_output_lines",
// "providers.0.model") against the config file contents.
func (l *FileLoader) Get(key string) (interface{}, error) {
	tree, err := l.loadTree()
	if err != nil {
		return nil, err
	}

	var value interface{} = tree
	for _, part := range strings.Split(key, ".") {
		switch node := value.(type) {
		case map[string]interface{}:
			next, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("unknown configuration key: %s", key)
			}
			value = next
		case []interface{}:
			idx, ok := sliceIndex(node, part)
			if !ok {
				return nil, fmt.Errorf("unknown configuration key: %s", key)
			}
			value = node[idx]
		default:
			return nil, fmt.Errorf("unknown configuration key: %s", key)
		}
	}
	return value, nil
}

// Set stores a value under a dotted key path, creating intermediate maps as
// needed, and writes the file back. List segments use the same numeric
// indices as Get and must address an existing element. The value is parsed
// as YAML so numbers and booleans round-trip with their types.
func (l *FileLoader) Set(key, value string) error {
	tree, err := l.loadTree()
	if err != nil {
		return err
	}

	var parsed interface{}
	if err := yaml.Unmarshal([]byte(value), &parsed); err != nil {
		parsed = value
	}

	parts := strings.Split(key, ".")
	var node interface{} = tree
	for _, part := range parts[:len(parts)-1] {
		switch n := node.(type) {
		case map[string]interface{}:
			child := n[part]
			switch child.(type) {
			case map[string]interface{}, []interface{}:
			default:
				child = map[string]interface{}{}
				n[part] = child
			}
			node = child
		case []interface{}:
			idx, ok := sliceIndex(n, part)
			if !ok {
				return fmt.Errorf("unknown configuration key: %s", key)
			}
			node = n[idx]
		default:
			return fmt.Errorf("unknown configuration key: %s", key)
		}
	}

	switch n := node.(type) {
	case map[string]interface{}:
		n[parts[len(parts)-1]] = parsed
	case []interface{}:
		idx, ok := sliceIndex(n, parts[len(parts)-1])
		if !ok {
			return fmt.Errorf("unknown configuration key: %s", key)
		}
		n[idx] = parsed
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}

	raw, err := yaml.Marshal(tree)
	if err != nil {
		return err
	}
	return writeFileAtomic(l.Path(), raw)
}

func sliceIndex(node []interface{}, part string) (int, bool) {
	idx, err := strconv.Atoi(part)
	if err != nil || idx < 0 || idx >= len(node) {
		return 0, false
	}
	return idx, true
}

func (l *FileLoader) loadTree() (map[string]interface{}, error) {
	// Load creates the file from defaults when missing.
	if _, err := l.Load(context.Background()); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(l.Path())
	if err != nil {
		return nil, err
	}
	tree := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}

// writeFileAtomic writes via a temp file and rename so a crash mid-write
// cannot leave a truncated config.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, domain.SecureFilePermissions); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
