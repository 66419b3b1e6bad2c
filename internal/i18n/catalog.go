package i18n

import (
	"embed"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Catalog maps dotted message keys ("nav.home") to text for every locale.
type Catalog struct {
	tables map[Locale]map[string]string
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the catalog built from the embedded locale files.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		tables := make(map[Locale]map[string]string, len(supported))
		for _, loc := range supported {
			data, err := localeFS.ReadFile("locales/" + string(loc) + ".yaml")
			if err != nil {
				defaultErr = fmt.Errorf("read %s catalog: %w", loc, err)
				return
			}
			table, err := parseTable(data)
			if err != nil {
				defaultErr = fmt.Errorf("parse %s catalog: %w", loc, err)
				return
			}
			tables[loc] = table
		}
		defaultCatalog = &Catalog{tables: tables}
	})
	return defaultCatalog, defaultErr
}

// MustDefault is Default for callers that cannot proceed without copy text.
func MustDefault() *Catalog {
	cat, err := Default()
	if err != nil {
		panic(err)
	}
	return cat
}

// NewCatalog builds a catalog from raw YAML documents, mostly for tests.
func NewCatalog(docs map[Locale][]byte) (*Catalog, error) {
	tables := make(map[Locale]map[string]string, len(docs))
	for loc, data := range docs {
		table, err := parseTable(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s catalog: %w", loc, err)
		}
		tables[loc] = table
	}
	return &Catalog{tables: tables}, nil
}

// Messages returns the message view for one locale.
func (c *Catalog) Messages(loc Locale) Messages {
	return Messages{locale: loc, table: c.tables[loc], fallback: c.tables[English]}
}

// Keys returns every key defined for loc in sorted order.
func (c *Catalog) Keys(loc Locale) []string {
	keys := make([]string, 0, len(c.tables[loc]))
	for k := range c.tables[loc] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Messages resolves keys for a single locale, falling back to English and
// finally to the key itself.
type Messages struct {
	locale   Locale
	table    map[string]string
	fallback map[string]string
}

// Locale reports which locale the messages belong to.
func (m Messages) Locale() Locale {
	return m.locale
}

// T looks up key and formats it with args when any are given.
func (m Messages) T(key string, args ...any) string {
	text, ok := m.table[key]
	if !ok {
		text, ok = m.fallback[key]
	}
	if !ok {
		return key
	}
	if len(args) > 0 {
		return fmt.Sprintf(text, args...)
	}
	return text
}

// List returns the entries of a YAML sequence stored under key.
func (m Messages) List(key string) []string {
	var out []string
	for i := 0; ; i++ {
		k := key + "." + strconv.Itoa(i)
		text, ok := m.table[k]
		if !ok {
			text, ok = m.fallback[k]
		}
		if !ok {
			return out
		}
		out = append(out, text)
	}
}

func parseTable(data []byte) (map[string]string, error) {
	var root map[string]any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	table := make(map[string]string)
	flatten("", root, table)
	return table, nil
}

func flatten(prefix string, value any, out map[string]string) {
	join := func(k string) string {
		if prefix == "" {
			return k
		}
		return prefix + "." + k
	}
	switch v := value.(type) {
	case map[string]any:
		for k, child := range v {
			flatten(join(k), child, out)
		}
	case []any:
		for i, child := range v {
			flatten(join(strconv.Itoa(i)), child, out)
		}
	case nil:
	default:
		out[prefix] = fmt.Sprint(v)
	}
}
