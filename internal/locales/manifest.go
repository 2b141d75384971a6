package locales

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrijs2005/recruitkit/internal/languages"
)

var importLine = regexp.MustCompile(`^\s*import\s+[A-Za-z_$][\w$]*\s+from\s+['"]\./([A-Za-z-]+)\.json['"];?\s*$`)

// Manifest is the ordered list of registered language codes. It is
// rendered to the application's locale configuration module as a whole
// on every write.
type Manifest struct {
	Languages []string
}

// ParseManifest recovers the registered codes, in order, from the load
// declarations of an existing configuration module. Codes keep the case of
// the file stem they were imported from.
func ParseManifest(data []byte) (*Manifest, error) {
	m := &Manifest{}
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		match := importLine.FindStringSubmatch(sc.Text())
		if match == nil {
			continue
		}
		m.add(match[1])
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan manifest: %w", err)
	}
	return m, nil
}

// Has reports whether code is registered, ignoring case.
func (m *Manifest) Has(code string) bool {
	_, ok := m.Stem(code)
	return ok
}

// Stem returns the registered spelling of code ("zh-CN" for "zh-cn"), which
// is also the stem of its locale file.
func (m *Manifest) Stem(code string) (string, bool) {
	for _, c := range m.Languages {
		if strings.EqualFold(c, code) {
			return c, true
		}
	}
	return "", false
}

// Register appends l unless it is already present. It reports whether the
// manifest changed.
func (m *Manifest) Register(l languages.Language) bool {
	return m.add(l.Code())
}

func (m *Manifest) add(code string) bool {
	if m.Has(code) {
		return false
	}
	m.Languages = append(m.Languages, code)
	return true
}

// Render writes the configuration module: one import per language and one
// entry per language in the exported locales object.
func (m *Manifest) Render() []byte {
	var b strings.Builder

	b.WriteString("/**\n")
	b.WriteString(" * Configuration module for application locales.\n")
	b.WriteString(" * Generated by recruitkit addlang; register new languages with the tool.\n")
	b.WriteString(" *\n")
	b.WriteString(" * @module localeConfig\n")
	b.WriteString(" */\n\n")

	for _, c := range m.Languages {
		fmt.Fprintf(&b, "import %s from './%s.json';\n", ident(c), c)
	}

	b.WriteString("\n/**\n")
	b.WriteString(" * An object mapping locale keys to their respective imported messages.\n")
	b.WriteString(" */\n")
	b.WriteString("export const locales = {\n")
	for _, c := range m.Languages {
		fmt.Fprintf(&b, "  %s: %s,\n", key(c), ident(c))
	}
	b.WriteString("};\n")

	return []byte(b.String())
}

func ident(code string) string { return strings.ReplaceAll(code, "-", "_") }

func key(code string) string {
	if strings.Contains(code, "-") {
		return "'" + code + "'"
	}
	return code
}
