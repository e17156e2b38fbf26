package version

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"time"
)

// MaxChangelog is the number of changelog entries kept.
const MaxChangelog = 10

// DateLayout is the format of LastUpdate and changelog dates.
const DateLayout = "2006-01-02"

// Change is one changelog entry.
type Change struct {
	Version string   `json:"version"`
	Date    string   `json:"date"`
	Changes []string `json:"changes"`
}

// Document is the content of version.json.
type Document struct {
	Version    string   `json:"version"`
	Build      int      `json:"build"`
	LastUpdate string   `json:"lastUpdate"`
	Changelog  []Change `json:"changelog"`
}

// Apply bumps the document version and records the change. It returns the
// previous and the new version.
func Apply(doc *Document, kind BumpKind, now time.Time) (from, to Version, err error) {
	from, err = Parse(doc.Version)
	if err != nil {
		return from, to, err
	}
	to, err = Bump(from, kind)
	if err != nil {
		return from, to, err
	}

	build := doc.Build
	if build == 0 {
		build = 1
	}
	doc.Version = to.String()
	doc.Build = build + 1
	doc.LastUpdate = now.UTC().Format(DateLayout)

	entry := Change{
		Version: doc.Version,
		Date:    doc.LastUpdate,
		Changes: []string{fmt.Sprintf("%s version update", kind)},
	}
	doc.Changelog = append([]Change{entry}, doc.Changelog...)
	if len(doc.Changelog) > MaxChangelog {
		doc.Changelog = doc.Changelog[:MaxChangelog]
	}
	return from, to, nil
}

// Read loads a version document.
func Read(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("version: read %s: %w", path, err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("version: parse %s: %w", path, err)
	}
	return &doc, nil
}

// Marshal encodes doc with two-space indentation.
func Marshal(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Write stores doc at path.
func Write(path string, doc *Document) error {
	data, err := Marshal(doc)
	if err != nil {
		return fmt.Errorf("version: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("version: write %s: %w", path, err)
	}
	return nil
}

var markerPattern = regexp.MustCompile(`<span id="versionNumber">[\d.]+</span>`)

// PatchHTML replaces the first version marker in html with v. It reports
// whether a marker was found.
func PatchHTML(html string, v Version) (string, bool) {
	loc := markerPattern.FindStringIndex(html)
	if loc == nil {
		return html, false
	}
	marker := `<span id="versionNumber">` + v.String() + `</span>`
	return html[:loc[0]] + marker + html[loc[1]:], true
}

// PatchHTMLFile rewrites the version marker of the file at path.
func PatchHTMLFile(path string, v Version) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("version: read %s: %w", path, err)
	}
	out, found := PatchHTML(string(data), v)
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return found, fmt.Errorf("version: write %s: %w", path, err)
	}
	return found, nil
}
