// Package content serves the storefront's static prose pages (the story
// page) from local markdown files with YAML front matter.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

// ErrNotFound reports a missing or invalid slug.
var ErrNotFound = errors.New("content: page not found")

// Page is a static prose page after rendering.
type Page struct {
	Slug      string
	Title     string
	Summary   string
	Body      template.HTML
	UpdatedAt time.Time
}

type frontMatter struct {
	Title     string `yaml:"title"`
	Summary   string `yaml:"summary"`
	UpdatedAt string `yaml:"updated_at"`
}

const defaultDir = "content"

// Loader reads, renders, and caches pages from a directory.
type Loader struct {
	dir      string
	ttl      time.Duration
	mu       sync.RWMutex
	cache    map[string]cacheEntry
	markdown goldmark.Markdown
	policy   *bluemonday.Policy
}

type cacheEntry struct {
	page    Page
	expires time.Time
}

// NewLoader builds a loader over dir with a cache TTL. Zero or negative
// TTL disables caching, which tests rely on.
func NewLoader(dir string, ttl time.Duration) *Loader {
	if strings.TrimSpace(dir) == "" {
		dir = defaultDir
	}
	return &Loader{
		dir:      dir,
		ttl:      ttl,
		cache:    map[string]cacheEntry{},
		markdown: goldmark.New(),
		policy:   bluemonday.UGCPolicy(),
	}
}

// Page returns the rendered page for slug, consulting the cache first.
func (l *Loader) Page(slug string) (Page, error) {
	slug = sanitizeSlug(slug)
	if slug == "" {
		return Page{}, ErrNotFound
	}
	if l.ttl > 0 {
		l.mu.RLock()
		entry, ok := l.cache[slug]
		l.mu.RUnlock()
		if ok && time.Now().Before(entry.expires) {
			return entry.page, nil
		}
	}
	page, err := l.read(slug)
	if err != nil {
		return Page{}, err
	}
	if l.ttl > 0 {
		l.mu.Lock()
		l.cache[slug] = cacheEntry{page: page, expires: time.Now().Add(l.ttl)}
		l.mu.Unlock()
	}
	return page, nil
}

func (l *Loader) read(slug string) (Page, error) {
	file := filepath.Join(l.dir, slug+".md")
	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Page{}, ErrNotFound
		}
		return Page{}, err
	}
	fm, body := splitFrontMatter(string(data))
	front := frontMatter{}
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return Page{}, fmt.Errorf("content: parse front matter %s: %w", file, err)
		}
	}

	var buf bytes.Buffer
	if err := l.markdown.Convert([]byte(body), &buf); err != nil {
		return Page{}, fmt.Errorf("content: render %s: %w", file, err)
	}
	safe := l.policy.SanitizeBytes(buf.Bytes())

	page := Page{
		Slug:    slug,
		Title:   strings.TrimSpace(front.Title),
		Summary: strings.TrimSpace(front.Summary),
		Body:    template.HTML(safe),
	}
	if page.Title == "" {
		page.Title = prettifySlug(slug)
	}
	page.UpdatedAt = parseDate(front.UpdatedAt)
	if page.UpdatedAt.IsZero() {
		if info, err := os.Stat(file); err == nil {
			page.UpdatedAt = info.ModTime()
		}
	}
	return page, nil
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	lines := strings.Split(input, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return strings.Join(lines[1:i], "\n"), strings.TrimLeft(strings.Join(lines[i+1:], "\n"), "\n\r")
		}
	}
	return "", input
}

func parseDate(v string) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02", "2006/01/02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func prettifySlug(slug string) string {
	parts := strings.Split(slug, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		if runes[0] >= 'a' && runes[0] <= 'z' {
			runes[0] -= 'a' - 'A'
		}
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}

func sanitizeSlug(slug string) string {
	slug = strings.Trim(strings.TrimSpace(strings.ToLower(slug)), "/")
	if slug == "" || strings.Contains(slug, "..") || strings.ContainsRune(slug, os.PathSeparator) {
		return ""
	}
	return slug
}
