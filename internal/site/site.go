// Package site renders the thread map into a static website: one page per
// thread, paginated index pages grouped by month, a client-side search index
// and the static assets. It consumes finished threads and performs the one
// sanctioned message mutation: writing back each message's final URL once
// its thread's output file name is known.
package site

import (
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/emurenMRz/mboxsite/internal/message"
	"github.com/emurenMRz/mboxsite/internal/thread"
)

const threadsPerPage = 25

// Generator writes the output tree for one forum archive.
type Generator struct {
	outDir    string
	forumName string
	assets    Assets

	threadTmpl *template.Template
	indexTmpl  *template.Template
}

// NewGenerator returns a Generator writing under outDir/<slugified name>
// with the default assets.
func NewGenerator(outDir, forumName string) *Generator {
	return &Generator{
		outDir:     filepath.Join(outDir, slugify(forumName)),
		forumName:  forumName,
		assets:     DefaultAssets(),
		threadTmpl: template.Must(template.New("thread").Parse(threadPageTmpl)),
		indexTmpl:  template.Must(template.New("index").Parse(indexPageTmpl)),
	}
}

// SetAssets replaces the static CSS/JS/search assets written by Generate.
func (g *Generator) SetAssets(a Assets) { g.assets = a }

// Root returns the directory the site is written into, including the
// slugified forum subdirectory.
func (g *Generator) Root() string { return g.outDir }

// Generate writes the whole site. Thread pages come first so that message
// URLs are finalized before the index and search pages reference them.
func (g *Generator) Generate(threads *thread.Map) error {
	for _, dir := range []string{"", "messages", "static", "search"} {
		if err := os.MkdirAll(filepath.Join(g.outDir, dir), 0o755); err != nil {
			return err
		}
	}
	if err := g.writeAssets(); err != nil {
		return err
	}

	for i, key := range threads.Keys() {
		if err := g.writeThreadPage(i+1, key, threads.Get(key)); err != nil {
			return fmt.Errorf("thread %q: %w", key, err)
		}
	}
	if err := g.writeIndexPages(threads); err != nil {
		return err
	}
	return g.writeSearchIndex(threads)
}

func (g *Generator) writeAssets() error {
	files := map[string]string{
		filepath.Join("static", "style.css"): g.assets.CSS,
		filepath.Join("static", "script.js"): g.assets.JS,
		filepath.Join("search", "index.html"): g.assets.SearchPage,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(g.outDir, name), []byte(content), 0o644); err != nil {
			return err
		}
	}
	return nil
}

type messageView struct {
	Subject string
	Sender  string
	Date    string
	Content template.HTML
	First   bool
}

type threadPageData struct {
	ForumName string
	Title     string
	Started   string
	Count     int
	Messages  []messageView
}

func (g *Generator) writeThreadPage(id int, key string, msgs []message.Message) error {
	data := threadPageData{
		ForumName: g.forumName,
		Title:     key,
		Started:   msgs[0].Date().Format("2006-01-02"),
		Count:     len(msgs),
	}
	for i, m := range msgs {
		data.Messages = append(data.Messages, messageView{
			Subject: m.Subject(),
			Sender:  senderString(m),
			Date:    formatDate(m.Date()),
			Content: template.HTML(m.HTMLContent()),
			First:   i == 0,
		})
	}

	filename := fmt.Sprintf("thread_%d_%s.html", id, safeFilename(key))
	f, err := os.Create(filepath.Join(g.outDir, "messages", filename))
	if err != nil {
		return err
	}
	if err := g.threadTmpl.Execute(f, data); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	// Finalize: every message now points at its thread page.
	for _, m := range msgs {
		m.SetURL("messages/" + filename)
	}
	return nil
}

type threadPreview struct {
	Title     string
	URL       string
	StartedBy string
	Count     int
	LastReply string
	Snippet   string
}

type monthGroup struct {
	Heading string
	Threads []threadPreview
}

type indexPageData struct {
	ForumName     string
	Page          int
	TotalPages    int
	TotalThreads  int
	TotalMessages int
	Months        []monthGroup
	Pages         []pageLink
	PrevURL       string
	NextURL       string
}

type pageLink struct {
	Number  int
	URL     string
	Current bool
}

func (g *Generator) writeIndexPages(threads *thread.Map) error {
	order := orderByActivity(threads)
	totalPages := (len(order) + threadsPerPage - 1) / threadsPerPage
	if totalPages == 0 {
		totalPages = 1
	}

	for page := 1; page <= totalPages; page++ {
		start := (page - 1) * threadsPerPage
		end := start + threadsPerPage
		if end > len(order) {
			end = len(order)
		}

		data := indexPageData{
			ForumName:     g.forumName,
			Page:          page,
			TotalPages:    totalPages,
			TotalThreads:  threads.Len(),
			TotalMessages: threads.Messages(),
			Months:        groupByMonth(threads, order[start:end]),
		}
		if totalPages > 1 {
			data.Pages = pageLinks(page, totalPages)
			if page > 1 {
				data.PrevURL = indexFilename(page - 1)
			}
			if page < totalPages {
				data.NextURL = indexFilename(page + 1)
			}
		}

		f, err := os.Create(filepath.Join(g.outDir, indexFilename(page)))
		if err != nil {
			return err
		}
		if err := g.indexTmpl.Execute(f, data); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}

func indexFilename(page int) string {
	if page == 1 {
		return "index.html"
	}
	return fmt.Sprintf("index%d.html", page)
}

func pageLinks(current, total int) []pageLink {
	links := make([]pageLink, 0, total)
	for p := 1; p <= total; p++ {
		links = append(links, pageLink{Number: p, URL: indexFilename(p), Current: p == current})
	}
	return links
}

func groupByMonth(threads *thread.Map, keys []string) []monthGroup {
	var groups []monthGroup
	for _, key := range keys {
		msgs := threads.Get(key)
		first, last := msgs[0], msgs[len(msgs)-1]

		heading := "Undated"
		if !last.Date().IsZero() {
			heading = last.Date().Format("January 2006")
		}
		if len(groups) == 0 || groups[len(groups)-1].Heading != heading {
			groups = append(groups, monthGroup{Heading: heading})
		}

		g := &groups[len(groups)-1]
		g.Threads = append(g.Threads, threadPreview{
			Title:     key,
			URL:       first.URL(),
			StartedBy: senderString(first),
			Count:     len(msgs),
			LastReply: last.Date().Format("2006-01-02"),
			Snippet:   snippet(first.HTMLContent(), 200),
		})
	}
	return groups
}

// searchEntry is one record of the client-side search index.
type searchEntry struct {
	ID           int      `json:"id"`
	URL          string   `json:"url"`
	Title        string   `json:"title"`
	Authors      []string `json:"authors"`
	MessageCount int      `json:"messageCount"`
	StartDate    string   `json:"startDate"`
	LastDate     string   `json:"lastDate"`
}

func (g *Generator) writeSearchIndex(threads *thread.Map) error {
	entries := make([]searchEntry, 0, threads.Len())
	for i, key := range threads.Keys() {
		msgs := threads.Get(key)
		first, last := msgs[0], msgs[len(msgs)-1]

		var authors []string
		seen := map[string]bool{}
		for _, m := range msgs {
			if name := m.SenderName(); name != "" && !seen[name] {
				seen[name] = true
				authors = append(authors, name)
			}
		}

		entries = append(entries, searchEntry{
			ID:           i,
			URL:          "../" + first.URL(), // relative to search/
			Title:        key,
			Authors:      authors,
			MessageCount: len(msgs),
			StartDate:    isoDate(first.Date()),
			LastDate:     isoDate(last.Date()),
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(g.outDir, "search", "search_index.json"), data, 0o644)
}

// orderByActivity returns thread keys ordered by the date of each thread's
// last message, most recently active first. Threads without dates go last.
// This is presentation order only; the thread map keeps insertion order.
func orderByActivity(threads *thread.Map) []string {
	keys := append([]string(nil), threads.Keys()...)
	sort.SliceStable(keys, func(a, b int) bool {
		msgsA, msgsB := threads.Get(keys[a]), threads.Get(keys[b])
		ta := msgsA[len(msgsA)-1].Date()
		tb := msgsB[len(msgsB)-1].Date()
		if ta.Equal(tb) {
			return false
		}
		if ta.IsZero() {
			return false
		}
		if tb.IsZero() {
			return true
		}
		return ta.After(tb)
	})
	return keys
}

func senderString(m message.Message) string {
	s := strings.TrimSpace(m.SenderName())
	if email := strings.TrimSpace(m.SenderEmail()); email != "" {
		if s != "" {
			s += " (" + email + ")"
		} else {
			s = email
		}
	}
	if s == "" {
		s = "Unknown"
	}
	return s
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "Unknown date"
	}
	return t.Format("2006-01-02 15:04:05 MST")
}

func isoDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

var (
	unsafeChars  = regexp.MustCompile(`[^a-zA-Z0-9 \-_]`)
	slugSpaces   = regexp.MustCompile(`[\s_]+`)
	slugNonWord  = regexp.MustCompile(`[^a-z0-9\-]`)
	slugHyphens  = regexp.MustCompile(`-+`)
)

// safeFilename reduces a thread key to a short filesystem-safe fragment.
func safeFilename(s string) string {
	s = unsafeChars.ReplaceAllString(s, "_")
	s = strings.ReplaceAll(s, " ", "_")
	if len(s) > 50 {
		s = s[:50]
	}
	return s
}

// slugify converts a forum name to a lowercase hyphenated directory name.
func slugify(s string) string {
	s = strings.ToLower(s)
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugNonWord.ReplaceAllString(s, "")
	s = slugHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
