//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

var exportFiles = map[string]string{
	"titles.json": `[
  {"imdbId":"tt0021884","title":"Frankenstein","sortTitle":"Frankenstein","releaseYear":"1931","releaseSequence":"1931-11-21tt0021884",
   "reviewDate":"2020-10-01","reviewYear":"2020","reviewSequence":"2020-10-01-1","grade":"A","gradeValue":12,
   "genres":["Horror","Science Fiction"],"slug":"frankenstein-1931","directorNames":["James Whale"],"performerNames":["Boris Karloff"]},
  {"imdbId":"tt0021814","title":"Dracula","sortTitle":"Dracula","releaseYear":"1931","releaseSequence":"1931-02-14tt0021814",
   "reviewDate":"2021-10-01","reviewYear":"2021","reviewSequence":"2021-10-01-1","grade":"B","gradeValue":9,
   "genres":["Horror"],"slug":"dracula-1931","directorNames":["Tod Browning"],"performerNames":["Bela Lugosi"]},
  {"imdbId":"tt0023245","title":"The Mummy","sortTitle":"Mummy","releaseYear":"1932","releaseSequence":"1932-12-22tt0023245",
   "reviewDate":"2022-10-01","reviewYear":"2022","reviewSequence":"2022-10-01-1","grade":"B+","gradeValue":10,
   "genres":["Horror","Fantasy"],"slug":"the-mummy-1932","directorNames":["Karl Freund"],"performerNames":["Boris Karloff"]}
]`,
	"watchlist.json": `[
  {"imdbId":"tt0034398","title":"The Wolf Man","sortTitle":"Wolf Man","releaseYear":"1941","releaseSequence":"1941-12-12tt0034398",
   "genres":["Horror"],"directorNames":["George Waggner"]}
]`,
	"cast-and-crew.json": `[
  {"name":"Boris Karloff","slug":"boris-karloff","creditedAs":["performer"],"reviewCount":2,"totalCount":3},
  {"name":"James Whale","slug":"james-whale","creditedAs":["director"],"reviewCount":1,"totalCount":4}
]`,
	"collections.json": `[
  {"name":"Universal Monsters","slug":"universal-monsters","description":"The studio's horror cycle.","reviewCount":3,"titleCount":4}
]`,
}

const searchBundle = `{"documents":[
  {"id":"r1","url":"/reviews/frankenstein-1931/","kind":"review","title":"Frankenstein","excerpt":"It's alive."},
  {"id":"r2","url":"/reviews/dracula-1931/","kind":"review","title":"Dracula","excerpt":"Lugosi as the count."},
  {"id":"c1","url":"/cast-and-crew/boris-karloff/","kind":"castandcrew","title":"Boris Karloff","excerpt":"Frankenstein's monster."}
]}`

// createWorkspace fills a temp dir with a content export, a search bundle
// and a config pointing at both
func (s *session) createWorkspace() string {
	s.t.Helper()
	dir := s.t.TempDir()
	s.workspace = dir

	must := func(err error) {
		if err != nil {
			s.t.Fatalf("creating workspace: %v", err)
		}
	}
	must(os.MkdirAll(s.exportDir(), 0o755))
	for name, body := range exportFiles {
		must(os.WriteFile(filepath.Join(s.exportDir(), name), []byte(body), 0o644))
	}
	bundle := filepath.Join(dir, "search-index.json")
	must(os.WriteFile(bundle, []byte(searchBundle), 0o644))

	cfg := fmt.Sprintf(`database = %q
content_dir = %q

[search]
bundle = %q
debounce = "50ms"

[logging]
level = "debug"
file = %q
`, filepath.Join(dir, "data", "filmlog.db"), s.exportDir(), bundle, filepath.Join(dir, "filmlog.log"))
	must(os.WriteFile(s.configPath(), []byte(cfg), 0o644))
	return dir
}

func (s *session) exportDir() string  { return filepath.Join(s.workspace, "export") }
func (s *session) configPath() string { return filepath.Join(s.workspace, "config.toml") }
