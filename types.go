package mdsplit

// Split level bounds. Level 1 splits at "#" headings.
const (
	MinSplitLevel     = 1
	MaxSplitLevel     = 6
	DefaultSplitLevel = 1
)

// DefaultBaseName is used when no output base name is configured.
const DefaultBaseName = "page"

// IndexFilename is the canonical index file of a generated site.
const IndexFilename = "index.html"

// minPadWidth keeps filenames like page-001.html sortable even for small
// sites, matching the padding the navigation scripts and tests expect.
const minPadWidth = 3

// Input contains the document and run-wide naming configuration for a build.
type Input struct {
	Markdown   string // Markdown content (required)
	BaseName   string // base name for page files (default: "page")
	SplitLevel int    // heading level that starts a new page (default: 1)
	IndexFirst bool   // name the first page index.html instead of emitting a contents page
	Workers    int    // concurrent render workers (0 = derive from GOMAXPROCS)
}

// Directives holds the per-segment output customizations extracted from
// directive comments. The zero value means "no directives".
type Directives struct {
	Title   string   // last title directive wins; "" = use heading
	Classes []string // accumulated, deduplicated, first-occurrence order
	NoPub   bool     // sticky: any occurrence excludes the page
}

// Segment is a contiguous slice of the document between two split
// boundaries, directive comments already removed from Body.
type Segment struct {
	Ordinal    int    // 0-based, document order
	Heading    string // first heading as plain text; "" if none
	Level      int    // level of that heading; 1 if none
	Body       string // Markdown, directives stripped
	Directives Directives
}

// Page is a Segment materialized with a filename, resolved title, and
// rendered HTML body. Prev and Next are filled by the navigation linker and
// are empty for unpublished pages and at sequence boundaries.
type Page struct {
	Ordinal  int
	Filename string
	Title    string
	Classes  []string
	Level    int
	Body     string // rendered HTML fragment
	Publish  bool
	Prev     string // filename of previous published page
	Next     string // filename of next published page
}

// IndexItem is one entry of the published-pages table of contents.
type IndexItem struct {
	Filename string
	Title    string
	Level    int
}

// Site is the ordered collection of all pages plus the published-only index.
type Site struct {
	Pages      []*Page // all pages in ordinal order, including unpublished
	Index      []IndexItem
	IndexFirst bool
}

// Published returns the site's published pages in ordinal order.
func (s *Site) Published() []*Page {
	out := make([]*Page, 0, len(s.Pages))
	for _, p := range s.Pages {
		if p.Publish {
			out = append(out, p)
		}
	}
	return out
}
