package mdsplit

import (
	"fmt"
	"html"
	"strings"
	"time"
)

// appName appears in the generated-by footer of auxiliary pages.
const appName = "mdsplit"

// Navigation link arrows.
const (
	navPrevAnchor = "&larr;"
	navNextAnchor = "&rarr;"
)

// navScriptTemplate navigates between pages with the keyboard (arrow keys,
// Page Up/Down) or touch swipe gestures. Placeholders: prev, next filename.
const navScriptTemplate = `<script type="text/javascript">
    let startX = 0;
    let startY = 0;
    let endX = 0;
    let endY = 0;
    let prevPage = '%s';
    let nextPage = '%s';
    const MIN_SWIPE = 30;

    document.addEventListener('keydown', function(event) {
        switch (event.key) {
            case "ArrowLeft":
            case "PageUp":
                if (prevPage) { window.location.href = prevPage; }
                break;
            case "ArrowRight":
            case "PageDown":
                if (nextPage) { window.location.href = nextPage; }
                break;
            default:
                break;
        }
    });

    document.addEventListener('touchstart', (event) => {
        startX = event.changedTouches[0].screenX;
        startY = event.changedTouches[0].screenY;
    }, false);

    document.addEventListener('touchend', (event) => {
        endX = event.changedTouches[0].screenX;
        endY = event.changedTouches[0].screenY;
        handleSwipe();
    }, false);

    function handleSwipe() {
        let diffX = endX - startX;
        let diffY = endY - startY;
        let diff = Math.abs(diffX) > Math.abs(diffY) ? diffX : diffY;
        if (Math.abs(diff) > MIN_SWIPE) {
            if (diff > 0) {
                if (prevPage) { window.location.href = prevPage; }
            } else {
                if (nextPage) { window.location.href = nextPage; }
            }
        }
    }
</script>
`

// showNavScript reveals the navigation arrows on mouse movement and hides
// them again after a two-second idle timeout.
const showNavScript = `<script type="text/javascript">
    var containerDiv = document.getElementById('container');
    var timeoutId;
    document.addEventListener('mousemove', function() {
        containerDiv.classList.add('show-nav');
        if (timeoutId) {
            clearTimeout(timeoutId);
        }
        timeoutId = setTimeout(function() {
            containerDiv.classList.remove('show-nav');
        }, 2000);
    });
</script>
`

// navLinkDiv returns a div containing a navigation link. Without a target
// the div is kept but empty, so layout stays stable at sequence boundaries.
func navLinkDiv(divID, target, anchor string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<div id=%q class=\"nav-link\">\n", divID)
	if target != "" {
		fmt.Fprintf(&b, "  <a href=%q>%s</a>\n", target, anchor)
	}
	b.WriteString("</div>\n")
	return b.String()
}

// pageDocument assembles the complete HTML document for one page.
// cssLink is a full <link> tag referencing an external stylesheet; when
// empty, inlineCSS is embedded in a <style> block instead.
func pageDocument(p *Page, width int, cssLink, inlineCSS string) string {
	var b strings.Builder

	num := p.Ordinal + 1

	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	fmt.Fprintf(&b, "<title>%d. %s</title>\n", num, html.EscapeString(p.Title))
	b.WriteString("<meta http-equiv=\"Content-Type\" content=\"text/html; charset=UTF-8\">\n")

	if cssLink != "" {
		b.WriteString(cssLink)
		b.WriteString("\n")
	} else {
		fmt.Fprintf(&b, "<style>\n%s</style>\n", inlineCSS)
	}

	fmt.Fprintf(&b, "</head>\n<body>\n<div id=\"container\" class=\"page-%0*d\">\n\n", width, num)
	b.WriteString(navLinkDiv("nav-prev", p.Prev, navPrevAnchor))

	classAttr := ""
	if len(p.Classes) > 0 {
		classAttr = fmt.Sprintf(" class=%q", strings.Join(p.Classes, " "))
	}
	fmt.Fprintf(&b, "\n<div id=\"content\"%s>\n", classAttr)

	b.WriteString(p.Body)

	b.WriteString("</div>  <!-- content -->\n\n")
	b.WriteString(navLinkDiv("nav-next", p.Next, navNextAnchor))
	b.WriteString("\n</div>  <!-- container -->\n\n")

	fmt.Fprintf(&b, navScriptTemplate, p.Prev, p.Next)
	b.WriteString("\n")
	b.WriteString(showNavScript)
	b.WriteString("\n</body>\n</html>\n")

	return b.String()
}

// footDiv returns the generated-by footer of auxiliary pages.
func footDiv(version string, builtAt time.Time) string {
	return fmt.Sprintf("<div id=\"foot\">\nCreated by %s %s at %s\n</div>\n",
		appName, version, builtAt.Format("2006-01-02 15:04"))
}

const indexDocumentHead = `<!DOCTYPE html>
<html lang="en">
<head>
  <title>Index</title>
  <style>
    body { font-family: sans-serif; }
    li {
        border: 1px solid #dde;
        border-radius: 5px;
        margin: 0.3rem;
        padding: 0.3rem;
    }
    #container { display: flex; justify-content: center; }
    #content { max-width: 900px; }
    #foot {
        border-top: 1px solid gray;
        font-family: monospace;
        font-size: small;
        margin-top: 3rem;
        padding-top: 1rem;
    }
    a:link, a:visited { color: navy; text-decoration: none; }
    a:hover { text-decoration: underline; }
  </style>
  <base target="_blank">
</head>
<body>
<div id="container">
<div id="content">
<p>
Navigate pages using Left and Right arrow, Page Up, and Page Down.</p>
<p>See also:
<a href="links.html">Extracted links</a>,
<a href="one-page.html">One-page version</a>
</p>
<h1>Index of Pages</h1>
<ol>
`

// indexDocument builds the table-of-contents page listing published pages.
func indexDocument(items []IndexItem, version string, builtAt time.Time) string {
	var b strings.Builder
	b.WriteString(indexDocumentHead)

	for _, item := range items {
		fmt.Fprintf(&b, "  <li class=\"index-lev-%d\"><a href=%q>%s</a></li>\n",
			item.Level, item.Filename, html.EscapeString(item.Title))
	}

	b.WriteString("</ol>\n")
	b.WriteString(footDiv(version, builtAt))
	b.WriteString("</div>\n</div>\n</body>\n</html>\n")
	return b.String()
}

// plainDocumentHead is the shared shell of the one-page and extracted-links
// documents. Placeholder: document title.
const plainDocumentHead = `<!DOCTYPE html>
<html lang="en">
<head>
  <title>%s</title>
  <style>
    body {
        font-family: sans-serif;
        margin: 4rem;
    }
    #foot {
        border-top: 1px solid gray;
        font-family: monospace;
        font-size: small;
        margin-top: 3rem;
        padding-top: 1rem;
    }
  </style>
</head>
<body>
`

// pageSeparator visually divides concatenated page fragments.
const pageSeparator = "\n<p>&nbsp;</p>\n<hr>\n<p>&nbsp;</p>\n"

// onePageDocument concatenates every published page's rendered fragment
// into a single printable document.
func onePageDocument(pages []*Page, version string, builtAt time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, plainDocumentHead, "One-Page")

	for _, p := range pages {
		b.WriteString(p.Body)
		b.WriteString(pageSeparator)
	}

	b.WriteString(footDiv(version, builtAt))
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// linksDocument collects, per published page, its first heading and every
// line carrying an anchor tag. Pages contributing neither a link nor a
// top-level heading are skipped.
func linksDocument(pages []*Page, version string, builtAt time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, plainDocumentHead, "Extracted Links")

	for _, p := range pages {
		section, include := extractLinkLines(p.Body)
		if include {
			b.WriteString(section)
			b.WriteString(pageSeparator)
		}
	}

	b.WriteString(footDiv(version, builtAt))
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// extractLinkLines pulls the first h1-h4 heading and all anchor-bearing
// lines out of a rendered fragment. The section is worth including when it
// has at least one link or its heading is an h1.
func extractLinkLines(fragment string) (section string, include bool) {
	var b strings.Builder
	foundHeading := false
	isH1 := false
	foundLink := false

	for _, line := range strings.Split(fragment, "\n") {
		s := strings.ToLower(strings.TrimSpace(line))

		if !foundHeading {
			for _, tag := range []string{"<h1", "<h2", "<h3", "<h4"} {
				if strings.HasPrefix(s, tag) {
					foundHeading = true
					isH1 = tag == "<h1"
					b.WriteString(line)
					b.WriteString("\n")
					break
				}
			}
			if foundHeading {
				continue
			}
		}

		if strings.Contains(s, "<a ") {
			foundLink = true
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return b.String(), foundLink || isH1
}
