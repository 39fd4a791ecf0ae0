package mdsplit

// linkPages computes previous/next references across published pages and
// returns the published-only index ordering.
//
// Linking works on the filtered list, so excluding a page can never create
// a broken or self-referential link: its neighbors become directly linked.
// The first published page has no prev, the last has no next.
func linkPages(pages []*Page) []IndexItem {
	var published []*Page
	for _, p := range pages {
		if p.Publish {
			published = append(published, p)
		}
	}

	items := make([]IndexItem, 0, len(published))
	for i, p := range published {
		if i > 0 {
			p.Prev = published[i-1].Filename
		}
		if i < len(published)-1 {
			p.Next = published[i+1].Filename
		}
		items = append(items, IndexItem{
			Filename: p.Filename,
			Title:    p.Title,
			Level:    p.Level,
		})
	}
	return items
}
