package cloning

import (
	"regexp"
	"strings"

	"github.com/jonathan/portfolio-generator/internal/markup"
	"github.com/jonathan/portfolio-generator/internal/types"
)

var (
	projectsOpener = markup.OpenerWithAttr(containerTags, "project", "work", "portfolio", "featured")
	articleOpener  = markup.Opener("article")
	cardDivOpener  = markup.OpenerWithAttr([]string{"div"}, "card", "item", "project", "featured")
	headingOpener  = markup.Opener("h1", "h2", "h3", "h4", "h5", "h6")
	anchorOpener   = markup.Opener("a")

	// Elements inside a card that describe one specific project.
	badgeOpener   = markup.OpenerWithAttr([]string{"div", "span", "p", "small"}, "tag", "tech", "stack", "badge", "chip", "pill")
	pictureOpener = markup.Opener("picture", "figure")
	imgRe         = regexp.MustCompile(`(?i)<img\b[^>]*>`)

	hrefValueRe = regexp.MustCompile(`(?i)<a\b[^>]*?\shref\s*=\s*(?:"([^"]*)"|'([^']*)')`)
)

// templateProjects finds the project cards of a work-like container and
// collapses them into one loop whose body is the first card with its title,
// description and link replaced.
func (c *converter) templateProjects() {
	region := findUntemplated(c.html, projectsOpener)
	if region == nil {
		return
	}

	inner := region.InnerText
	articles := markup.FindAllRegions(inner, articleOpener)
	cardDivs := findCardDivs(inner)

	// A list nested in a card is that card's tag list, not the card list.
	if list := markup.FindRegion(inner, listOpener); list != nil && !within(list, articles, cardDivs) {
		if items := markup.FindAllRegions(list.InnerText, liOpener); len(items) > 0 {
			listInner := collapseCards(list.InnerText, items)
			inner = markup.Splice(inner, list, list.Rebuild(listInner))
			c.commitProjects(region, inner)
			return
		}
	}
	if len(articles) > 0 {
		c.commitProjects(region, collapseCards(inner, articles))
		return
	}
	if len(cardDivs) > 0 {
		c.commitProjects(region, collapseCards(inner, cardDivs))
	}
}

func (c *converter) commitProjects(region *markup.Region, inner string) {
	c.html = markup.Splice(c.html, region, region.Rebuild(inner))
	c.detected[types.SectionProjects] = true
}

// collapseCards removes every card from container and puts the loop where
// the first card was. Content between cards is kept.
func collapseCards(container string, cards []*markup.Region) string {
	loop := ProjectsLoopOpen + cardTemplate(cards[0]) + LoopClose
	out := container
	for i := len(cards) - 1; i > 0; i-- {
		out = markup.Splice(out, cards[i], "")
	}
	return markup.Splice(out, cards[0], loop)
}

// cardTemplate turns one project card into the loop body.
func cardTemplate(card *markup.Region) string {
	inner := card.InnerText
	inner = removeAll(inner, listOpener)
	inner = removeAll(inner, badgeOpener)
	inner = removeAll(inner, pictureOpener)
	inner = imgRe.ReplaceAllString(inner, "")

	if h := markup.FindRegion(inner, headingOpener); h != nil {
		inner = markup.Splice(inner, h, h.Rebuild(ProjectTitle))
	} else {
		for _, a := range markup.FindAllRegions(inner, anchorOpener) {
			if markup.StripTags(a.InnerText) != "" {
				inner = markup.Splice(inner, a, a.Rebuild(ProjectTitle))
				break
			}
		}
	}

	paragraphs := markup.FindAllRegions(inner, pOpener)
	var desc *markup.Region
	for _, p := range paragraphs {
		if markup.TextLen(p.InnerText) > minParagraphLength {
			desc = p
			break
		}
	}
	if desc == nil {
		for _, p := range paragraphs {
			if markup.TextLen(p.InnerText) > 0 && !markup.HasPlaceholder(p.InnerText) {
				desc = p
				break
			}
		}
	}
	if desc != nil {
		inner = markup.Splice(inner, desc, desc.Rebuild(ProjectDescription))
	}

	inner = replaceFirstLink(inner)
	return card.Rebuild(inner)
}

// replaceFirstLink points the first real anchor of a card at the project link.
func replaceFirstLink(fragment string) string {
	for _, m := range hrefValueRe.FindAllStringSubmatchIndex(fragment, -1) {
		start, end := m[2], m[3]
		if start < 0 {
			start, end = m[4], m[5]
		}
		value := strings.TrimSpace(fragment[start:end])
		if value == "" || strings.HasPrefix(value, "#") || markup.HasPlaceholder(value) {
			continue
		}
		return fragment[:start] + ProjectLink + fragment[end:]
	}
	return fragment
}

// findCardDivs returns the card-like divs of fragment. A lone match that
// wraps two or more card-like divs is a grid, and its children are returned
// instead.
func findCardDivs(fragment string) []*markup.Region {
	cards := markup.FindAllRegions(fragment, cardDivOpener)
	for len(cards) == 1 {
		grid := cards[0]
		nested := markup.FindAllRegions(grid.InnerText, cardDivOpener)
		if len(nested) < 2 {
			break
		}
		offset := grid.Start + len(grid.OpenTag)
		for _, r := range nested {
			r.Start += offset
			r.End += offset
		}
		cards = nested
	}
	return cards
}

func within(r *markup.Region, groups ...[]*markup.Region) bool {
	for _, group := range groups {
		for _, outer := range group {
			if r.Start > outer.Start && r.End <= outer.End {
				return true
			}
		}
	}
	return false
}

// removeAll deletes every region matched by opener from fragment.
func removeAll(fragment string, opener *regexp.Regexp) string {
	regions := markup.FindAllRegions(fragment, opener)
	for i := len(regions) - 1; i >= 0; i-- {
		fragment = markup.Splice(fragment, regions[i], "")
	}
	return fragment
}
