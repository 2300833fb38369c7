package cloning

import (
	"regexp"
	"strings"

	"github.com/jonathan/portfolio-generator/internal/markup"
	"github.com/jonathan/portfolio-generator/internal/types"
)

const (
	minParagraphLength = 20
	maxPillLength      = 50
	minPills           = 3
)

var (
	containerTags = []string{"section", "div"}

	bioOpener    = markup.OpenerWithAttr(containerTags, "about", "bio", "intro", "summary")
	skillsOpener = markup.OpenerWithAttr(containerTags, "skill", "tech", "stack", "tool", "competenc", "expertise")

	pOpener    = markup.Opener("p")
	listOpener = markup.Opener("ul", "ol")
	liOpener   = markup.Opener("li")

	// pillRe matches a leaf inline element holding a short label.
	pillRe = regexp.MustCompile(`(?i)<(span|div|a)\b([^>]*)>([^<]+)</(span|div|a)\s*>`)
)

// templateBio swaps the first substantial paragraph of an about-like
// container for the bio placeholder and drops its other substantial
// paragraphs.
func (c *converter) templateBio() {
	region := markup.FindRegion(c.html, bioOpener)
	if region == nil {
		return
	}

	inner := region.InnerText
	paragraphs := markup.FindAllRegions(inner, pOpener)
	first := -1
	for i, p := range paragraphs {
		if markup.TextLen(p.InnerText) > minParagraphLength {
			first = i
			break
		}
	}
	if first < 0 {
		return
	}

	for i := len(paragraphs) - 1; i >= first; i-- {
		p := paragraphs[i]
		switch {
		case i == first:
			inner = markup.Splice(inner, p, p.Rebuild(PlaceholderBio))
		case markup.TextLen(p.InnerText) > minParagraphLength:
			inner = markup.Splice(inner, p, "")
		}
	}

	c.html = markup.Splice(c.html, region, region.Rebuild(inner))
	c.detected[types.SectionBio] = true
}

// templateSkills turns a skills container's list, or its run of short pill
// elements, into a loop over the comma separated skills string.
func (c *converter) templateSkills() {
	region := c.findSkillsRegion()
	if region == nil {
		return
	}

	inner, ok := loopListItems(region.InnerText)
	if !ok {
		inner, ok = loopPills(region.InnerText)
	}
	if !ok {
		return
	}

	c.html = markup.Splice(c.html, region, region.Rebuild(inner))
	c.detected[types.SectionSkills] = true
}

// loopListItems rewrites the first list in fragment so that its first item,
// emptied to the loop variable, repeats for every skill.
func loopListItems(fragment string) (string, bool) {
	list := markup.FindRegion(fragment, listOpener)
	if list == nil {
		return fragment, false
	}
	items := markup.FindAllRegions(list.InnerText, liOpener)
	if len(items) == 0 {
		return fragment, false
	}

	loop := SkillsLoopOpen + items[0].Rebuild(SkillItem) + LoopClose
	listInner := list.InnerText[:items[0].Start] + loop + list.InnerText[items[len(items)-1].End:]
	return markup.Splice(fragment, list, list.Rebuild(listInner)), true
}

type pill struct {
	start, end int
	tag        string
	attrs      string
}

// loopPills looks for at least three sibling leaf elements of the same tag
// with short text, keeps the first as the loop body and removes the rest.
func loopPills(fragment string) (string, bool) {
	var pills []pill
	for _, m := range pillRe.FindAllStringSubmatchIndex(fragment, -1) {
		open := strings.ToLower(fragment[m[2]:m[3]])
		if open != strings.ToLower(fragment[m[8]:m[9]]) {
			continue
		}
		text := strings.TrimSpace(fragment[m[6]:m[7]])
		if text == "" || len([]rune(text)) >= maxPillLength || markup.HasPlaceholder(text) {
			continue
		}
		if len(pills) > 0 && pills[0].tag != open {
			continue
		}
		pills = append(pills, pill{start: m[0], end: m[1], tag: open, attrs: fragment[m[4]:m[5]]})
	}
	if len(pills) < minPills {
		return fragment, false
	}

	first := pills[0]
	loop := SkillsLoopOpen + "<" + first.tag + first.attrs + ">" + SkillItem + "</" + first.tag + ">" + LoopClose

	out := fragment
	for i := len(pills) - 1; i > 0; i-- {
		out = out[:pills[i].start] + out[pills[i].end:]
	}
	return out[:first.start] + loop + out[first.end:], true
}

// findSkillsRegion returns the first untemplated skills-like container that
// is not part of the projects container or a project card. A card's
// "tech" or "stack" badges list that project's tools, not the owner's skills.
func (c *converter) findSkillsRegion() *markup.Region {
	var projectAreas []*markup.Region
	if projects := findUntemplated(c.html, projectsOpener); projects != nil {
		projectAreas = append(projectAreas, projects)
	}
	cards := markup.FindAllRegions(c.html, articleOpener)
	cards = append(cards, markup.FindAllRegions(c.html, cardDivOpener)...)

	from := 0
	for {
		region := markup.FindRegionAt(c.html, skillsOpener, from)
		if region == nil {
			return nil
		}
		if !markup.HasPlaceholder(region.InnerText) && !within(region, projectAreas, cards) {
			return region
		}
		from = region.Start + len(region.OpenTag)
	}
}

// findUntemplated returns the first region matched by opener that holds no
// placeholder yet, so a page-wide wrapper whose class happens to match does
// not swallow content templated by an earlier stage.
func findUntemplated(source string, opener *regexp.Regexp) *markup.Region {
	from := 0
	for {
		region := markup.FindRegionAt(source, opener, from)
		if region == nil {
			return nil
		}
		if !markup.HasPlaceholder(region.InnerText) {
			return region
		}
		from = region.Start + len(region.OpenTag)
	}
}
