package cloning

import (
	"regexp"
	"strings"

	"github.com/jonathan/portfolio-generator/internal/markup"
	"github.com/jonathan/portfolio-generator/internal/types"
)

var (
	bodyOpenRe  = regexp.MustCompile(`(?i)<body\b[^>]*>`)
	bodyCloseRe = regexp.MustCompile(`(?i)</body\s*>`)
)

const heroBlock = `
<header class="pg-hero">
  <h1>` + PlaceholderName + `</h1>
  <h2>` + PlaceholderRole + `</h2>
  <p>` + PlaceholderBio + `</p>
</header>
`

var leadBlocks = map[string]string{
	types.SectionName: "\n<h1 class=\"pg-name\">" + PlaceholderName + "</h1>\n",
	types.SectionRole: "\n<h2 class=\"pg-role\">" + PlaceholderRole + "</h2>\n",
	types.SectionBio:  "\n<p class=\"pg-bio\">" + PlaceholderBio + "</p>\n",
}

var trailingBlocks = map[string]string{
	types.SectionSkills: `
<section class="pg-skills">
  <h2>Skills</h2>
  <ul>` + SkillsLoopOpen + `<li>` + SkillItem + `</li>` + LoopClose + `</ul>
</section>
`,
	types.SectionProjects: `
<section class="pg-projects">
  <h2>Projects</h2>
  ` + ProjectsLoopOpen + `
  <article>
    <h3><a href="` + ProjectLink + `">` + ProjectTitle + `</a></h3>
    <p>` + ProjectDescription + `</p>
  </article>
  ` + LoopClose + `
</section>
`,
	types.SectionEmail: `
<section class="pg-contact">
  <a href="mailto:` + PlaceholderEmail + `">` + PlaceholderEmail + `</a>
</section>
`,
	types.SectionSocial: `
<nav class="pg-social">
  <a href="` + PlaceholderGitHubURL + `">GitHub</a>
  <a href="` + PlaceholderLinkedInURL + `">LinkedIn</a>
</nav>
`,
}

// injectMissingSections adds a minimal block for every section no earlier
// stage found, so every profile field has a place in the output. A page with
// no identity content at all gets a single hero block.
func (c *converter) injectMissingSections() {
	nameOnPage := c.detected[types.SectionName]

	var lead strings.Builder
	if !c.detected[types.SectionName] && !c.detected[types.SectionRole] && !c.detected[types.SectionBio] {
		lead.WriteString(heroBlock)
		c.detected[types.SectionName] = true
		c.detected[types.SectionRole] = true
		c.detected[types.SectionBio] = true
	}
	for _, section := range []string{types.SectionName, types.SectionRole, types.SectionBio} {
		if !c.detected[section] {
			lead.WriteString(leadBlocks[section])
			c.detected[section] = true
		}
	}

	var trailing strings.Builder
	for _, section := range []string{types.SectionSkills, types.SectionProjects, types.SectionEmail, types.SectionSocial} {
		if !c.detected[section] {
			trailing.WriteString(trailingBlocks[section])
			c.detected[section] = true
		}
	}

	if lead.Len() > 0 {
		if at := c.nameHeadingEnd(); nameOnPage && at >= 0 {
			c.html = c.html[:at] + lead.String() + c.html[at:]
		} else if loc := bodyOpenRe.FindStringIndex(c.html); loc != nil {
			c.html = c.html[:loc[1]] + lead.String() + c.html[loc[1]:]
		} else {
			c.html = lead.String() + c.html
		}
	}
	if trailing.Len() > 0 {
		if loc := bodyCloseRe.FindStringIndex(c.html); loc != nil {
			c.html = c.html[:loc[0]] + trailing.String() + c.html[loc[0]:]
		} else {
			c.html += trailing.String()
		}
	}
}

// nameHeadingEnd returns the offset just past the h1 that holds the name
// placeholder, or -1.
func (c *converter) nameHeadingEnd() int {
	for _, r := range markup.FindAllRegions(c.html, h1Opener) {
		if strings.TrimSpace(r.InnerText) == PlaceholderName {
			return r.End
		}
	}
	return -1
}

var fallbackMarkers = map[string][]string{
	types.SectionName:     {`class="pg-hero"`, `class="pg-name"`},
	types.SectionRole:     {`class="pg-hero"`, `class="pg-role"`},
	types.SectionBio:      {`class="pg-hero"`, `class="pg-bio"`},
	types.SectionSkills:   {`class="pg-skills"`},
	types.SectionProjects: {`class="pg-projects"`},
	types.SectionEmail:    {`class="pg-contact"`},
	types.SectionSocial:   {`class="pg-social"`},
}

// InjectedSections lists, in types.AllSections order, the sections of a
// template that were filled by a fallback block rather than found in the page.
func InjectedSections(markup string) []string {
	var injected []string
	for _, section := range types.AllSections {
		for _, marker := range fallbackMarkers[section] {
			if strings.Contains(markup, marker) {
				injected = append(injected, section)
				break
			}
		}
	}
	return injected
}
