package cloning_test

import (
	"strings"
	"testing"

	"github.com/jonathan/portfolio-generator/internal/cloning"
	"github.com/jonathan/portfolio-generator/internal/rendering"
	"github.com/jonathan/portfolio-generator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderProfile() *types.ProfileRecord {
	p := types.NewProfileRecord()
	p.Name = "Ada Lovelace"
	p.Role = "Software Engineer"
	p.Bio = "I write programs for analytical engines."
	p.Email = "ada@example.com"
	p.Skills = []string{"Go", "Python"}
	p.Projects = []types.Project{{Title: "Engine Notes", Description: "Annotated translation.", Link: "https://example.com/notes"}}
	return p
}

const cardTechPage = `<html><body>
<h1>Jane Doe</h1>
<section class="projects">
  <article class="project">
    <h3>Secret Owner Project</h3>
    <p>Private tooling for the original owner of this page.</p>
    <div class="tech"><span>React</span><span>Node</span><span>Redis</span></div>
  </article>
  <article class="project">
    <h3>Another Owner Project</h3>
    <p>More history that belongs to somebody else entirely.</p>
    <div class="tech"><span>Go</span><span>gRPC</span><span>Kafka</span></div>
  </article>
</section>
<section class="skills"><ul><li>Elixir</li><li>Haskell</li></ul></section>
</body></html>`

func TestConvert_RendersEdgeCasePages(t *testing.T) {
	tests := []struct {
		name         string
		html         string
		markupHas    []string
		markupLacks  []string
		renderedHas  []string
		orderedPairs [][2]string
	}{
		{
			name:        "title rewritten without an h1",
			html:        `<html><head><title>John Smith | Portfolio</title></head><body><span class="owner">John Smith</span></body></html>`,
			markupHas:   []string{"<title>{{name}} | Portfolio</title>"},
			markupLacks: []string{"John Smith | Portfolio"},
			renderedHas: []string{"<title>Ada Lovelace | Portfolio</title>"},
		},
		{
			name:        "literal braces in the page",
			html:        `<html><body><h1>Jane Doe</h1><div class="snippet"><code>{{#each items}}</code> and {{ user.name }}</div></body></html>`,
			markupHas:   []string{"&#123;&#123;#each items}}", "&#123;&#123; user.name }}"},
			markupLacks: []string{"{{#each items", "{{ user.name"},
			renderedHas: []string{"&#123;&#123;#each items}}", "Ada Lovelace", "<li>Python</li>"},
		},
		{
			name: "tech badges inside project cards",
			html: cardTechPage,
			markupHas: []string{
				"{{#each (split skills)}}<li>{{this}}</li>{{/each}}",
				"{{#each projects}}",
			},
			markupLacks: []string{"Secret Owner Project", "Another Owner Project", "Haskell", "pg-projects", "pg-skills"},
			renderedHas: []string{"Engine Notes", "<li>Go</li>", "<li>Python</li>"},
		},
		{
			name:         "fallback role and bio follow the page's name heading",
			html:         `<html><body><p>Welcome</p><header><h1>Jane Doe</h1></header></body></html>`,
			markupHas:    []string{`<h2 class="pg-role">{{role}}</h2>`, `<p class="pg-bio">{{bio}}</p>`},
			renderedHas:  []string{"Software Engineer", "analytical engines"},
			orderedPairs: [][2]string{{"<p>Welcome</p>", "<h1>{{name}}</h1>"}, {"<h1>{{name}}</h1>", "pg-role"}, {"pg-role", "pg-bio"}},
		},
	}

	renderer := rendering.NewRenderer(rendering.NewTemplateCache())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skeleton := cloning.ConvertHTMLToTemplate(tt.html, "https://jane.dev/")
			out := skeleton.TemplateMarkup
			assert.True(t, skeleton.DetectedSections.Complete())

			for _, want := range tt.markupHas {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.markupLacks {
				assert.NotContains(t, out, unwanted)
			}
			for _, pair := range tt.orderedPairs {
				first, second := strings.Index(out, pair[0]), strings.Index(out, pair[1])
				require.GreaterOrEqual(t, first, 0, pair[0])
				assert.Less(t, first, second, "%q should come before %q", pair[0], pair[1])
			}

			html, err := renderer.Render(rendering.TemplateSource{Name: "clone-jane-dev", Markup: out, Cloned: true}, renderProfile())
			require.NoError(t, err)
			assert.NotContains(t, html, "{{")
			for _, want := range tt.renderedHas {
				assert.Contains(t, html, want)
			}
		})
	}
}
