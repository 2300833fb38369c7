package markup

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindRegion_NestedSameName(t *testing.T) {
	src := `<div class="about"><div>nested</div>real bio text here</div>`

	region := FindRegion(src, OpenerWithAttr([]string{"div"}, "about"))
	require.NotNil(t, region)

	assert.Contains(t, region.InnerText, "<div>nested</div>")
	assert.Contains(t, region.InnerText, "real bio text here")
	assert.Equal(t, len(src), region.End)
	assert.Equal(t, 0, region.Start)
	assert.Equal(t, `<div class="about">`, region.OpenTag)
	assert.Equal(t, `</div>`, region.CloseTag)
	assert.Equal(t, src, region.FullText)
}

func TestFindRegion_SelfClosingDoesNotChangeDepth(t *testing.T) {
	src := `<div id="a"><div/>text<div class="x" /></div><p>after</p>`

	region := FindRegion(src, regexp.MustCompile(`<div id="a">`))
	require.NotNil(t, region)
	assert.Equal(t, `<div/>text<div class="x" />`, region.InnerText)
	assert.Equal(t, strings.Index(src, "<p>"), region.End)
}

func TestFindRegion_CaseInsensitiveTags(t *testing.T) {
	src := `<SECTION id="skills"><section>inner</section></Section> tail`

	region := FindRegion(src, Opener("section"))
	require.NotNil(t, region)
	assert.Equal(t, `<section>inner</section>`, region.InnerText)
	assert.Equal(t, `</Section>`, region.CloseTag)
}

func TestFindRegion_NotFound(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "no opener", src: `<p>hello</p>`},
		{name: "truncated", src: `<div class="about"><div>nested</div>never closed`},
		{name: "empty", src: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, FindRegion(tt.src, OpenerWithAttr([]string{"div"}, "about")))
		})
	}
}

func TestFindRegion_DoesNotMatchLongerTagNames(t *testing.T) {
	src := `<p>one<path d="x"></path><pre>code</pre></p>`

	region := FindRegion(src, Opener("p"))
	require.NotNil(t, region)
	assert.Equal(t, src, region.FullText)
}

func TestFindAllRegions_Siblings(t *testing.T) {
	src := `<ul><li>A<ul><li>A1</li></ul></li><li>B</li><li>C</li></ul>`

	list := FindRegion(src, Opener("ul"))
	require.NotNil(t, list)

	items := FindAllRegions(list.InnerText, Opener("li"))
	require.Len(t, items, 3)
	assert.Equal(t, `A<ul><li>A1</li></ul>`, items[0].InnerText)
	assert.Equal(t, `B`, items[1].InnerText)
	assert.Equal(t, `C`, items[2].InnerText)
}

func TestSpliceAndRebuild(t *testing.T) {
	src := `before<h1 class="t">Jane <b>Doe</b></h1>after`

	region := FindRegion(src, Opener("h1"))
	require.NotNil(t, region)

	out := Splice(src, region, region.Rebuild("{{name}}"))
	assert.Equal(t, `before<h1 class="t">{{name}}</h1>after`, out)
}

func TestOpenerWithAttr_MatchesIDOrClass(t *testing.T) {
	opener := OpenerWithAttr([]string{"section", "div"}, "skill", "tech")

	assert.True(t, opener.MatchString(`<section id="skills">`))
	assert.True(t, opener.MatchString(`<div data-x="1" class="tech-stack grid">`))
	assert.False(t, opener.MatchString(`<div class="hero">`))
	assert.False(t, opener.MatchString(`<article class="skills">`))
}

func TestStripTags(t *testing.T) {
	assert.Equal(t, "Jane Doe", StripTags("  <span>Jane</span>\n  <b>Doe</b> "))
	assert.Equal(t, "Tom & Jerry", StripTags("Tom &amp; Jerry"))
	assert.Equal(t, "plain text", StripTags("plain   text"))
	assert.Equal(t, 8, TextLen("<i>Jane Doe</i>"))
}

func TestRegionAt(t *testing.T) {
	src := `<h2>one</h2><p class="role">two <b>x</b></p>`
	start := strings.Index(src, "<p")
	openEnd := start + len(`<p class="role">`)

	region := RegionAt(src, start, openEnd)
	require.NotNil(t, region)
	assert.Equal(t, "two <b>x</b>", region.InnerText)
	assert.Equal(t, len(src), region.End)

	assert.Nil(t, RegionAt(src, 5, 2))
	assert.Nil(t, RegionAt(`<br/>`, 0, 5))
}
