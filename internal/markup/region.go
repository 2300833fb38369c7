// Package markup provides low-level helpers for locating and rewriting
// regions of raw HTML without building a DOM.
package markup

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// Region is one complete, depth-balanced element found in a markup string.
// Offsets are byte offsets into the string that was searched.
type Region struct {
	FullText  string
	InnerText string
	Start     int
	End       int
	OpenTag   string
	CloseTag  string
}

var tagNameRe = regexp.MustCompile(`^<([A-Za-z][A-Za-z0-9-]*)`)

// tagPatterns caches the open/close scanner compiled for each tag name.
var tagPatterns sync.Map

func tagPattern(name string) *regexp.Regexp {
	key := strings.ToLower(name)
	if re, ok := tagPatterns.Load(key); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile(fmt.Sprintf(`(?i)<(/?)%s(?:\s[^>]*)?/?>`, regexp.QuoteMeta(key)))
	actual, _ := tagPatterns.LoadOrStore(key, re)
	return actual.(*regexp.Regexp)
}

// FindRegion returns the first element in source whose opening tag matches
// opener, extended to its depth-balanced closing tag. Nested elements of the
// same name are skipped and self-closing forms never change the depth.
// It returns nil when opener does not match or the element is never closed.
func FindRegion(source string, opener *regexp.Regexp) *Region {
	return FindRegionAt(source, opener, 0)
}

// FindRegionAt is FindRegion starting the search at byte offset from.
func FindRegionAt(source string, opener *regexp.Regexp, from int) *Region {
	if from < 0 || from >= len(source) {
		return nil
	}
	for from < len(source) {
		loc := opener.FindStringIndex(source[from:])
		if loc == nil {
			return nil
		}
		start, openEnd := from+loc[0], from+loc[1]
		if region := balance(source, start, openEnd); region != nil {
			return region
		}
		// Not an element we can close (self-closing opener or truncated
		// markup); keep looking past this opener.
		from = openEnd
		if loc[1] == 0 {
			from++
		}
	}
	return nil
}

// FindAllRegions returns every non-overlapping region matched by opener, in
// document order. Elements nested inside an earlier match are not returned.
func FindAllRegions(source string, opener *regexp.Regexp) []*Region {
	var regions []*Region
	from := 0
	for from < len(source) {
		region := FindRegionAt(source, opener, from)
		if region == nil {
			break
		}
		regions = append(regions, region)
		from = region.End
	}
	return regions
}

// RegionAt balances the element whose opening tag spans source[start:openEnd].
// It returns nil if that element is self-closing or never closed.
func RegionAt(source string, start, openEnd int) *Region {
	if start < 0 || openEnd > len(source) || start >= openEnd {
		return nil
	}
	return balance(source, start, openEnd)
}

// balance walks forward from an opening tag at source[start:openEnd],
// counting nested tags of the same name until the depth returns to zero.
func balance(source string, start, openEnd int) *Region {
	openTag := source[start:openEnd]
	m := tagNameRe.FindStringSubmatch(openTag)
	if m == nil || isSelfClosing(openTag) {
		return nil
	}

	re := tagPattern(m[1])
	depth := 1
	pos := openEnd
	for depth > 0 {
		loc := re.FindStringSubmatchIndex(source[pos:])
		if loc == nil {
			return nil
		}
		tagStart, tagEnd := pos+loc[0], pos+loc[1]
		tag := source[tagStart:tagEnd]
		closing := loc[3] > loc[2]
		pos = tagEnd

		switch {
		case closing:
			depth--
		case isSelfClosing(tag):
			// <div/> does not open anything
		default:
			depth++
		}

		if depth == 0 {
			return &Region{
				FullText:  source[start:tagEnd],
				InnerText: source[openEnd:tagStart],
				Start:     start,
				End:       tagEnd,
				OpenTag:   openTag,
				CloseTag:  tag,
			}
		}
	}
	return nil
}

func isSelfClosing(tag string) bool {
	return strings.HasSuffix(strings.TrimSpace(strings.TrimSuffix(tag, ">")), "/")
}

// Splice replaces region r inside container with replacement. The region must
// have been found in container itself.
func Splice(container string, r *Region, replacement string) string {
	return container[:r.Start] + replacement + container[r.End:]
}

// Rebuild returns the region's element with its inner markup replaced.
func (r *Region) Rebuild(inner string) string {
	return r.OpenTag + inner + r.CloseTag
}

// Opener compiles a case-insensitive pattern that matches the opening tag of
// any of the given element names.
func Opener(names ...string) *regexp.Regexp {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = regexp.QuoteMeta(n)
	}
	return regexp.MustCompile(fmt.Sprintf(`(?i)<(?:%s)\b[^>]*>`, strings.Join(quoted, "|")))
}

// OpenerWithAttr compiles a pattern matching the opening tag of one of the
// given element names whose id or class attribute contains one of keywords.
func OpenerWithAttr(names []string, keywords ...string) *regexp.Regexp {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = regexp.QuoteMeta(n)
	}
	return regexp.MustCompile(fmt.Sprintf(
		`(?i)<(?:%s)\b[^>]*\s(?:id|class)\s*=\s*["'][^"']*(?:%s)[^"']*["'][^>]*>`,
		strings.Join(quoted, "|"), strings.Join(keywords, "|"),
	))
}
