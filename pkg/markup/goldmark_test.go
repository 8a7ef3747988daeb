package markup_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/mdview/pkg/markup"
)

// refLink is one link or image extracted from a document.
type refLink struct {
	text string
	url  string
}

// goldmarkLinks extracts links and images from source using goldmark as a
// reference parser.
func goldmarkLinks(t *testing.T, source []byte) (links, images []refLink) {
	t.Helper()

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	err := ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := node.(type) {
		case *ast.Link:
			var linkText strings.Builder
			for child := n.FirstChild(); child != nil; child = child.NextSibling() {
				if textNode, ok := child.(*ast.Text); ok {
					linkText.Write(textNode.Segment.Value(source))
				}
			}
			links = append(links, refLink{text: linkText.String(), url: string(n.Destination)})
		case *ast.Image:
			var altText strings.Builder
			for child := n.FirstChild(); child != nil; child = child.NextSibling() {
				if textNode, ok := child.(*ast.Text); ok {
					altText.Write(textNode.Segment.Value(source))
				}
			}
			images = append(images, refLink{text: altText.String(), url: string(n.Destination)})
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walk reference AST: %v", err)
	}
	return links, images
}

// renderedLinks extracts links and images from source using the single-pass
// renderer.
func renderedLinks(source string) (links, images []refLink) {
	rec := &recorder{}
	res := markup.Render(source, rec, markup.Options{Images: &iconRecorder{}})

	for _, ev := range rec.events {
		switch ev.kind {
		case "anchor":
			links = append(links, refLink{text: ev.text, url: res.Links[ev.handle]})
		case "image":
			images = append(images, refLink{text: ev.image.Alt, url: ev.image.Source})
		}
	}
	return links, images
}

func sortRefs(refs []refLink) {
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].url != refs[j].url {
			return refs[i].url < refs[j].url
		}
		return refs[i].text < refs[j].text
	})
}

// TestLinkExtractionAgreesWithGoldmark cross-checks the permissive scanner
// against a reference CommonMark parser on plain inputs where both grammars
// coincide.
func TestLinkExtractionAgreesWithGoldmark(t *testing.T) {
	t.Parallel()

	documents := []string{
		"before [one](http://example.com/a) after",
		"two links: [a](x) then [b](y) here",
		"an image ![alt text](img.png) inline",
		"mixed [link](dest) and ![pic](photo.png) together",
		"plain paragraph with no references at all",
	}

	for _, doc := range documents {
		t.Run(doc[:20], func(t *testing.T) {
			t.Parallel()

			wantLinks, wantImages := goldmarkLinks(t, []byte(doc))
			gotLinks, gotImages := renderedLinks(doc)

			sortRefs(wantLinks)
			sortRefs(gotLinks)
			sortRefs(wantImages)
			sortRefs(gotImages)

			if len(gotLinks) != len(wantLinks) {
				t.Fatalf("link count: reference %d, renderer %d", len(wantLinks), len(gotLinks))
			}
			for i := range wantLinks {
				if gotLinks[i] != wantLinks[i] {
					t.Errorf("link %d: reference %+v, renderer %+v", i, wantLinks[i], gotLinks[i])
				}
			}
			if len(gotImages) != len(wantImages) {
				t.Fatalf("image count: reference %d, renderer %d", len(wantImages), len(gotImages))
			}
			for i := range wantImages {
				if gotImages[i] != wantImages[i] {
					t.Errorf("image %d: reference %+v, renderer %+v", i, wantImages[i], gotImages[i])
				}
			}
		})
	}
}
