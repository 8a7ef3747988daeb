package markup

import "testing"

func TestFindEmphasisStart(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     string
		from    int
		ok      bool
		start   int
		end     int
		n       int
	}{
		{"simple italic", "*word*", 0, true, 0, 1, 1},
		{"simple bold", "**word**", 0, true, 0, 2, 2},
		{"bold italic", "***word***", 0, true, 0, 3, 3},
		{"escaped star", `\*word`, 0, false, 0, 0, 0},
		{"followed by space", "* word", 0, false, 0, 0, 0},
		{"long run backtracks", "****x", 0, true, 1, 4, 3},
		{"run at end of text", "word **", 0, true, 5, 7, 2},
		{"search offset", "*a* *b*", 1, true, 4, 5, 1},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			m, ok := findEmphasisStart(testCase.src, testCase.from)
			if ok != testCase.ok {
				t.Fatalf("expected ok=%v, got %v", testCase.ok, ok)
			}
			if !ok {
				return
			}
			if m.start != testCase.start || m.end != testCase.end || m.n != testCase.n {
				t.Errorf("expected (%d,%d,n=%d), got (%d,%d,n=%d)",
					testCase.start, testCase.end, testCase.n, m.start, m.end, m.n)
			}
		})
	}
}

func TestFindEmphasisEnd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   string
		from  int
		ok    bool
		start int
		n     int
	}{
		{"after word", "bold** rest", 0, true, 4, 2},
		{"preceded by space", "bold ** rest", 0, false, 0, 0},
		{"escaped", `bold\*`, 0, false, 0, 0},
		{"run capped at three", "bold****", 0, true, 4, 3},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			m, ok := findEmphasisEnd(testCase.src, testCase.from)
			if ok != testCase.ok {
				t.Fatalf("expected ok=%v, got %v", testCase.ok, ok)
			}
			if ok && (m.start != testCase.start || m.n != testCase.n) {
				t.Errorf("expected start=%d n=%d, got start=%d n=%d",
					testCase.start, testCase.n, m.start, m.n)
			}
		})
	}
}

func TestFindHeaderStart(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   string
		from  int
		ok    bool
		start int
		end   int
		n     int
	}{
		{"h1 at origin", "# Title", 0, true, 0, 2, 1},
		{"h3 with indent", "  ### T", 0, true, 0, 6, 3},
		{"four space indent rejected", "    # T", 0, false, 0, 0, 0},
		{"seven hashes rejected", "####### T", 0, false, 0, 0, 0},
		{"no trailing space", "#Title", 0, false, 0, 0, 0},
		{"second line", "text\n## T", 0, true, 5, 8, 2},
		{"mid line start skipped", "x # not\n# yes", 1, true, 8, 10, 1},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			m, ok := findHeaderStart(testCase.src, testCase.from)
			if ok != testCase.ok {
				t.Fatalf("expected ok=%v, got %v (match %+v)", testCase.ok, ok, m)
			}
			if ok && (m.start != testCase.start || m.end != testCase.end || m.n != testCase.n) {
				t.Errorf("expected (%d,%d,n=%d), got (%d,%d,n=%d)",
					testCase.start, testCase.end, testCase.n, m.start, m.end, m.n)
			}
		})
	}
}

func TestFindListItems(t *testing.T) {
	t.Parallel()

	t.Run("bullet captures indent", func(t *testing.T) {
		t.Parallel()

		m, ok := findBulletItem("   * item", 0)
		if !ok {
			t.Fatal("expected match")
		}
		if m.start != 0 || m.end != 5 || m.n != 3 {
			t.Errorf("got (%d,%d,n=%d)", m.start, m.end, m.n)
		}
	})

	t.Run("bullet requires space after star", func(t *testing.T) {
		t.Parallel()

		if _, ok := findBulletItem("*item", 0); ok {
			t.Error("expected no match without trailing space")
		}
	})

	t.Run("numeric captures indent", func(t *testing.T) {
		t.Parallel()

		m, ok := findNumericItem("  12. item", 0)
		if !ok {
			t.Fatal("expected match")
		}
		if m.start != 0 || m.end != 6 || m.n != 2 {
			t.Errorf("got (%d,%d,n=%d)", m.start, m.end, m.n)
		}
	})

	t.Run("numeric requires dot and space", func(t *testing.T) {
		t.Parallel()

		if _, ok := findNumericItem("12) item", 0); ok {
			t.Error("expected no match for paren style")
		}
	})
}

func TestFindImage(t *testing.T) {
	t.Parallel()

	m, ok := findImage("see ![logo](icon:home) here", 0)
	if !ok {
		t.Fatal("expected match")
	}
	if m.start != 4 || m.text != "logo" || m.url != "icon:home" {
		t.Errorf("got start=%d text=%q url=%q", m.start, m.text, m.url)
	}

	if _, ok := findImage(`\![x](y)`, 0); ok {
		t.Error("escaped image should not match")
	}
	if _, ok := findImage("![x](unterminated", 0); ok {
		t.Error("unterminated image should not match")
	}
}

func TestFindLink(t *testing.T) {
	t.Parallel()

	m, ok := findLink("see [docs](Guide) here", 0)
	if !ok {
		t.Fatal("expected match")
	}
	if m.start != 4 || m.end != 17 || m.text != "docs" || m.url != "Guide" {
		t.Errorf("got start=%d end=%d text=%q url=%q", m.start, m.end, m.text, m.url)
	}

	// The bracket of an image reference is not a link.
	m, ok = findLink("![alt](img.png) [x](y)", 0)
	if !ok || m.start != 16 {
		t.Errorf("expected link at 16, got %+v ok=%v", m, ok)
	}

	if _, ok := findLink(`\[x](y)`, 0); ok {
		t.Error("escaped link should not match")
	}
}

func TestScannerMemoization(t *testing.T) {
	t.Parallel()

	// Two links: after the first is consumed, only the link finder should
	// need a re-scan and it must report the second occurrence.
	sc := newScanner("[a](b) [c](d)")
	id, m, ok := sc.selectNext(false, false)
	if !ok || id != matchLink || m.start != 0 {
		t.Fatalf("first selection: id=%d m=%+v ok=%v", id, m, ok)
	}
	sc.advance(m.end)
	id, m, ok = sc.selectNext(false, false)
	if !ok || id != matchLink || m.start != 7 {
		t.Fatalf("second selection: id=%d m=%+v ok=%v", id, m, ok)
	}
	sc.advance(m.end)
	if _, _, ok := sc.selectNext(false, false); ok {
		t.Error("expected exhausted scanner")
	}
}

func TestScannerTieBreaksByDeclarationOrder(t *testing.T) {
	t.Parallel()

	// At end of text a closing star run satisfies both the emphasis start
	// and emphasis end patterns at the same offset; start wins.
	sc := newScanner("x**")
	id, m, ok := sc.selectNext(true, false)
	if !ok {
		t.Fatal("expected a match")
	}
	if id != matchEmphasisStart || m.start != 1 {
		t.Errorf("expected emphasis start at 1, got id=%d start=%d", id, m.start)
	}
}
