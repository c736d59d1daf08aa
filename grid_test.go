package planar

import "testing"

func TestMaxGridPrecisionExample(t *testing.T) {
	// 8 world units across 800 px ⇒ 100 px/unit ⇒ finest legible spacing 0.1.
	if got := MaxGridPrecision(testMapping()); got != 1 {
		t.Fatalf("MaxGridPrecision = %d, want 1", got)
	}
}

func TestMaxGridPrecisionMonotonic(t *testing.T) {
	vp := ScreenViewport{Width: 800, Height: 600}
	prev := MinPrecisionLevel - 1
	// Window width shrinks by 10× each step, so pixels-per-unit only grows.
	// The sweep crosses the double-range boundary near 10^-306 and the
	// MaxPrecisionLevel clamp near 10^-998.
	for p := -3; p <= 1050; p++ {
		half := NewInt(5).Mul(NewInt(10).PowInt(-p - 1)) // window width 10^-p
		w := NewWorldWindow(Pt(half.Neg(), half.Neg()), Pt(half, half))
		got := MaxGridPrecision(NewCoordinateMapping(vp, w, 0))
		if got < prev {
			t.Fatalf("MaxGridPrecision decreased to %d after %d at width 10^%d", got, prev, -p)
		}
		prev = got
	}
}

func TestMaxGridPrecisionClamps(t *testing.T) {
	vp := ScreenViewport{Width: 800, Height: 600}
	tests := []struct {
		name  string
		width string
		want  int
	}{
		{"astronomically deep", "1e-1500", MaxPrecisionLevel},
		{"astronomically wide", "1e400", MinPrecisionLevel},
		// Past double range but short of the clamp: the level keeps
		// tracking the true ratio exponent. 800 px over 1e-400 gives
		// 8e402 px/unit, so spacing 10^-402 is the finest legible one.
		{"beyond double range", "1e-400", 402},
		{"just under the clamp", "1e-995", 997},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			half, _ := MustParse(tt.width).Div(NewInt(2))
			w := NewWorldWindow(Pt(half.Neg(), half.Neg()), Pt(half, half))
			if got := MaxGridPrecision(NewCoordinateMapping(vp, w, 0)); got != tt.want {
				t.Errorf("MaxGridPrecision(width %s) = %d, want %d", tt.width, got, tt.want)
			}
		})
	}
}

func TestGridLinesExample(t *testing.T) {
	m := testMapping() // X range [-4,4] over 800 px, maxPrecision 1
	maxP := MaxGridPrecision(m)
	lines := GridLinesForAxis(m.X, maxP)

	bound := NewInt(4)
	var fine, coarse, labeled int
	for _, l := range lines {
		if !l.Position.IsWithinInterval(m.X.MinWorld, m.X.MaxWorld) {
			t.Fatalf("line %s escapes the window", l.Position.Text())
		}
		if l.Position.Abs().Gte(bound) && l.Position.Abs().Cmp(bound) != 0 {
			t.Fatalf("line at |%s| > 4", l.Position.Text())
		}
		switch l.PrecisionLevel {
		case 1:
			fine++
			if l.Thickness != 1 || l.Labeled {
				t.Fatalf("precision-1 line: thickness %d labeled %v, want 1/unlabeled", l.Thickness, l.Labeled)
			}
		case 0:
			coarse++
			if l.Thickness != 2 || !l.Labeled {
				t.Fatalf("precision-0 line: thickness %d labeled %v, want 2/labeled", l.Thickness, l.Labeled)
			}
		default:
			t.Fatalf("unexpected precision level %d", l.PrecisionLevel)
		}
		if l.Labeled {
			labeled++
		}
	}
	if fine != 81 { // -4.0, -3.9, ..., 4.0
		t.Errorf("fine line count = %d, want 81", fine)
	}
	if coarse != 9 { // -4 .. 4
		t.Errorf("coarse line count = %d, want 9", coarse)
	}
	if labeled != coarse {
		t.Errorf("labeled %d of %d coarse lines", labeled, coarse)
	}
	// Thinnest level first so later (thicker) lines paint over earlier ones.
	if lines[0].PrecisionLevel != 1 || lines[len(lines)-1].PrecisionLevel != 0 {
		t.Error("grid lines not emitted finest level first")
	}
}

func TestGridLinesAtMostThreeLevels(t *testing.T) {
	m := testMapping()
	for maxP := 0; maxP < 12; maxP++ {
		lines := GridLinesForAxis(m.X, maxP)
		levels := map[int]bool{}
		for _, l := range lines {
			levels[l.PrecisionLevel] = true
			if l.Thickness < 1 || l.Thickness > 3 {
				t.Fatalf("thickness %d out of range", l.Thickness)
			}
		}
		if len(levels) > 3 {
			t.Fatalf("maxPrecision %d produced %d levels", maxP, len(levels))
		}
	}
}

func TestGridLinesNoneWhenTooSparse(t *testing.T) {
	// maxPrecision -1 means even whole-unit lines would be illegibly dense.
	if lines := GridLinesForAxis(testMapping().X, -1); len(lines) != 0 {
		t.Errorf("got %d lines at maxPrecision -1, want none", len(lines))
	}
}

func TestGridLinesBoundedAtDepth(t *testing.T) {
	// The per-level line count stays bounded by what the screen can
	// separate at any depth, including windows so narrow the
	// pixels-per-unit ratio no longer fits in a double.
	vp := ScreenViewport{Width: 800, Height: 800}
	limit := int(vp.Width/MinLineSeparation) + 2
	for _, width := range []string{"1e-300", "1e-400", "1e-990"} {
		t.Run(width, func(t *testing.T) {
			half, _ := MustParse(width).Div(NewInt(2))
			w := NewWorldWindow(Pt(half.Neg(), half.Neg()), Pt(half, half))
			m := NewCoordinateMapping(vp, w, 0)

			maxP := MaxGridPrecision(m)
			perLevel := map[int]int{}
			for _, l := range GridLinesForAxis(m.X, maxP) {
				perLevel[l.PrecisionLevel]++
			}
			if len(perLevel) == 0 {
				t.Fatal("expected grid lines at this depth")
			}
			for level, n := range perLevel {
				if n > limit {
					t.Errorf("level %d has %d lines, limit %d", level, n, limit)
				}
			}
		})
	}
}

func TestGridLinesBothAxes(t *testing.T) {
	vertical, horizontal := GridLines(testMapping())
	if len(vertical) == 0 || len(horizontal) == 0 {
		t.Fatal("expected lines on both axes")
	}
	// The Y window is [-3,3]: shared X-derived precision, tighter bounds.
	for _, l := range horizontal {
		if !l.Position.IsWithinInterval(MustParse("-3"), MustParse("3")) {
			t.Fatalf("horizontal line %s escapes [-3,3]", l.Position.Text())
		}
	}
}
