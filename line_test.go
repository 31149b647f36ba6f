package polyclip

import (
	"math"
	"testing"
)

func TestLine_InRightHalfPlane(t *testing.T) {
	// Upward line through the origin: right half-plane is x > 0.
	up := Line{Start: Pt(0, 0), End: Pt(0, 1)}

	tests := []struct {
		name string
		line Line
		p    Point
		want bool
	}{
		{"right of upward line", up, Pt(1, 0.5), true},
		{"left of upward line", up, Pt(-1, 0.5), false},
		{"on the line", up, Pt(0, 7), true},
		{"on the start point", up, Pt(0, 0), true},
		{"beyond the segment", up, Pt(2, 100), true},
		{"right of downward line", Line{Start: Pt(0, 1), End: Pt(0, 0)}, Pt(-1, 0.5), true},
		{"diagonal right side", Line{Start: Pt(0, 0), End: Pt(1, 1)}, Pt(1, 0), true},
		{"diagonal left side", Line{Start: Pt(0, 0), End: Pt(1, 1)}, Pt(0, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.line.InRightHalfPlane(tt.p); got != tt.want {
				t.Errorf("%v.InRightHalfPlane(%v) = %v, want %v", tt.line, tt.p, got, tt.want)
			}
		})
	}
}

func TestLine_Intersect(t *testing.T) {
	tests := []struct {
		name  string
		l     Line
		other Line
		wantT float64
		want  Point
	}{
		{
			"perpendicular crossing at midpoint",
			Line{Start: Pt(0, 0), End: Pt(2, 0)},
			Line{Start: Pt(1, -1), End: Pt(1, 1)},
			0.5, Pt(1, 0),
		},
		{
			"crossing beyond the segment",
			Line{Start: Pt(0, 0), End: Pt(1, 0)},
			Line{Start: Pt(3, -1), End: Pt(3, 1)},
			3, Pt(3, 0),
		},
		{
			"diagonal crossing",
			Line{Start: Pt(0, 0), End: Pt(2, 2)},
			Line{Start: Pt(0, 2), End: Pt(2, 0)},
			0.5, Pt(1, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.l.Intersect(tt.other)
			if !ok {
				t.Fatalf("%v.Intersect(%v) reported parallel lines", tt.l, tt.other)
			}
			if math.Abs(got-tt.wantT) > 1e-10 {
				t.Errorf("t = %v, want %v", got, tt.wantT)
			}
			if p := tt.l.At(got); !p.Approx(tt.want, 1e-10) {
				t.Errorf("At(t) = %v, want %v", p, tt.want)
			}
		})
	}
}

func TestLine_IntersectParallel(t *testing.T) {
	tests := []struct {
		name  string
		l     Line
		other Line
	}{
		{"parallel horizontal", Line{Start: Pt(0, 0), End: Pt(1, 0)}, Line{Start: Pt(0, 1), End: Pt(1, 1)}},
		{"coincident", Line{Start: Pt(0, 0), End: Pt(1, 1)}, Line{Start: Pt(2, 2), End: Pt(3, 3)}},
		{"degenerate other", Line{Start: Pt(0, 0), End: Pt(1, 0)}, Line{Start: Pt(5, 5), End: Pt(5, 5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := tt.l.Intersect(tt.other); ok {
				t.Errorf("%v.Intersect(%v) ok = true, want false", tt.l, tt.other)
			}
		})
	}
}

func TestEdgeVectorNormal(t *testing.T) {
	v := EdgeVector(Pt(1, 1), Pt(4, 3))
	if !v.Approx(V2(3, 2), 1e-12) {
		t.Errorf("EdgeVector = %v, want (3, 2)", v)
	}
	n := Normal(v)
	if !n.Approx(V2(-2, 3), 1e-12) {
		t.Errorf("Normal = %v, want (-2, 3)", n)
	}
	// The normal is perpendicular to the edge.
	if dot := n.Dot(v); math.Abs(dot) > 1e-12 {
		t.Errorf("Normal not perpendicular: dot = %v", dot)
	}
}
