package navmesh

import (
	"reflect"
	"testing"

	"walkpath/geometry"
)

func TestSmooth(t *testing.T) {
	pillar := mustBuild(t, pillarRoom()).Region()
	l := mustBuild(t, lRoom()).Region()

	tests := []struct {
		name   string
		region *geometry.Region
		in     Path
		want   Path
	}{
		{
			name:   "collinear points",
			region: pillar,
			in:     Path{pt(1, 1), pt(2, 2), pt(3, 3), pt(3.5, 3.5)},
			want:   Path{pt(1, 1), pt(3.5, 3.5)},
		},
		{
			name:   "needless detour",
			region: pillar,
			in:     Path{pt(1, 1), pt(1, 9), pt(3, 9)},
			want:   Path{pt(1, 1), pt(3, 9)},
		},
		{
			name:   "duplicates",
			region: pillar,
			in:     Path{pt(1, 1), pt(1, 1), pt(2, 1), pt(2, 1)},
			want:   Path{pt(1, 1), pt(2, 1)},
		},
		{
			name:   "corner is kept",
			region: pillar,
			in:     Path{pt(1, 5), pt(4, 4), pt(6, 4), pt(9, 5)},
			want:   Path{pt(1, 5), pt(4, 4), pt(6, 4), pt(9, 5)},
		},
		{
			name:   "extra vertex around the pillar",
			region: pillar,
			in:     Path{pt(1, 5), pt(2, 3), pt(4, 4), pt(6, 4), pt(9, 5)},
			want:   Path{pt(1, 5), pt(4, 4), pt(6, 4), pt(9, 5)},
		},
		{
			name:   "reflex corner",
			region: l,
			in:     Path{pt(8, 2), pt(6, 3), pt(4, 4), pt(3, 6), pt(2, 8)},
			want:   Path{pt(8, 2), pt(4, 4), pt(2, 8)},
		},
		{
			name:   "single point",
			region: pillar,
			in:     Path{pt(1, 1)},
			want:   Path{pt(1, 1)},
		},
		{
			name:   "empty",
			region: pillar,
			in:     Path{},
			want:   Path{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Smooth(tt.region, tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Smooth = %v, want %v", got, tt.want)
			}
			if again := Smooth(tt.region, got); !reflect.DeepEqual(again, got) {
				t.Errorf("second pass changed %v to %v", got, again)
			}
		})
	}
}

func TestSmoothIdempotentOnFoundPaths(t *testing.T) {
	g := mustBuild(t, officeFloor())
	queries := [][2]geometry.Point{
		{pt(1, 11), pt(19, 11)},
		{pt(3, 5), pt(16, 9)},
		{pt(10, 1), pt(1, 10)},
	}
	for _, q := range queries {
		path := mustFind(t, g, q[0], q[1])
		if again := Smooth(g.Region(), path); !reflect.DeepEqual(again, path) {
			t.Errorf("query %v: %v smoothed again to %v", q, path, again)
		}
	}
}
