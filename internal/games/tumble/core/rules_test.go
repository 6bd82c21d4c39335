package core

import "testing"

func landOn(t *testing.T, overrides map[Cell]Tile, e Extent, c Vec3) Landing {
	t.Helper()
	g, err := NewGrid(0, floorLayout(overrides))
	if err != nil {
		t.Fatal(err)
	}
	return Evaluate(g, e, c)
}

var (
	lyingRight = Extent{X: Long, Up: Short, Z: Short}
	// lying across (6,5) and (7,5)
	lyingRightCenter = Vec3{X: 0.75, Y: -0.25}
	// standing on (5,5)
	spawnCenter = Vec3{}
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[Cell]Tile
		extent    Extent
		center    Vec3
		outcome   Outcome
		toggle    bool
	}{
		{"floor standing", nil, StandingExtent, spawnCenter, Playing, false},
		{"floor lying", nil, lyingRight, lyingRightCenter, Playing, false},
		{"void standing", map[Cell]Tile{{5, 5}: TileVoid}, StandingExtent, spawnCenter, Lost, false},
		{"half on void", map[Cell]Tile{{7, 5}: TileVoid}, lyingRight, lyingRightCenter, Lost, false},
		{"off board", nil, StandingExtent, Vec3{X: 3}, Lost, false},
		{"standing on fragile", map[Cell]Tile{{5, 5}: TileFragile}, StandingExtent, spawnCenter, Lost, false},
		{"one fragile half", map[Cell]Tile{{6, 5}: TileFragile}, lyingRight, lyingRightCenter, Lost, false},
		{"both halves fragile", map[Cell]Tile{{6, 5}: TileFragile, {7, 5}: TileFragile}, lyingRight, lyingRightCenter, Playing, false},
		{"standing on goal", map[Cell]Tile{{5, 5}: TileGoal}, StandingExtent, spawnCenter, LevelCleared, false},
		{"lying on goal", map[Cell]Tile{{6, 5}: TileGoal}, lyingRight, lyingRightCenter, Playing, false},
		{"standing on switch", map[Cell]Tile{{5, 5}: TileSwitch}, StandingExtent, spawnCenter, Playing, true},
		{"half on switch", map[Cell]Tile{{7, 5}: TileSwitch}, lyingRight, lyingRightCenter, Playing, true},
		{"both halves switch", map[Cell]Tile{{6, 5}: TileSwitch, {7, 5}: TileSwitch}, lyingRight, lyingRightCenter, Playing, true},
		{"bridge", map[Cell]Tile{{5, 5}: TileBridge}, StandingExtent, spawnCenter, Playing, false},
		{"void beats switch", map[Cell]Tile{{6, 5}: TileSwitch, {7, 5}: TileVoid}, lyingRight, lyingRightCenter, Lost, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := landOn(t, tc.overrides, tc.extent, tc.center)
			if l.Outcome != tc.outcome {
				t.Errorf("outcome = %s, want %s", l.Outcome, tc.outcome)
			}
			if l.Toggle != tc.toggle {
				t.Errorf("toggle = %v, want %v", l.Toggle, tc.toggle)
			}
			if len(l.Cells) != len(l.Tiles) {
				t.Errorf("cells %v and tiles %v differ in length", l.Cells, l.Tiles)
			}
		})
	}
}

func TestFootprint(t *testing.T) {
	tests := []struct {
		name   string
		extent Extent
		center Vec3
		want   []Cell
	}{
		{"standing", StandingExtent, Vec3{}, []Cell{{5, 5}}},
		{"lying x", lyingRight, lyingRightCenter, []Cell{{7, 5}, {6, 5}}},
		{"lying z", Extent{X: Short, Up: Short, Z: Long}, Vec3{Z: -0.75}, []Cell{{5, 6}, {5, 7}}},
	}
	for _, tc := range tests {
		got := Footprint(tc.extent, tc.center)
		if len(got) != len(tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
			}
		}
	}
}

func TestOutcomeTerminal(t *testing.T) {
	for o, want := range map[Outcome]bool{Playing: false, LevelCleared: false, Lost: true, Won: true} {
		if o.Terminal() != want {
			t.Errorf("%s.Terminal() = %v", o, o.Terminal())
		}
	}
}
