package maze

// builtinLayouts defines the bundled mazes available without any maze
// directory. IDs are stable: they end up in the solve history database.
var builtinLayouts = []struct {
	id     string
	name   string
	layout []string
}{
	{
		id:   "open",
		name: "Open Field",
		layout: []string{
			"S.........",
			"..........",
			"..........",
			"..........",
			"..........",
			".........G",
		},
	},
	{
		id:   "corridor",
		name: "Corridor",
		layout: []string{
			"S....#....",
			"####.#.##.",
			"...#.#.#..",
			".#.#.#.#.#",
			".#.#...#.#",
			".#.#####.#",
			".#.......#",
			".#######.#",
			".........G",
		},
	},
	{
		id:   "spiral",
		name: "Spiral",
		layout: []string{
			"S........",
			"########.",
			".........",
			".########",
			".........",
			"########.",
			"....G....",
		},
	},
	{
		id:   "rooms",
		name: "Four Rooms",
		layout: []string{
			"S....#....",
			".....#....",
			"..........",
			".....#....",
			"##.#######",
			".....#....",
			".....#....",
			"..........",
			".....#...G",
		},
	},
	{
		id:   "island",
		name: "Walled Island",
		layout: []string{
			"S........",
			".#######.",
			".#.....#.",
			".#..G..#.",
			".#.....#.",
			".###.###.",
			".........",
		},
	},
	{
		id:   "sealed",
		name: "Sealed Vault",
		layout: []string{
			"S........",
			".########",
			".#......#",
			".#.####.#",
			".#.#G#..#",
			".#.###..#",
			".#......#",
			".########",
		},
	},
}

// Builtin returns the bundled mazes in definition order.
// Panics if a bundled layout is malformed; that is a programming error
// caught by the package tests.
func Builtin() []Maze {
	mazes := make([]Maze, 0, len(builtinLayouts))
	for _, b := range builtinLayouts {
		m, err := FromLayout(b.id, b.name, b.layout)
		if err != nil {
			panic("maze: bad bundled layout: " + err.Error())
		}
		mazes = append(mazes, m)
	}
	return mazes
}
