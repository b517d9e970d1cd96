package script

import "github.com/alecthomas/participle/v2/lexer"

// File is a parsed gesture script.
type File struct {
	Statements []*Statement `@@*`
}

// Statement is one script line.
type Statement struct {
	Pos lexer.Position

	Container  *Container  `  @@`
	Resolution *Resolution `| @@`
	Bound      *Bound      `| @@`
	Down       *Down       `| @@`
	Move       *Pointer    `| "move" @@`
	Up         *Pointer    `| "up" @@`
	Key        *Key        `| @@`
	Select     *BoxRef     `| "select" @@`
	Click      *BoxRef     `| "click" @@`
}

// Container sets the container as "w h" or "x y w h".
type Container struct {
	Values []float64 `"container" @Number+`
}

// Resolution sets the logical resolution.
type Resolution struct {
	Width  float64 `"resolution" @Number`
	Height float64 `@Number`
}

// Bound toggles clamping to the container.
type Bound struct {
	Value string `"bound" @("on" | "off" | "true" | "false")`
}

// Down presses on a box.
type Down struct {
	Box    string  `"down" @Ident`
	Kind   string  `@("drag" | "resize" | "rotate")`
	Handle string  `@Ident?`
	At     Pointer `@@`
}

// Pointer is a position with optional units.
type Pointer struct {
	X     float64 `@Number`
	Y     float64 `@Number`
	Units string  `@("px" | "norm" | "logical")?`
}

// Key presses an arrow key on a box.
type Key struct {
	Box  string   `"key" @Ident`
	Name string   `@Ident`
	Mods []string `@("shift" | "ctrl" | "release")*`
}

// BoxRef names a box.
type BoxRef struct {
	Box string `@Ident`
}
