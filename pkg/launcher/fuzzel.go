package launcher

// Fuzzel is used in dmenu mode.
type Fuzzel struct {
	lineLauncher
}

func NewFuzzel(args []string) *Fuzzel {
	return &Fuzzel{lineLauncher{
		name: "fuzzel",
		args: args,
		promptArgs: func(title string) []string {
			return []string{"--dmenu", "--prompt", title + "> "}
		},
	}}
}
