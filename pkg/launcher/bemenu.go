package launcher

type Bemenu struct {
	lineLauncher
}

func NewBemenu(args []string) *Bemenu {
	return &Bemenu{lineLauncher{
		name: "bemenu",
		args: args,
		promptArgs: func(title string) []string {
			return []string{"-p", title}
		},
	}}
}
