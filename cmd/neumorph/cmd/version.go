package cmd

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  "Print the neumorph CLI version and build time.",
		Usage: "neumorph version",
		Run: func(args []string) error {
			printVersion()
			return nil
		},
	})
}
