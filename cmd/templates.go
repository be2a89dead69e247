package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hpa-sim/hpa-sim/sim"
)

// templatesCmd prints the built-in behavior templates as YAML stanzas,
// ready to copy into a --behavior file.
var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List built-in behavior templates as YAML",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range sim.TemplateNames() {
			b, err := sim.Template(name)
			if err != nil {
				logrus.Fatalf("template %s: %v", name, err)
			}
			out, err := sim.EmitBehaviorYAML(b)
			if err != nil {
				logrus.Fatalf("template %s: %v", name, err)
			}
			fmt.Printf("# %s\n%s\n", name, out)
		}
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
