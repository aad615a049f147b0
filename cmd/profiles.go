package cmd

import (
	"fmt"

	"dbapi-compare/core/config"

	"github.com/spf13/cobra"
)

// profilesCmd lists the configured comparison profiles.
var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the configured comparison profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := config.LoadProfiles(".")
		if err != nil {
			return fmt.Errorf("failed to load profiles: %w", err)
		}

		names := profiles.Names()
		if len(names) == 0 {
			fmt.Println("No profiles configured. Add a profiles.yaml next to the binary.")
			return nil
		}
		for _, name := range names {
			prof, err := profiles.Get(name)
			if err != nil {
				return err
			}
			fmt.Printf("%s\t(api: %s/%s, join: %s)\n", name, prof.API.BaseKey, prof.API.Resource, prof.Join.How)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(profilesCmd)
}
