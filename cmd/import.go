package cmd

import (
	"fmt"

	"github.com/soumzer/ferro/internal/storage"
	"github.com/soumzer/ferro/internal/utils"
	"github.com/spf13/cobra"
)

var importExCmd = &cobra.Command{
	Use:   "import-ex [file]",
	Short: "Import exercises from a TOML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		imp, err := utils.ParseExercisesFromTOML(args[0])
		if err != nil {
			return fmt.Errorf("Failed to parse exercise file: %w", err)
		}

		st := storage.NewStorage()
		count, err := st.ImportExercises(imp)
		if err != nil {
			return fmt.Errorf("Failed to import exercises: %w", err)
		}

		fmt.Printf("✅ Imported %d new exercises\n", count)
		return nil
	},
}

var importProgramCmd = &cobra.Command{
	Use:   "import-program [file]",
	Short: "Import a program session from a TOML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		program, err := utils.ParseProgramSessionFromTOML(args[0])
		if err != nil {
			return fmt.Errorf("Failed to parse program file: %w", err)
		}

		st := storage.NewStorage()
		if err := st.ImportProgramSession(program); err != nil {
			return fmt.Errorf("Failed to import program session: %w", err)
		}

		fmt.Printf("✅ Imported program session %s\n", program.Name)
		return nil
	},
}

var importRehabCmd = &cobra.Command{
	Use:   "import-rehab [file]",
	Short: "Import rehab protocols from a TOML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		imp, err := utils.ParseRehabProtocolsFromTOML(args[0])
		if err != nil {
			return fmt.Errorf("Failed to parse rehab file: %w", err)
		}

		st := storage.NewStorage()
		if err := st.ImportRehabProtocols(imp); err != nil {
			return fmt.Errorf("Failed to import rehab protocols: %w", err)
		}

		fmt.Printf("✅ Imported %d rehab protocols\n", len(imp.Protocols))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importExCmd)
	rootCmd.AddCommand(importProgramCmd)
	rootCmd.AddCommand(importRehabCmd)
}
