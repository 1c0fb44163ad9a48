package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/soumzer/ferro/internal/storage"
	"github.com/spf13/cobra"
)

var (
	conditionZone string
	conditionName string
)

var addConditionCmd = &cobra.Command{
	Use:   "add-condition",
	Short: "Register an active health condition for a body zone",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()

		if err := st.AddCondition(conditionName, conditionZone); err != nil {
			return fmt.Errorf("Failed to add condition: %w", err)
		}

		fmt.Printf("✅ Condition registered for %s\n", conditionZone)
		return nil
	},
}

var resolveConditionCmd = &cobra.Command{
	Use:   "resolve-condition [zone]",
	Short: "Mark a condition as resolved",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()

		if err := st.ResolveCondition(args[0]); err != nil {
			return fmt.Errorf("Failed to resolve condition: %w", err)
		}

		fmt.Printf("✅ Condition for %s resolved\n", args[0])
		return nil
	},
}

var listConditionsCmd = &cobra.Command{
	Use:   "list-conditions",
	Short: "List registered health conditions",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()

		conditions, err := st.GetConditions()
		if err != nil {
			return fmt.Errorf("Failed to load conditions: %w", err)
		}
		if len(conditions) == 0 {
			fmt.Println("No conditions registered")
			return nil
		}

		green := color.New(color.FgGreen).SprintFunc()
		red := color.New(color.FgRed).SprintFunc()
		for _, c := range conditions {
			status := green("resolved")
			if c.Active {
				status = red("active")
			}
			name := c.Name
			if name == "" {
				name = "-"
			}
			fmt.Printf("%s  %s (%s)\n", c.Zone, name, status)
		}
		return nil
	},
}

func init() {
	addConditionCmd.Flags().StringVarP(&conditionZone, "zone", "z", "", "Body zone, e.g. lower_back or knee_left")
	addConditionCmd.Flags().StringVarP(&conditionName, "name", "n", "", "Optional condition name")
	addConditionCmd.MarkFlagRequired("zone")

	rootCmd.AddCommand(addConditionCmd)
	rootCmd.AddCommand(resolveConditionCmd)
	rootCmd.AddCommand(listConditionsCmd)
}
