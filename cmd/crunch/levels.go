package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long:  `Shows the levels found in the built-in pack or in the --levels directory.`,
	RunE:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	a, err := setup(false)
	if err != nil {
		return err
	}
	defer a.close()

	lvls, err := a.loader.LoadAll()
	if err != nil {
		return err
	}
	if len(lvls) == 0 {
		fmt.Println("No levels available.")
		return nil
	}

	fmt.Println("Available levels:")
	fmt.Println()

	maxIDLen, maxNameLen := 2, 4
	for _, l := range lvls {
		maxIDLen = max(maxIDLen, len(l.ID))
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	fmt.Printf("  %-*s  %-*s  %-5s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Size", "Tiles")
	fmt.Printf("  %-*s  %-*s  %-5s  %s\n", maxIDLen, "--", maxNameLen, "----", "----", "-----")
	for _, l := range lvls {
		size := fmt.Sprintf("%dx%d", l.Columns(), l.Rows())
		fmt.Printf("  %-*s  %-*s  %-5s  %d\n", maxIDLen, l.ID, maxNameLen, l.Name, size, l.Shape().TileCount())
	}

	fmt.Println()
	fmt.Println("Run 'crunch play <id>' to play a level.")
	return nil
}
