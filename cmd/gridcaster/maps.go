package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"chosenoffset.com/gridcaster/internal/gamescanner"
)

var flagMapsDir string

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	nameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	invalidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "List map files",
	Long:  `Scans a directory for JSON map files and shows which ones load.`,
	Args:  cobra.NoArgs,
	RunE:  runMaps,
}

func init() {
	mapsCmd.Flags().StringVar(&flagMapsDir, "dir", "data/maps", "Directory to scan")
}

func runMaps(cmd *cobra.Command, args []string) error {
	maps, err := gamescanner.ScanMapsDirectory(flagMapsDir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(maps) == 0 {
		fmt.Fprintln(out, "No maps found in", flagMapsDir)
		return nil
	}

	maxName := len("Name")
	for _, m := range maps {
		maxName = max(maxName, len(m.Name))
	}
	nameCol := lipgloss.NewStyle().Width(maxName + 2)
	sizeCol := lipgloss.NewStyle().Width(9)

	fmt.Fprintln(out, headerStyle.Render(nameCol.Render("Name")+sizeCol.Render("Size")+"Path"))
	for _, m := range maps {
		if !m.Valid() {
			fmt.Fprintln(out, invalidStyle.Render(nameCol.Render(m.Name)+sizeCol.Render("-")+m.Path))
			fmt.Fprintln(out, dimStyle.Render("  "+m.Err.Error()))
			continue
		}
		size := fmt.Sprintf("%dx%d", m.Width, m.Height)
		fmt.Fprintln(out, nameStyle.Render(nameCol.Render(m.Name))+sizeCol.Render(size)+dimStyle.Render(m.Path))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'gridcaster play --map <path>' to walk a map.")
	return nil
}
