// Package main renders a resume to text, HTML or PNG from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "renderdemo",
	Short: "Render a resume without the web builder",
	Long:  "Renders a resume JSON file (or a built-in sample) as plain text, a standalone HTML page, or a PNG image.",
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
