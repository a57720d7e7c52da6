package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var policyFile string

var rootCmd = &cobra.Command{
	Use:   "payfix",
	Short: "Repair scrambled payslip headers in converted documents",
	Long: `payfix post-processes the structured-text output of a PDF converter:
it reconstructs the personal-details header (Name, EmpNo, PAN, UAN, bank
details, ...) as an ordered key:value block and removes header rows that
bled into the first data table.

Run it on local files with 'payfix fix', or as an HTTP service with
'payfix serve'.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&policyFile, "policy", "",
		"path to a YAML tie-break policy file (defaults built in)")
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the payfix version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("payfix " + version)
	},
}

// version is overridden at build time via -ldflags.
var version = "dev"
