package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dasmlab/melosphere/pkg/lyric"
)

// syllablesCmd creates the syllable estimation command.
func syllablesCmd() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "syllables [line]",
		Short: "Estimate the syllable count of a line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			estimator := lyric.NewEstimator()
			fmt.Fprintln(cmd.OutOrStdout(), estimator.Estimate(args[0], lang))
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "en", "language hint (en uses the pronouncing dictionary)")

	return cmd
}
