package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/optigon/stoneflow/dataset"
	"github.com/optigon/stoneflow/solver"
)

func newRaceCmd() *cobra.Command {
	var (
		file    string
		maxIter int
	)

	cmd := &cobra.Command{
		Use:   "race",
		Short: "Time VAM vs RAM (seeding and refinement) on one instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := dataset.LoadProblem(file)
			if err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{
				"file": file,
				"rows": p.Rows(),
				"cols": p.Cols(),
			}).Info("racing heuristics")

			opts := solver.DefaultOptions()
			opts.MaxIterations = maxIter
			res, err := solver.Race(p, opts)
			if err != nil {
				return err
			}

			printTiming(cmd, res.Vogel)
			printTiming(cmd, res.Russell)
			fmt.Fprintf(cmd.OutOrStdout(), "certified optimal cost: %.2f\n", res.Vogel.OptimalCost)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "instance file (.json/.yaml/.msgpack)")
	cmd.Flags().IntVar(&maxIter, "max-iterations", 0, "refinement iteration cap (0 = 10·(n+m))")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func printTiming(cmd *cobra.Command, t solver.Timing) {
	fmt.Fprintf(cmd.OutOrStdout(),
		"%-4s seed %12v (cost %.2f)  refine %12v (%d iters)  total %12v\n",
		t.Method.String(), t.SeedTime, t.SeedCost, t.RefineTime, t.Iterations, t.Total())
}
