package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"seedhash/adapters/export"
	"seedhash/domain/core"
	"seedhash/domain/experiment"
	"seedhash/domain/seed"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "seedhash",
		Short: "Deterministic seed generation and sampling",
	}

	rootCmd.AddCommand(
		newHashCmd(),
		newGenerateCmd(),
		newSampleCmd(),
		newHierarchyCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash [input]",
		Short: "Derive the seed and digest for an input string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seedNumber, digest, err := core.DeriveSeed(args[0])
			if err != nil {
				return err
			}
			return printJSON(map[string]interface{}{
				"input": args[0],
				"seed":  seedNumber,
				"hash":  digest.String(),
			})
		},
	}
}

func newGenerateCmd() *cobra.Command {
	var count int
	var min, max int64

	cmd := &cobra.Command{
		Use:   "generate [input]",
		Short: "Generate a deterministic integer sequence from a string",
		Long: `Generate a reproducible sequence of integers seeded by the hash of
an input string. The same input, range and count always produce the
same sequence.

Example: seedhash generate experiment_1 --count 5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := seed.NewGeneratorWithRange(args[0], min, max)
			if err != nil {
				return err
			}
			values, err := gen.Generate(count)
			if err != nil {
				return err
			}
			return printJSON(map[string]interface{}{
				"input":  args[0],
				"seed":   gen.Seed(),
				"hash":   gen.Hash(),
				"values": values,
			})
		},
	}

	cmd.Flags().IntVar(&count, "count", 5, "Number of values to generate")
	cmd.Flags().Int64Var(&min, "min", core.DefaultMin, "Minimum value (inclusive)")
	cmd.Flags().Int64Var(&max, "max", core.DefaultMax, "Maximum value (inclusive)")

	return cmd
}

func newSampleCmd() *cobra.Command {
	var method string
	var nSamples, nStrata, nClusters, perCluster int
	var min, max int64

	cmd := &cobra.Command{
		Use:   "sample [master-seed]",
		Short: "Sample a seed set from a master seed",
		Long: `Sample seeds from a master seed using one of the four sampling
disciplines: simple, stratified, cluster or systematic.

Example: seedhash sample 123456789 --method stratified --n 20 --strata 4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			masterSeed, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid master seed %q: %w", args[0], err)
			}

			m, err := seed.ParseMethod(method)
			if err != nil {
				return err
			}

			sampler := seed.NewSampler(masterSeed)
			seeds, err := sampler.Sample(m, nSamples, core.Range{Min: min, Max: max}, seed.SampleParams{
				NStrata:           nStrata,
				NClusters:         nClusters,
				SamplesPerCluster: perCluster,
			})
			if err != nil {
				return err
			}

			return printJSON(map[string]interface{}{
				"master_seed": masterSeed,
				"method":      m,
				"seeds":       seeds,
			})
		},
	}

	cmd.Flags().StringVar(&method, "method", "simple", "Sampling method (simple|stratified|cluster|systematic)")
	cmd.Flags().IntVar(&nSamples, "n", 10, "Number of seeds to sample")
	cmd.Flags().IntVar(&nStrata, "strata", 0, "Number of strata (stratified)")
	cmd.Flags().IntVar(&nClusters, "clusters", 0, "Number of clusters (cluster)")
	cmd.Flags().IntVar(&perCluster, "per-cluster", 0, "Samples per cluster (cluster)")
	cmd.Flags().Int64Var(&min, "min", core.DefaultMin, "Minimum value (inclusive)")
	cmd.Flags().Int64Var(&max, "max", core.DefaultMax, "Maximum value (inclusive)")

	return cmd
}

func newHierarchyCmd() *cobra.Command {
	var nSeeds, nSubSeeds, maxDepth int
	var method, exportPath, format string

	cmd := &cobra.Command{
		Use:   "hierarchy [name]",
		Short: "Generate a hierarchical seed tree for an experiment",
		Long: `Build a master -> seeds -> sub-seeds hierarchy from an experiment
name. The master seed is derived from the name, so the whole tree is
reproducible.

Example: seedhash hierarchy project_alpha --seeds 10 --sub-seeds 5 --method stratified`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := experiment.NewManager(args[0])
			if err != nil {
				return err
			}

			m, err := seed.ParseMethod(method)
			if err != nil {
				return err
			}

			hierarchy, err := manager.GenerateHierarchy(experiment.HierarchyConfig{
				NSeeds:    nSeeds,
				NSubSeeds: nSubSeeds,
				MaxDepth:  maxDepth,
				Method:    m,
			})
			if err != nil {
				return err
			}

			if exportPath != "" {
				f, err := export.ParseFormat(format)
				if err != nil {
					return err
				}
				if err := export.WriteFile(manager.ResultsTable(), exportPath, f); err != nil {
					return err
				}
			}

			return printJSON(map[string]interface{}{
				"name":        args[0],
				"master_seed": manager.MasterSeed(),
				"hierarchy":   hierarchy,
			})
		},
	}

	cmd.Flags().IntVar(&nSeeds, "seeds", 10, "Seeds generated from the master seed")
	cmd.Flags().IntVar(&nSubSeeds, "sub-seeds", 5, "Sub-seeds generated per seed")
	cmd.Flags().IntVar(&maxDepth, "depth", 2, "Hierarchy depth (1=seeds, 2=sub-seeds)")
	cmd.Flags().StringVar(&method, "method", "simple", "Sampling method (simple|stratified|cluster|systematic)")
	cmd.Flags().StringVar(&exportPath, "export", "", "Optional path to export the results table")
	cmd.Flags().StringVar(&format, "format", "csv", "Export format (csv|json|excel)")

	return cmd
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
