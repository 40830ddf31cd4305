package main

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/spf13/cobra"

	"github.com/born-ml/extension/internal/envconfig"
	"github.com/born-ml/extension/internal/logutil"
	"github.com/born-ml/extension/internal/tensor"
)

const version = "v0.1.0"

// appendEnvDocs adds the environment variables a command honours to its usage text.
func appendEnvDocs(cmd *cobra.Command, envs []envconfig.EnvVar) {
	if len(envs) == 0 {
		return
	}

	envUsage := `
Environment Variables:
`
	for _, e := range envs {
		envUsage += fmt.Sprintf("      %-24s   %s\n", e.Name, e.Description)
	}

	cmd.SetUsageTemplate(cmd.UsageTemplate() + envUsage)
}

// setup installs the logger and allocation limit from the environment.
func setup(cmd *cobra.Command, _ []string) {
	slog.SetDefault(logutil.NewLogger(cmd.ErrOrStderr(), envconfig.LogLevel()))
	if limit := envconfig.MaxAllocBytes(); limit > 0 && limit < uint64(tensor.MaxAllocBytes) {
		tensor.MaxAllocBytes = int(limit)
	}
}

// NewCLI builds the root command.
func NewCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:               "born",
		Short:             "Run custom tensor operators",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRun:  setup,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		Run: func(cmd *cobra.Command, args []string) {
			if v, _ := cmd.Flags().GetBool("version"); v {
				versionHandler(cmd, args)
				return
			}
			cmd.Print(cmd.UsageString())
		},
	}
	rootCmd.Flags().BoolP("version", "v", false, "Show version information")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run:   versionHandler,
	}

	opsCmd := &cobra.Command{
		Use:     "ops [PREFIX]",
		Aliases: []string{"list"},
		Short:   "List registered operators",
		Args:    cobra.MaximumNArgs(1),
		RunE:    opsHandler,
	}

	muladdCmd := &cobra.Command{
		Use:   "muladd",
		Short: "Compute a*b + c elementwise",
		Example: `  born muladd --a 1,2,3,4 --b 5,6,7,8 --shape 2,2 --c 1
  born muladd --a 1,2,3 --b 4,5,6 --c 2`,
		Args: cobra.NoArgs,
		RunE: muladdHandler,
	}
	muladdCmd.Flags().String("a", "", "Comma-separated values of a")
	muladdCmd.Flags().String("b", "", "Comma-separated values of b")
	muladdCmd.Flags().String("shape", "", "Comma-separated shape (default: 1-D)")
	muladdCmd.Flags().Float64("c", 0, "Scalar added to every product")
	muladdCmd.Flags().String("device", "", "Device to place the inputs on (default $BORN_DEVICE or cpu)")
	muladdCmd.Flags().String("dtype", "float32", "Element type of the inputs")
	muladdCmd.Flags().Bool("transpose-a", false, "Read the values of a 2-D a in column-major order")
	_ = muladdCmd.MarkFlagRequired("a")
	_ = muladdCmd.MarkFlagRequired("b")

	envCmd := &cobra.Command{
		Use:   "env",
		Short: "Show configuration read from the environment",
		Args:  cobra.NoArgs,
		RunE:  envHandler,
	}

	envs := envconfig.AsMap()
	keys := make([]string, 0, len(envs))
	for k := range envs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	docs := make([]envconfig.EnvVar, 0, len(keys))
	for _, k := range keys {
		docs = append(docs, envs[k])
	}
	for _, cmd := range []*cobra.Command{opsCmd, muladdCmd, envCmd} {
		appendEnvDocs(cmd, docs)
	}

	rootCmd.AddCommand(versionCmd, opsCmd, muladdCmd, envCmd)
	return rootCmd
}

func versionHandler(cmd *cobra.Command, _ []string) {
	fmt.Fprintf(cmd.OutOrStdout(), "born extension version is %s\n", version)
}
