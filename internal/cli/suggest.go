package cli

import (
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/schedulers"

	"github.com/spf13/cobra"
)

func newSuggestCmd(opts *rootOptions) *cobra.Command {
	var workloadPath string
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Recommend a scheduling policy for a workload file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := requests.LoadWorkload(workloadPath)
			if err != nil {
				return err
			}
			suggestion, err := schedulers.NewSimulator(opts.logger, opts.config.RoundRobinTimeQuantum).
				Suggest(request.ToProcesses())
			if err != nil {
				return err
			}
			report.WriteSuggestion(cmd.OutOrStdout(), schedulers.GenerateSuggestionResponse(suggestion))
			return nil
		},
	}
	cmd.Flags().StringVarP(&workloadPath, "file", "f", "", "Workload file (yaml or json)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
