package cli

import (
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/schedulers"

	"github.com/spf13/cobra"
)

func newSimulateCmd(opts *rootOptions) *cobra.Command {
	var (
		workloadPath string
		policyName   string
		quantum      int
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run one or every policy over a workload file",
		Example: "  cpu-scheduler simulate -f workload.yaml --policy rr --quantum 3\n" +
			"  cpu-scheduler simulate -f workload.json --policy all",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := requests.LoadWorkload(workloadPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("quantum") {
				request.TimeQuantum = &quantum
			}
			simulator := schedulers.NewSimulator(opts.logger, opts.config.RoundRobinTimeQuantum)
			processes := request.ToProcesses()
			timeQuantum := simulator.QuantumOrDefault(request.TimeQuantum)

			var results []schedulers.Result
			if policyName == "all" {
				results, err = simulator.Compare(cmd.Context(), processes, timeQuantum)
			} else {
				var policy schedulers.Policy
				policy, err = schedulers.ParsePolicy(policyName)
				if err != nil {
					return err
				}
				var result schedulers.Result
				result, err = simulator.Run(policy, processes, timeQuantum)
				results = []schedulers.Result{result}
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, result := range results {
				report.WriteSchedule(out, schedulers.GenerateResponse(result))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&workloadPath, "file", "f", "", "Workload file (yaml or json)")
	cmd.Flags().StringVarP(&policyName, "policy", "p", "all", "Policy: fcfs, sjf, priority, rr or all")
	cmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "Round-Robin time quantum (overrides workload and config)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
