package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"sjf-simulator/internal/loader"
	"sjf-simulator/internal/render"
	"sjf-simulator/internal/responses"
	"sjf-simulator/internal/schedulers"
)

func newSimulateCmd(opts *rootOptions) *cobra.Command {
	var file, output string

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Schedule the processes of a CSV file (pid,arrival,burst)",
		Long: "Reads processes from --file, or stdin when no file is given, and prints the\n" +
			"Gantt chart and per-process table, or the JSON result with --output json.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "text" && output != "json" {
				return fmt.Errorf("unknown output %q (want text or json)", output)
			}

			var in io.Reader = cmd.InOrStdin()
			if file != "" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("opening process file: %w", err)
				}
				defer f.Close()
				in = f
			}

			processes, err := loader.LoadProcesses(in)
			if err != nil {
				return err
			}
			if len(processes) > opts.cfg.MaxProcesses {
				return fmt.Errorf("too many processes: %d (at most %d allowed)", len(processes), opts.cfg.MaxProcesses)
			}
			log.WithField("processes", len(processes)).Debug("loaded processes")

			result, err := schedulers.ScheduleShortestJobFirst(processes)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if output == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(responses.FromResult(result))
			}
			render.Report(out, result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "CSV file with a pid,arrival,burst header (default stdin)")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format (text, json)")
	return cmd
}
