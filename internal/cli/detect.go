package cli

import (
	"encoding/json"
	"fmt"

	"github.com/glorpus-work/platinfo/internal/logger"
	"github.com/glorpus-work/platinfo/pkg/errors"
	"github.com/glorpus-work/platinfo/pkg/platform"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewDetectCmd creates the detect command.
func NewDetectCmd(detector platform.Detector) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Detect the host operating system and architecture",
		Long:  "Query the executing host and print its operating system and CPU architecture pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDetect(cmd, detector)
		},
	}

	return cmd
}

func runDetect(cmd *cobra.Command, detector platform.Detector) error {
	initLogging()

	info, err := detector.Current()
	if err != nil {
		return errors.Wrap(err, "failed to detect host platform")
	}

	logger.Debug("classified host platform", logger.Fields{"os": info.OS.String(), "arch": info.Arch.String()})

	switch format := outputFormat(); format {
	case "text":
		fmt.Fprintln(cmd.OutOrStdout(), info.String())
	case "json":
		out, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to encode platform info")
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	case "yaml":
		out, err := yaml.Marshal(info)
		if err != nil {
			return errors.Wrap(err, "failed to encode platform info")
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
	default:
		return errors.Wrapf(errors.ErrUnknownOutputFormat, "%q", format)
	}

	return nil
}
