package core

import (
	"github.com/arthur-debert/sublsync/pkg/filesystem"
	"github.com/arthur-debert/sublsync/pkg/logging"
	"github.com/arthur-debert/sublsync/pkg/status"
	"github.com/arthur-debert/sublsync/pkg/types"
)

// StatusOptions contains the inputs of a status inspection
type StatusOptions struct {
	Layout     types.Layout
	FileSystem types.FS
}

// Status reports the link state of every tracked file
func Status(opts StatusOptions) (*types.StatusReport, error) {
	logger := logging.GetLogger("core.status")

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	report, err := status.Inspect(fs, opts.Layout)
	if err != nil {
		return nil, err
	}
	logger.Debug().Int("files", len(report.Files)).Bool("inSync", report.InSync()).Msg("Status inspected")
	return report, nil
}
