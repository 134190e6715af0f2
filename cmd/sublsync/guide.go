package sublsync

import (
	"github.com/arthur-debert/sublsync/pkg/logging"
	"github.com/arthur-debert/sublsync/pkg/ui"
	"github.com/charmbracelet/glamour"
)

// guideWidth is the word wrap used when rendering the guide
const guideWidth = 80

// renderGuide renders markdown for a terminal, or returns it unchanged for
// every other format
func renderGuide(content string, format ui.Format) string {
	if format != ui.FormatTerminal {
		return content
	}

	logger := logging.GetLogger("cmd.guide")
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(guideWidth),
	)
	if err != nil {
		logger.Debug().Err(err).Msg("Falling back to plain markdown")
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		logger.Debug().Err(err).Msg("Falling back to plain markdown")
		return content
	}
	return rendered
}
