package style

import (
	"github.com/arthur-debert/sublsync/pkg/types"
	"github.com/pterm/pterm"
)

// ActionStyle returns the pterm style for a sync action status
func ActionStyle(status types.ActionStatus) *pterm.Style {
	switch status {
	case types.ActionLinked, types.ActionRelinked, types.ActionCreated, types.ActionAdopted:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	case types.ActionBackedUp:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite, pterm.Bold)
	case types.ActionPlanned:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	case types.ActionConflict:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	case types.ActionError:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// StateStyle returns the pterm style for a link state
func StateStyle(state types.LinkState) *pterm.Style {
	switch state {
	case types.StateLinked:
		return pterm.NewStyle(pterm.FgGreen)
	case types.StateMissing, types.StateUnadopted:
		return pterm.NewStyle(pterm.FgYellow)
	case types.StateWrongTarget, types.StateDangling:
		return pterm.NewStyle(pterm.FgCyan)
	case types.StateConflict:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// ActionLabel is the short column label shown for a status
func ActionLabel(status types.ActionStatus) string {
	switch status {
	case types.ActionAlreadyLinked:
		return "ok"
	case types.ActionBackedUp:
		return "backup"
	case types.ActionPlanned:
		return "plan"
	default:
		return string(status)
	}
}
