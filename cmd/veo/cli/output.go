package cli

import (
	"github.com/fatih/color"
)

var (
	// Color scheme for command output
	headerStyle  = color.New(color.FgCyan, color.Bold)
	infoStyle    = color.New(color.FgCyan)
	successStyle = color.New(color.FgGreen)
	warningStyle = color.New(color.FgYellow, color.Bold)
)
