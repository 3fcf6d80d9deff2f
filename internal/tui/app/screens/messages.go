package screens

import (
	"github.com/pvermeer/zbminstall/internal/config"
	"github.com/pvermeer/zbminstall/internal/disk"
	"github.com/pvermeer/zbminstall/internal/installer"
	"github.com/pvermeer/zbminstall/internal/sysinfo"
)

// NavigateMsg is sent when navigating to a different screen
type NavigateMsg struct {
	Target string // welcome, mode, drives, settings, validate, confirm, install, done
}

// Navigate creates a NavigateMsg to the target screen
func Navigate(target string) NavigateMsg {
	return NavigateMsg{Target: target}
}

// StatusMsg is sent to display a status message in the footer
type StatusMsg struct {
	Message string
	Type    string // info, success, error, warning
}

// StatusError creates an error status message
func StatusError(message string) StatusMsg {
	return StatusMsg{Message: message, Type: "error"}
}

// StatusWarning creates a warning status message
func StatusWarning(message string) StatusMsg {
	return StatusMsg{Message: message, Type: "warning"}
}

// InfoLoadedMsg carries the collected system information
type InfoLoadedMsg struct {
	Info *sysinfo.Info
	Err  error
}

// ModeChosenMsg is sent when the user picks an install mode
type ModeChosenMsg struct {
	Mode installer.Mode
}

// DrivesChosenMsg is sent when the user confirms a drive selection
type DrivesChosenMsg struct {
	Drives disk.Devices
}

// SettingsDoneMsg is sent when the user finishes the settings form
type SettingsDoneMsg struct {
	Settings config.Settings
}

// InstallFinishedMsg is sent when the install run ends
type InstallFinishedMsg struct {
	Failed  bool
	Results []installer.StepResult
}
