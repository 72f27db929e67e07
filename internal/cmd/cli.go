// Package cmd holds the kong command tree for the padmap binary.
package cmd

// LogOptions configure logging for every command.
type LogOptions struct {
	Level string `help:"Log level (trace, debug, info, warn, error)" enum:"trace,debug,info,warn,error" default:"info" env:"PADMAP_LOG_LEVEL"`
	File  string `help:"Write logs to this file instead of the console" env:"PADMAP_LOG_FILE"`
	Trace string `help:"Write raw input samples to this file" env:"PADMAP_LOG_TRACE"`
}

// CLI is the top-level command tree. The --config flag is read before kong
// parses, so it only needs to exist here for help output.
type CLI struct {
	Log        LogOptions `embed:"" prefix:"log."`
	ConfigFlag string     `name:"config" help:"Path to a configuration file" env:"PADMAP_CONFIG"`

	List    List          `cmd:"" help:"List connected game input devices"`
	Monitor Monitor       `cmd:"" help:"Poll a device and dispatch bound actions"`
	Config  ConfigCommand `cmd:"" help:"Configuration helpers"`
}
