// Package commands implements CLI command handlers for keen-menu.
//
// Each command implements the Runner interface:
//   - Init(): Parse arguments and load configuration
//   - Run(): Execute the command
//   - Name(): Return command name for routing
//
// # Available Commands
//
//   - service: Serve the menu API until SIGINT or SIGTERM
//   - check-config: Validate the configuration and print a summary
//   - dump-menu: Print the configuration with the seed menu as TOML
//
// # Example Usage
//
//	cmd := commands.CreateCheckConfigCommand()
//	ctx := &commands.AppContext{
//	    ConfigPath: "/etc/keen-menu.toml",
//	}
//	if err := cmd.Init(args, ctx); err != nil {
//	    log.Fatalf("%v", err)
//	}
//	if err := cmd.Run(); err != nil {
//	    log.Fatalf("%v", err)
//	}
package commands
