/*
Package cli provides command-line helpers shared by the solarsystem commands.

Output Formatting:

Commands print their result as text or JSON depending on --output:

	format, err := cli.ParseOutputFormat(flagValue)
	if err != nil {
		return err
	}
	if err := cli.NewFormatter(format).FormatTo(os.Stdout, result); err != nil {
		return err
	}

Errors and Exit Codes:

Commands wrap failures in CommandError or ConfigError; main maps them to a
process exit code with ExitCode.

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx, stop := cli.SetupSignalHandler(context.Background())
	defer stop()
*/
package cli
