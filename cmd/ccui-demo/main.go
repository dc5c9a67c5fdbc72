// Command ccui-demo shows a small document: a title, two bordered panels and a
// status line. Press q or Esc to quit; click a panel to see hit testing.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/ccui"
	"github.com/lixenwraith/ccui/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "ccui-demo:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		fps        int
		mouse      bool
		logFile    string
	)

	cmd := &cobra.Command{
		Use:           "ccui-demo",
		Short:         "Run the ccui demo document",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fd := os.Stdout.Fd()
			if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
				return errors.New("stdout is not a terminal")
			}

			var opts []ccui.Option
			if configPath != "" {
				opts = append(opts, ccui.WithConfigFile(configPath))
			}
			if cmd.Flags().Changed("fps") {
				opts = append(opts, ccui.WithFrameRate(fps))
			}
			if configPath == "" || cmd.Flags().Changed("mouse") {
				opts = append(opts, ccui.WithMouse(mouse))
			}
			if logFile != "" {
				logger, closer, err := config.SetupLogger(logFile)
				if err != nil {
					return err
				}
				defer closer.Close()
				opts = append(opts, ccui.WithLogger(logger))
			}

			doc, err := ccui.Run(opts...)
			if err != nil {
				return err
			}
			return runDemo(cmd.Context(), doc)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "config file (.toml, .yaml)")
	flags.IntVar(&fps, "fps", 60, "frames per second (1-240)")
	flags.BoolVar(&mouse, "mouse", true, "enable mouse reporting")
	flags.StringVar(&logFile, "log", "", "write diagnostics to this file")
	return cmd
}

// runDemo builds the tree and handles events until the user quits
func runDemo(ctx context.Context, doc *ccui.Document) error {
	ui, err := buildTree(doc)
	if err != nil {
		doc.Close()
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return doc.Close()

		case ev, ok := <-doc.Events():
			if !ok {
				return doc.Close()
			}
			if quit := ui.handle(ev); quit {
				return doc.Close()
			}
		}
	}
}

func isQuit(key tcell.Key, r rune) bool {
	return key == tcell.KeyEscape || key == tcell.KeyCtrlC || (key == tcell.KeyRune && (r == 'q' || r == 'Q'))
}
