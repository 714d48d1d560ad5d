package main

import (
	"fmt"
	"io"
	"os"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"synacorvm/driver"
	"synacorvm/vm"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "synacorvm [image]",
		Short:         "Run a binary program image on the virtual machine",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runImage,
	}
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runImage(cmd *cobra.Command, args []string) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("starting logger: %w", err)
	}
	defer logger.Sync()

	image, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading image: %w", err)
	}

	m, err := vm.NewMachine(image)
	if err != nil {
		logger.Error("rejected program image", zap.Error(err))
		return err
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	out := cmd.OutOrStdout()
	var promptErr error

	d := driver.New(m)
	d.OnOutput = func(chars []byte) {
		fmt.Fprint(out, string(chars))
	}
	d.OnInputRequired = func() ([]byte, bool) {
		text, lerr := line.Prompt("")
		if lerr == liner.ErrPromptAborted || lerr == io.EOF {
			return nil, false
		}
		if lerr != nil {
			promptErr = fmt.Errorf("reading input: %w", lerr)
			return nil, false
		}
		line.AppendHistory(text)
		return []byte(text + "\n"), true
	}

	yield, err := d.Run()
	if promptErr != nil {
		return promptErr
	}
	if yield == vm.Faulted {
		logger.Error("program fault", zap.Error(err))
		return err
	}
	return nil
}
