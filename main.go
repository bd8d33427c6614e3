// snag is an interactive hinting picker for terminal text: it scans a
// captured tmux pane (or piped stdin) for URLs, paths, hashes and other
// recognizable spans, overlays each with a short keyboard hint, and
// copies the picked span to the tmux paste buffer or the system
// clipboard.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mirrorfall/snag/internal/bridge"
	"github.com/mirrorfall/snag/internal/clipboard"
	"github.com/mirrorfall/snag/internal/config"
	"github.com/mirrorfall/snag/internal/hint"
	"github.com/mirrorfall/snag/internal/logging"
	"github.com/mirrorfall/snag/internal/present"
	"github.com/mirrorfall/snag/internal/render"
)

// errNoSelection signals a clean "nothing picked" exit: no diagnostic,
// nonzero status so the host binding skips its copy step.
var errNoSelection = errors.New("no selection")

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errNoSelection) {
			fmt.Fprintln(os.Stderr, "snag: "+err.Error())
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg, loadErr := config.LoadFile(config.DefaultConfigPath())

	var (
		outputFile string
		target     string
		swapMode   bool
		logLevel   string
		logFile    string
	)

	cmd := &cobra.Command{
		Use:           "snag",
		Short:         "pick spans of terminal text with keyboard hints",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if loadErr != nil {
				return loadErr
			}
			sync, err := logging.Init(logLevel, logFile)
			if err != nil {
				return err
			}
			defer sync()

			if swapMode {
				return runSwapper(cfg, args)
			}
			return runPicker(cfg, target, outputFile)
		},
	}

	config.BindFlags(cmd.Flags(), &cfg)
	cmd.Flags().StringVar(&outputFile, "output-file", "", "write the selection as <uppercased>:<text> to this file")
	cmd.Flags().StringVar(&target, "target", "", "tmux pane to capture (default: current pane)")
	cmd.Flags().BoolVar(&swapMode, "swap", false, "run inside a transient window swapped over the origin pane")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	cmd.Flags().StringVar(&logFile, "log-file", "", "log file path (default: ~/.local/state/snag/snag.log)")

	return cmd
}

// runPicker is the ordinary single-process mode: gather lines, build the
// model, run the interactive loop, and route the selection to its
// destination.
func runPicker(cfg config.Config, target, outputFile string) error {
	colors, alignment, hintStyle, defaultDest, err := cfg.Resolve()
	if err != nil {
		return err
	}

	br := bridge.New(bridge.Config{HonorHostCaptureRegion: cfg.HonorHostCaptureRegion})
	underTmux := os.Getenv("TMUX") != ""

	patternNames := cfg.PatternNames
	if underTmux && len(patternNames) == 0 && !cfg.AllPatterns {
		if packed, err := br.OptionPatternNames(target); err == nil && len(packed) > 0 {
			patternNames = packed
		}
	}
	useAll := cfg.AllPatterns || (len(patternNames) == 0 && len(cfg.CustomPatterns) == 0)

	lines, err := gatherLines(br, target, underTmux)
	if err != nil {
		return err
	}

	model, err := hint.BuildModel(lines, cfg.Alphabet, patternNames,
		cfg.CustomPatterns, useAll, cfg.Reverse, cfg.UniqueHint)
	if err != nil {
		return err
	}
	if model.Empty() {
		logging.L().Info("no spans found", zap.Int("lines", len(lines)))
		return errNoSelection
	}

	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return errors.Wrap(err, "open /dev/tty")
	}
	defer tty.Close()

	term, err := render.Open(tty, tty)
	if err != nil {
		return err
	}
	defer term.Close()

	opts := present.Options{
		FocusWrapAround:    cfg.FocusWrapAround,
		DefaultDestination: defaultDest,
		Colors: present.Colors{
			TextFg: colors.TextFg, TextBg: colors.TextBg,
			SpanFg: colors.SpanFg, SpanBg: colors.SpanBg,
			FocusedFg: colors.FocusedFg, FocusedBg: colors.FocusedBg,
			HintFg: colors.HintFg, HintBg: colors.HintBg,
		},
		HintAlignment: alignment,
		HintStyle:     hintStyle,
	}
	if underTmux {
		opts.Notify = func(msg string) { _ = br.DisplayMessage(msg) }
	}

	selection, err := present.Present(model, term, opts)
	// The terminal must be restored before anything below touches the
	// host: set-buffer and clipboard programs expect a sane tty.
	term.Close()
	if err != nil {
		return err
	}
	if selection == nil {
		return errNoSelection
	}

	return deliver(br, *selection, outputFile, underTmux)
}

// deliver routes a completed selection to the output file (swap mode's
// channel back to the wrapper) and to its destination sink.
func deliver(br *bridge.Bridge, sel hint.Selection, outputFile string, underTmux bool) error {
	if outputFile != "" {
		flag := "false"
		if sel.Uppercased {
			flag = "true"
		}
		if err := os.WriteFile(outputFile, []byte(flag+":"+sel.Text), 0o600); err != nil {
			return errors.Wrap(err, "write selection file")
		}
	}

	switch sel.OutputDestination {
	case hint.DestinationClipboard:
		return clipboard.Copy(sel.Text)
	default:
		if !underTmux {
			// No tmux buffer to set; fall back to stdout so piping still
			// yields the selection.
			fmt.Println(sel.Text)
			return nil
		}
		return br.SetBuffer(sel.Text)
	}
}

// runSwapper is the wrapper mode bound to the tmux key: it re-invokes
// this binary inside a transient window swapped over the origin pane,
// waits for the pick, and performs the host-side paste on an uppercase
// selection.
func runSwapper(cfg config.Config, extraArgs []string) error {
	br := bridge.New(bridge.Config{HonorHostCaptureRegion: cfg.HonorHostCaptureRegion})
	sw := bridge.NewSwapper(br)

	if err := sw.FindActivePane(); err != nil {
		return err
	}

	self, err := os.Executable()
	if err != nil {
		return errors.Wrap(err, "locate own binary")
	}

	if err := sw.SpawnPickerWindow(self, extraArgs); err != nil {
		return err
	}
	if err := sw.SwapPanes(); err != nil {
		return err
	}
	if err := sw.Wait(); err != nil {
		return err
	}

	text, uppercased, ok, err := sw.RetrieveSelection()
	if err != nil {
		return err
	}
	if !ok || strings.TrimSpace(text) == "" {
		return errNoSelection
	}

	if err := br.SetBuffer(text); err != nil {
		return err
	}
	if uppercased {
		return br.PasteBuffer("")
	}
	return nil
}

// gatherLines reads the buffer to hint: piped stdin when present, else a
// capture of the target tmux pane.
func gatherLines(br *bridge.Bridge, target string, underTmux bool) ([]string, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		data, err := readAllStdin()
		if err != nil {
			return nil, err
		}
		return splitBufferLines(data), nil
	}
	if !underTmux {
		return nil, errors.New("no piped input and not inside tmux")
	}

	region, ok, err := br.OptionCaptureRegion(target)
	if err != nil {
		return nil, err
	}
	if ok {
		logging.L().Debug("host capture region honored", zap.String("region", region.String()))
	}
	return br.CapturePane(target, region)
}

func readAllStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.Wrap(err, "read stdin")
	}
	return string(data), nil
}

func splitBufferLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
