package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lagu-player/lagu/internal/app"
	"github.com/lagu-player/lagu/internal/config"
	"github.com/lagu-player/lagu/internal/errmsg"
	"github.com/lagu-player/lagu/internal/logging"
	"github.com/lagu-player/lagu/internal/mpris"
	"github.com/lagu-player/lagu/internal/notify"
	"github.com/lagu-player/lagu/internal/playback"
	"github.com/lagu-player/lagu/internal/player"
	"github.com/lagu-player/lagu/internal/playlist"
	"github.com/lagu-player/lagu/internal/session"
	"github.com/lagu-player/lagu/internal/state"
	"github.com/lagu-player/lagu/internal/stderr"
	"github.com/lagu-player/lagu/internal/ui/chooser"
)

type rootParams struct {
	configPath string
	logFile    string
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var params rootParams
	cmd := &cobra.Command{
		Use:   "lagu [files...]",
		Short: "A terminal music player",
		Long: `lagu plays a playlist of local music files.
Files and directories given as arguments are added at startup and the
first one starts playing. Press o inside the player to add more.`,
		Version:      appVersion(),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(params, args)
		},
	}
	cmd.Flags().StringVarP(&params.configPath, "config", "c", "", "config file to load after the default locations")
	cmd.Flags().StringVar(&params.logFile, "log-file", "", "log file path (default $XDG_STATE_HOME/lagu/lagu.log)")
	return cmd
}

func run(params rootParams, args []string) error {
	cfg, err := config.Load(params.configPath)
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpConfigLoad, err)
	}
	if params.logFile != "" {
		cfg.Log.File = params.logFile
	}

	logger, logCloser, err := logging.Open(cfg.LogFile(), cfg.LogLevel())
	if err != nil {
		return err
	}
	defer logCloser.Close()
	slog.SetDefault(logger)
	logger.Info("starting", "version", appVersion())

	files := expandArgs(args, cfg.GetExtensions(), logger)

	// C audio libraries write to fd 2; keep it off the terminal.
	var stderrLines <-chan string
	capture, err := stderr.Start(logger)
	if err != nil {
		logger.Warn("stderr capture unavailable", "error", err)
	} else {
		defer capture.Stop()
		stderrLines = capture.Lines()
	}

	var stateMgr state.Interface
	if mgr, err := state.Open(logger); err != nil {
		logger.Error(errmsg.Format(errmsg.OpStateOpen, err))
	} else {
		defer mgr.Close()
		stateMgr = mgr
	}

	svc := playback.New(player.New(), playlist.NewQueue(),
		playback.WithAutoAdvance(cfg.AutoAdvance()))
	svc.SetVolume(cfg.Volume())
	sess := session.New(svc, logger, session.Config{
		Extensions:    cfg.GetExtensions(),
		GateOnPlaying: cfg.GateOnPlaying(),
		SeekTolerance: cfg.SeekTolerance(),
		SeekSettle:    cfg.SeekSettle(),
	})
	defer sess.Close()

	var announcer app.Announcer
	if cfg.NotificationsEnabled() {
		if n, err := notify.New(); err != nil {
			logger.Warn(errmsg.Format(errmsg.OpNotify, err))
		} else {
			announcer = notify.NewDesktop(n, logger)
		}
	}

	model := app.New(app.Options{
		Session:       sess,
		State:         stateMgr,
		Announcer:     announcer,
		Logger:        logger,
		Stderr:        stderrLines,
		StartupFiles:  files,
		Extensions:    cfg.GetExtensions(),
		DefaultFolder: cfg.DefaultFolder,
		PollInterval:  cfg.PollInterval(),
		SeekStep:      cfg.SeekStep(),
		VolumeStep:    cfg.VolumeStep(),
	})

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if cfg.MPRISEnabled() {
		adapter, err := mpris.New(sess, func(in session.Intent) {
			program.Send(app.IntentMsg{Intent: in})
		})
		if err != nil {
			logger.Warn(errmsg.Format(errmsg.OpMPRISStart, err))
		} else {
			defer adapter.Close()
		}
	}

	if _, err := program.Run(); err != nil {
		logger.Error("ui exited", "error", err)
		return fmt.Errorf("%s: %w", errmsg.OpInitialize, err)
	}
	logger.Info("exiting")
	return nil
}

// expandArgs turns command line arguments into absolute file paths.
// Directories contribute their music files.
func expandArgs(args, extensions []string, logger *slog.Logger) []string {
	var files []string
	for _, arg := range args {
		path, err := filepath.Abs(arg)
		if err != nil {
			logger.Warn("bad path argument", "path", arg, "error", err)
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			logger.Warn("skipping argument", "path", path, "error", err)
			continue
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		dirFiles, err := chooser.MusicFiles(path, extensions)
		if err != nil {
			logger.Warn("skipping directory", "path", path, "error", err)
			continue
		}
		files = append(files, dirFiles...)
	}
	return files
}

func appVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi.Main.Version == "" {
		return "unknown"
	}
	return bi.Main.Version
}
