// Package main provides the CLI entrypoint for typefall.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/typefall/internal/audio"
	"github.com/verte-zerg/typefall/internal/config"
	"github.com/verte-zerg/typefall/internal/engine"
	"github.com/verte-zerg/typefall/internal/log"
	"github.com/verte-zerg/typefall/internal/model"
	"github.com/verte-zerg/typefall/internal/song"
	"github.com/verte-zerg/typefall/internal/stats"
	"github.com/verte-zerg/typefall/internal/tui"
	"github.com/verte-zerg/typefall/internal/wordlist"
)

const (
	defaultSong     = "Fur Elise"
	defaultVolume   = 0.5
	defaultLogLevel = "info"
)

var (
	playSong     string
	playWordlist string
	playMute     bool
	playVolume   float64
	playLogFile  string
	playLogLevel string

	laneWidth         float64
	laneHeight        float64
	laneLetterSpacing float64
	laneLetterHeight  float64
	laneTargetOffset  float64

	judgeLockMs             int
	judgeFreezeMs           int
	judgeIndicatorMs        int
	judgeInterWordMs        int
	judgeWrongKeyClearsWord bool
	judgeLateHitFreezes     bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typefall",
		Short:         "Rhythm typing game with falling letters",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	def := engine.DefaultOptions()
	flags := rootCmd.Flags()
	flags.StringVar(&playSong, "song", defaultSong, "song to play (see: typefall songs)")
	flags.StringVar(&playWordlist, "wordlist", "", "word list name or path (default: built-in list)")
	flags.BoolVar(&playMute, "mute", false, "start with sound off")
	flags.Float64Var(&playVolume, "volume", defaultVolume, "sound volume (0-1)")
	flags.StringVar(&playLogFile, "log-file", "", "write logs to this file (debug level defaults to "+config.DefaultLogPath()+")")
	flags.StringVar(&playLogLevel, "log-level", defaultLogLevel, "log level: debug, info, error, none")

	flags.Float64Var(&laneWidth, "width", def.Lane.Width, "lane width in lane pixels")
	flags.Float64Var(&laneHeight, "height", def.Lane.Height, "lane height in lane pixels")
	flags.Float64Var(&laneLetterSpacing, "letter-spacing", def.Lane.LetterSpacing, "horizontal distance between letters")
	flags.Float64Var(&laneLetterHeight, "letter-height", def.Lane.LetterHeight, "letter height used to find its center")
	flags.Float64Var(&laneTargetOffset, "target-offset", def.Lane.TargetOffset, "distance of the target line from the lane bottom")

	flags.IntVar(&judgeLockMs, "lock-ms", int(def.LockDuration.Milliseconds()), "input lock after a wrong key (ms)")
	flags.IntVar(&judgeFreezeMs, "freeze-ms", int(def.FreezeDuration.Milliseconds()), "movement freeze after a late hit (ms)")
	flags.IntVar(&judgeIndicatorMs, "indicator-ms", int(def.IndicatorTTL.Milliseconds()), "how long hit indicators stay visible (ms)")
	flags.IntVar(&judgeInterWordMs, "inter-word-ms", int(def.InterWordDelay.Milliseconds()), "pause between words (100-150 ms)")
	flags.BoolVar(&judgeWrongKeyClearsWord, "wrong-key-clears-word", def.Policy.WrongKeyClearsWord, "a wrong key removes the whole word")
	flags.BoolVar(&judgeLateHitFreezes, "late-hit-freezes", def.Policy.LateHitFreezes, "a late hit freezes movement")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newSongsCmd())

	return rootCmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFileConfig(cmd, fileCfg)
	if err := validateFlags(); err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("typefall needs an interactive terminal")
	}

	logger, closeLog, err := openLogger(playLogFile, playLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	songs := loadCatalog(logger)
	selected, ok := song.Find(songs, playSong)
	if !ok {
		return fmt.Errorf("unknown song %q (run: typefall songs)", playSong)
	}
	words, err := loadWords(playWordlist)
	if err != nil {
		return err
	}

	player := audio.NewPlayer(audio.Options{Volume: playVolume, Muted: playMute}, logger)
	if err := player.Init(); err != nil {
		logger.Warnf("audio disabled: %v", err)
		if !playMute {
			logErrf("audio unavailable, playing muted: %v\n", err)
		}
	}
	defer player.Close()

	eng := engine.New(engine.Config{
		Song:    selected,
		Words:   words,
		Options: buildOptions(),
		Logger:  logger,
	})
	defer eng.Close()
	logger.Infof("starting %q with %d words", selected.Name, len(words))

	ui := tui.NewModel(tui.Config{Engine: eng, Sink: player, Songs: songs, Logger: logger})
	program := tea.NewProgram(ui, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func applyFileConfig(cmd *cobra.Command, cfg config.FileConfig) {
	applyStringConfig(cmd, "song", &playSong, cfg.Game.Song)
	applyStringConfig(cmd, "wordlist", &playWordlist, cfg.Game.Wordlist)
	applyBoolConfig(cmd, "mute", &playMute, cfg.Game.Mute)
	applyFloatConfig(cmd, "volume", &playVolume, cfg.Game.Volume)
	applyStringConfig(cmd, "log-file", &playLogFile, cfg.Game.LogFile)
	applyStringConfig(cmd, "log-level", &playLogLevel, cfg.Game.LogLevel)

	applyFloatConfig(cmd, "width", &laneWidth, cfg.Lane.Width)
	applyFloatConfig(cmd, "height", &laneHeight, cfg.Lane.Height)
	applyFloatConfig(cmd, "letter-spacing", &laneLetterSpacing, cfg.Lane.LetterSpacing)
	applyFloatConfig(cmd, "letter-height", &laneLetterHeight, cfg.Lane.LetterHeight)
	applyFloatConfig(cmd, "target-offset", &laneTargetOffset, cfg.Lane.TargetOffset)

	applyIntConfig(cmd, "lock-ms", &judgeLockMs, cfg.Judge.LockMs)
	applyIntConfig(cmd, "freeze-ms", &judgeFreezeMs, cfg.Judge.FreezeMs)
	applyIntConfig(cmd, "indicator-ms", &judgeIndicatorMs, cfg.Judge.IndicatorMs)
	applyIntConfig(cmd, "inter-word-ms", &judgeInterWordMs, cfg.Judge.InterWordMs)
	applyBoolConfig(cmd, "wrong-key-clears-word", &judgeWrongKeyClearsWord, cfg.Judge.WrongKeyClearsWord)
	applyBoolConfig(cmd, "late-hit-freezes", &judgeLateHitFreezes, cfg.Judge.LateHitFreezes)
}

func buildOptions() engine.Options {
	return engine.Options{
		Lane: model.LaneConfig{
			Width:         laneWidth,
			Height:        laneHeight,
			LetterSpacing: laneLetterSpacing,
			LetterHeight:  laneLetterHeight,
			TargetOffset:  laneTargetOffset,
		},
		InterWordDelay: time.Duration(judgeInterWordMs) * time.Millisecond,
		LockDuration:   time.Duration(judgeLockMs) * time.Millisecond,
		FreezeDuration: time.Duration(judgeFreezeMs) * time.Millisecond,
		IndicatorTTL:   time.Duration(judgeIndicatorMs) * time.Millisecond,
		Policy: engine.MissPolicy{
			WrongKeyClearsWord: judgeWrongKeyClearsWord,
			LateHitFreezes:     judgeLateHitFreezes,
		},
	}
}

func validateFlags() error {
	if playVolume < 0 || playVolume > 1 {
		return fmt.Errorf("--volume must be between 0 and 1")
	}
	if laneWidth <= 0 || laneHeight <= 0 || laneLetterSpacing <= 0 || laneLetterHeight <= 0 {
		return fmt.Errorf("lane dimensions must be > 0")
	}
	if laneLetterSpacing > laneWidth {
		return fmt.Errorf("--letter-spacing must not exceed --width")
	}
	if laneTargetOffset <= 0 || laneTargetOffset >= laneHeight {
		return fmt.Errorf("--target-offset must be between 0 and --height")
	}
	if judgeLockMs <= 0 || judgeFreezeMs <= 0 || judgeIndicatorMs <= 0 {
		return fmt.Errorf("--lock-ms, --freeze-ms and --indicator-ms must be > 0")
	}
	if judgeInterWordMs < 100 || judgeInterWordMs > 150 {
		return fmt.Errorf("--inter-word-ms must be between 100 and 150")
	}
	return nil
}

// openLogger routes logs to a file. Stderr is unusable while the alt screen
// is active, so without a file logs are dropped.
func openLogger(path, levelName string) (*log.Logger, func(), error) {
	level := log.LevelFromString(levelName)
	if path == "" && level == log.LevelDebug {
		path = config.DefaultLogPath()
	}
	if path == "" || level == log.LevelNone {
		return log.Discard(), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := tea.LogToFile(path, "typefall")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	closeLog := func() {
		if cerr := f.Close(); cerr != nil {
			logErrf("failed to close log file: %v\n", cerr)
		}
	}
	return log.New(f, level), closeLog, nil
}

func loadCatalog(logger *log.Logger) []model.SongConfig {
	songs, errs := song.Catalog(config.DefaultSongDir())
	for _, err := range errs {
		logger.Warnf("skipping song file: %v", err)
		logErrf("skipping song file: %v\n", err)
	}
	return songs
}

func loadWords(name string) ([]string, error) {
	if name == "" {
		return wordlist.Default(), nil
	}
	path := config.WordListPath(name)
	words, err := wordlist.LoadWords(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load word list %s: %w", path, err)
	}
	return words, nil
}

func newSongsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "songs",
		Short: "List built-in and user songs",
		Args:  cobra.NoArgs,
		RunE:  runSongsCmd,
	}
}

func runSongsCmd(cmd *cobra.Command, _ []string) error {
	songs, errs := song.Catalog(config.DefaultSongDir())
	for _, err := range errs {
		logErrf("skipping song file: %v\n", err)
	}
	if err := stats.RenderSongs(cmd.OutOrStdout(), songs); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	def := engine.DefaultOptions()
	return fmt.Sprintf(`# typefall configuration
# Uncomment a value to enable it. CLI flags override config values.
# User songs live in %s/*.toml.

[game]
# song = %q                # Song name (see: typefall songs)
# wordlist = "en"          # Name in %s or a file path
# mute = false             # Start with sound off
# volume = %.1f             # Sound volume (0-1)
# log-level = %q         # debug, info, error, none
# log-file = ""            # Log file path

[lane]
# width = %.1f           # Lane width in lane pixels
# height = %.1f           # Lane height in lane pixels
# letter-spacing = %.1f     # Horizontal distance between letters
# letter-height = %.1f      # Letter height used to find its center
# target-offset = %.1f     # Target line distance from the lane bottom

[judge]
# lock-ms = %d             # Input lock after a wrong key
# freeze-ms = %d           # Movement freeze after a late hit
# indicator-ms = %d        # Hit indicator lifetime
# inter-word-ms = %d       # Pause between words (100-150)
# wrong-key-clears-word = %t
# late-hit-freezes = %t
`,
		config.DefaultSongDir(),
		defaultSong,
		config.DefaultWordListDir(),
		defaultVolume,
		defaultLogLevel,
		def.Lane.Width,
		def.Lane.Height,
		def.Lane.LetterSpacing,
		def.Lane.LetterHeight,
		def.Lane.TargetOffset,
		def.LockDuration.Milliseconds(),
		def.FreezeDuration.Milliseconds(),
		def.IndicatorTTL.Milliseconds(),
		def.InterWordDelay.Milliseconds(),
		def.Policy.WrongKeyClearsWord,
		def.Policy.LateHitFreezes,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
