package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/frudas24/rotabox/internal/app"
	"github.com/frudas24/rotabox/internal/config"
	"github.com/frudas24/rotabox/internal/control"
	"github.com/frudas24/rotabox/internal/scene"
	"github.com/frudas24/rotabox/internal/script"
	"github.com/frudas24/rotabox/internal/session"
	"github.com/spf13/cobra"
)

var scenePath string

var replayCmd = &cobra.Command{
	Use:   "replay <script>",
	Short: "Run a gesture script and print the outbound messages",
	Long: `Replay parses a gesture script, feeds it through the gesture engine and
prints every outbound message as one JSON line.

The scene comes from --scene, or SCENE_PATH when the flag is not given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReplay(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().StringVar(&scenePath, "scene", "", "scene YAML to load before replaying")
}

func runReplay(out io.Writer, scriptPath string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if scenePath != "" {
		cfg.ScenePath = scenePath
	}

	msgs, err := script.ParseFile(scriptPath)
	if err != nil {
		return err
	}
	sc, err := scene.Load(cfg.ScenePath)
	if err != nil {
		return err
	}
	sess := session.New()
	sess.SetBoundToParent(cfg.BoundToParent)
	if err := sc.Apply(sess, cfg.MinWidth, cfg.MinHeight); err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	var writeErr error
	d := control.NewDispatcher(sess, app.EngineOptions(cfg), func(o control.Outbound) {
		if writeErr == nil {
			writeErr = enc.Encode(o)
		}
	})
	if err := script.Replay(d, msgs); err != nil {
		return err
	}
	d.Flush()
	if writeErr != nil {
		return fmt.Errorf("write output: %w", writeErr)
	}
	return nil
}
