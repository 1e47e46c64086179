package main

import (
	"fmt"
	"os"

	"github.com/milk9111/speedgame/collision"
	"github.com/milk9111/speedgame/levels"
	"github.com/milk9111/speedgame/levelscript"
	"github.com/spf13/cobra"
)

// loadLevel reads a level file, or a bundled level when no such file exists.
func loadLevel(name string) (*levels.Level, error) {
	if _, err := os.Stat(name); err == nil {
		return levels.ReadFile(name)
	}
	return levels.LoadLevelFromFS(name)
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Print the player start and platforms of a level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := loadLevel(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			start := level.PlayerStart()
			fmt.Fprintf(out, "player start: (%g, %g)\n", start.X, start.Y)
			fmt.Fprintf(out, "platforms: %d\n", level.Len())
			for i, p := range level.Platforms() {
				fmt.Fprintf(out, "  %d: pos=(%g, %g) size=(%g, %g) friction=%g\n",
					i, p.Pos.X, p.Pos.Y, p.Size.X, p.Size.Y, p.Friction)
			}
			return nil
		},
	}
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Lint a level for overlaps, degenerate platforms and a buried player start",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := loadLevel(args[0])
			if err != nil {
				return err
			}
			problems := collision.Check(level)
			out := cmd.OutOrStdout()
			for _, p := range problems {
				fmt.Fprintf(out, "%s: %s\n", p.Kind, p)
			}
			if len(problems) > 0 {
				return fmt.Errorf("%s: %d problems", args[0], len(problems))
			}
			fmt.Fprintf(out, "%s: ok\n", args[0])
			return nil
		},
	}
}

func newGenCmd() *cobra.Command {
	var params levelscript.Params
	cmd := &cobra.Command{
		Use:   "gen SCRIPT OUT",
		Short: "Generate a level by running a tengo script",
		Long: `Generate a level by running a tengo script.

The script sees the globals count and seed, declares platforms as an array of
{x, y, w, h[, friction]} maps and may declare player_start as [x, y].`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := levelscript.RunFile(args[0], params)
			if err != nil {
				return err
			}
			level := res.Level()
			if err := level.WriteFile(args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d platforms to %s\n", level.Len(), args[1])
			return nil
		},
	}
	cmd.Flags().IntVarP(&params.Count, "count", "n", 10, "value of the script's count global")
	cmd.Flags().IntVar(&params.Seed, "seed", 1, "value of the script's seed global")
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the levels bundled into the binary",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range levels.Bundled() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
