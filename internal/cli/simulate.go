package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/atherden/boardwalk/internal/dependencies/random"
	"github.com/atherden/boardwalk/internal/factory"
	"github.com/atherden/boardwalk/internal/model"
	"github.com/atherden/boardwalk/internal/services/bot"
	"github.com/atherden/boardwalk/internal/services/engine"
)

func newSimulateCmd() *cobra.Command {
	var (
		players  int
		seed     int64
		maxTurns int
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a headless game between automated players",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd.OutOrStdout(), players, seed, maxTurns, verbose)
		},
	}

	cmd.Flags().IntVar(&players, "players", 4, "Number of automated players")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 uses a non-deterministic source)")
	cmd.Flags().IntVar(&maxTurns, "max-turns", 500, "Stop after this many turns if nobody has won")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Print every game event")

	return cmd
}

func runSimulate(out io.Writer, players int, seed int64, maxTurns int, verbose bool) error {
	if players < 2 {
		return fmt.Errorf("need at least 2 players, got %d", players)
	}

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	if verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	cfg := factory.Config{
		Logger: logger,
		Sink: func(ev model.Event) {
			if verbose {
				fmt.Fprintf(out, "  [%s] %s\n", ev.Type, ev.Message)
			}
		},
	}
	if seed != 0 {
		cfg.Random = random.NewSeeded(seed)
	}

	app, err := factory.New(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()

	specs := make([]engine.NewPlayerSpec, players)
	for i := range specs {
		specs[i] = engine.NewPlayerSpec{
			Name: fmt.Sprintf("Bot %d", i+1),
			Kind: model.PlayerKindAutomated,
		}
	}

	g, err := app.GameController.CreateGame(ctx, specs)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "game %s: %d players, max %d turns\n", g.ID, players, maxTurns)

	for turn := 0; turn < maxTurns; turn++ {
		snapshot, err := app.GameController.Snapshot(ctx, g.ID)
		if err != nil {
			return err
		}
		if snapshot.Over() {
			break
		}

		// A pending trade blocks the proposer, so let the recipient answer first
		if snapshot.PendingTrade != nil && snapshot.PendingTrade.Status == model.TradeStatusPending {
			if _, err := app.BotService.RespondToTrade(ctx, g.ID, snapshot.PendingTrade.To, bot.StrategyGreedy); err != nil {
				return err
			}
		}

		if _, err := app.BotService.PlayTurn(ctx, g.ID, bot.StrategyGreedy); err != nil {
			return err
		}
	}

	final, err := app.GameController.Snapshot(ctx, g.ID)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "finished after %d turns\n", final.Turn)
	for i := range final.Players {
		p := &final.Players[i]
		status := fmt.Sprintf("$%d at cell %d", p.Cash, p.Position)
		if p.IsBankrupt {
			status = "bankrupt"
		}
		fmt.Fprintf(out, "  %s: %s\n", p.Name, status)
	}

	if w := final.Winner(); w != model.NoPlayer {
		fmt.Fprintf(out, "winner: %s\n", final.Player(w).Name)
	} else {
		fmt.Fprintln(out, "no winner within turn limit")
	}

	return nil
}
