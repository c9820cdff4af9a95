package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	appplayers "github.com/blakethaselberger/StarsOps-sub001/internal/app/players"
	"github.com/blakethaselberger/StarsOps-sub001/internal/domain/players"
	"github.com/blakethaselberger/StarsOps-sub001/internal/providers"
	"github.com/blakethaselberger/StarsOps-sub001/internal/providers/file"
	"github.com/blakethaselberger/StarsOps-sub001/internal/providers/fixture"
	"github.com/blakethaselberger/StarsOps-sub001/internal/store"
)

type rootOptions struct {
	roster string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "bluesops",
		Short:         "Search the BluesOps scouting roster",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.roster, "roster", "", "roster JSON document (default: built-in fixture)")

	root.AddCommand(newPlayersCmd(opts), newLeaguesCmd(opts), newSuggestCmd(opts))
	return root
}

func (o *rootOptions) provider() providers.PlayerProvider {
	if o.roster == "" {
		return fixture.New()
	}
	return file.New(o.roster)
}

// loadService fetches the roster once and wraps it in an uncached player service.
func (o *rootOptions) loadService(ctx context.Context) (*appplayers.Service, error) {
	roster, err := o.provider().FetchPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}
	ms := store.NewMemoryStore()
	ms.SetPlayers(players.NormalizeAll(roster))
	return appplayers.NewService(ms, 0), nil
}
