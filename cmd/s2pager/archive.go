package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/Alp4ka/s2pager/archive"
	"github.com/Alp4ka/s2pager/scratch"
)

// _listingPaths resolves the archive command arguments to API paths. The path
// doubles as the listing name in the archive.
var _listingPaths = map[string]func(arg string) (string, error){
	"messages":  userPath(scratch.MessagesPath),
	"activity":  userPath(scratch.ActivityPath),
	"followers": userPath(scratch.FollowersPath),
	"following": userPath(scratch.FollowingPath),
	"projects":  userPath(scratch.ProjectsPath),
	"favorites": userPath(scratch.FavoritesPath),
	"loves":     userPath(scratch.LovedByFollowingPath),
	"shared":    userPath(scratch.SharedByFollowingPath),
	"curators":  studioPath(scratch.StudioCuratorsPath),
	"managers":  studioPath(scratch.StudioManagersPath),
}

func userPath(path func(string) string) func(string) (string, error) {
	return func(name string) (string, error) {
		return path(name), nil
	}
}

func studioPath(path func(uint64) string) func(string) (string, error) {
	return func(arg string) (string, error) {
		id, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return "", fmt.Errorf("invalid studio id '%s': %w", arg, err)
		}
		return path(id), nil
	}
}

func listingKinds() string {
	kinds := lo.Keys(_listingPaths)
	sort.Strings(kinds)
	return strings.Join(kinds, ", ")
}

func (a *app) openStore(cmd *cobra.Command) (*archive.Store, error) {
	store, err := archive.Open(a.cfg.Archive.StoreConfig(), archive.WithPageLimit(a.client.PageLimit()))
	if err != nil {
		return nil, err
	}
	if err = store.Migrate(cmd.Context()); err != nil {
		_ = store.Close()
		return nil, err
	}

	return store, nil
}

func registerArchiveCmds(rootCmd *cobra.Command, a *app) {
	var archiveFlags cursorFlags
	archiveCmd := &cobra.Command{
		Use:   "archive <kind> <user|studio-id>",
		Short: "stores a listing in the archive database",
		Long:  "Stores a listing in the archive database. Kinds: " + listingKinds(),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pathOf, ok := _listingPaths[args[0]]
			if !ok {
				return fmt.Errorf("unknown listing kind '%s', expected one of: %s", args[0], listingKinds())
			}
			path, err := pathOf(args[1])
			if err != nil {
				return err
			}

			c, err := archiveFlags.cursor()
			if err != nil {
				return err
			}

			store, err := a.openStore(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			stream := scratch.RawStream(a.client, path, c)
			archived, err := archive.Sink(cmd.Context(), store, path, stream)
			fmt.Fprintf(cmd.OutOrStdout(), "archived %d elements of %s\n", archived, path)
			printResume(cmd.ErrOrStderr(), stream.Cursor())

			return err
		},
	}
	archiveFlags.register(archiveCmd)

	var (
		replayFlags cursorFlags
		sortFlags   []string
	)
	replayCmd := &cobra.Command{
		Use:   "replay <listing>",
		Short: "prints an archived listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orderings, err := archive.ParseSort(sortFlags, archive.SortColumns)
			if err != nil {
				return err
			}

			c, err := replayFlags.cursor()
			if err != nil {
				return err
			}

			store, err := a.openStore(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			stream := store.Stream(args[0], c, orderings...)
			for page, err := range stream.All(cmd.Context()) {
				if err != nil {
					return err
				}

				for _, node := range page.Items {
					if _, err = fmt.Fprintln(cmd.OutOrStdout(), node.Raw()); err != nil {
						return err
					}
				}
			}

			return nil
		},
	}
	replayFlags.register(replayCmd)
	replayCmd.Flags().StringArrayVar(&sortFlags, "sort", nil, `ordering in the form "<position|fetched|id> <asc|desc>", repeatable`)

	listingsCmd := &cobra.Command{
		Use:   "listings",
		Short: "lists the archived listings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.openStore(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			listings, err := store.Listings(cmd.Context())
			if err != nil {
				return err
			}

			for _, listing := range listings {
				count, err := store.Count(cmd.Context(), listing)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", listing, count)
			}

			return nil
		},
	}

	rootCmd.AddCommand(archiveCmd, replayCmd, listingsCmd)
}
