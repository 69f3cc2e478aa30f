package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Alp4ka/s2pager"
	"github.com/Alp4ka/s2pager/scratch"
)

func registerListCmds(rootCmd *cobra.Command, a *app) {
	rootCmd.AddCommand(
		newListCmd(a, "messages <user>", "lists the messages of a user", userArg(scratch.MessagesStream)),
		newListCmd(a, "activity <user>", "lists the activity of the users a user follows", userArg(scratch.ActivityStream)),
		newListCmd(a, "followers <user>", "lists the followers of a user", userArg(scratch.FollowersStream)),
		newListCmd(a, "following <user>", "lists the users a user follows", userArg(scratch.FollowingStream)),
		newListCmd(a, "projects <user>", "lists the shared projects of a user", userArg(scratch.ProjectsStream)),
		newListCmd(a, "favorites <user>", "lists the favorite projects of a user", userArg(scratch.FavoritesStream)),
		newListCmd(a, "loves <user>", "lists the projects loved by the users a user follows", userArg(scratch.LovedByFollowingStream)),
		newListCmd(a, "shared <user>", "lists the projects shared by the users a user follows", userArg(scratch.SharedByFollowingStream)),
		newListCmd(a, "curators <studio-id>", "lists the curators of a studio", studioArg(scratch.StudioCuratorsStream)),
		newListCmd(a, "managers <studio-id>", "lists the managers of a studio", studioArg(scratch.StudioManagersStream)),
	)
}

type streamOf[T any] func(r scratch.Requester, arg string, c s2pager.Cursor) (*s2pager.Stream[T], error)

func userArg[T any](open func(scratch.Requester, string, s2pager.Cursor) *s2pager.Stream[T]) streamOf[T] {
	return func(r scratch.Requester, name string, c s2pager.Cursor) (*s2pager.Stream[T], error) {
		return open(r, name, c), nil
	}
}

func studioArg[T any](open func(scratch.Requester, uint64, s2pager.Cursor) *s2pager.Stream[T]) streamOf[T] {
	return func(r scratch.Requester, arg string, c s2pager.Cursor) (*s2pager.Stream[T], error) {
		id, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid studio id '%s': %w", arg, err)
		}
		return open(r, id, c), nil
	}
}

func newListCmd[T any](a *app, use, short string, open streamOf[T]) *cobra.Command {
	var flags cursorFlags

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.cursor()
			if err != nil {
				return err
			}

			stream, err := open(a.client, args[0], c)
			if err != nil {
				return err
			}

			for page, err := range stream.All(cmd.Context()) {
				if err != nil {
					printResume(cmd.ErrOrStderr(), stream.Cursor())
					return err
				}
				if err = printLines(cmd.OutOrStdout(), page.Items); err != nil {
					return err
				}
			}

			printResume(cmd.ErrOrStderr(), stream.Cursor())
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}
