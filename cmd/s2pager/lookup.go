package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Alp4ka/s2pager/scratch"
)

func registerLookupCmds(rootCmd *cobra.Command, a *app) {
	userCmd := &cobra.Command{
		Use:   "user <name>",
		Short: "shows a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := scratch.GetUser(cmd.Context(), a.client, args[0])
			if err != nil {
				return err
			}
			return printLines(cmd.OutOrStdout(), []scratch.User{user})
		},
	}

	projectCmd := &cobra.Command{
		Use:   "project <id>",
		Short: "shows a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid project id '%s': %w", args[0], err)
			}

			project, err := scratch.GetProject(cmd.Context(), a.client, id)
			if err != nil {
				return err
			}
			return printLines(cmd.OutOrStdout(), []scratch.Project{project})
		},
	}

	countCmd := &cobra.Command{
		Use:   "count <user>",
		Short: "shows the number of unread messages of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := scratch.MessageCount(cmd.Context(), a.client, args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), count)
			return err
		},
	}

	rootCmd.AddCommand(userCmd, projectCmd, countCmd)
}
