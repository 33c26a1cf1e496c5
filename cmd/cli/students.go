package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/school-management/sm-console/api"
)

func makeListCommand() *cobra.Command {
	var (
		page, size    int
		search, level string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List students",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient()
			if err != nil {
				return err
			}

			res, err := client.List(context.Background(), page, size, search, level)
			if err != nil {
				return err
			}

			for _, student := range res.Content {
				id := int64(0)
				if student.ID != nil {
					id = *student.ID
				}
				fmt.Printf("%d\t%s\t%s\n", id, student.Username, student.Level)
			}
			fmt.Printf("page %d/%d, %d students total\n", res.Number+1, res.TotalPages, res.TotalElements)
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 0, "Page index, 0-based")
	cmd.Flags().IntVar(&size, "size", 10, "Page size")
	cmd.Flags().StringVar(&search, "search", "", "Free-text username search")
	cmd.Flags().StringVar(&level, "level", "", "Level filter (FRESHMAN/SOPHOMORE/JUNIOR/SENIOR)")

	return cmd
}

func makeGetCommand() *cobra.Command {
	var id int64
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show a single student",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient()
			if err != nil {
				return err
			}

			student, err := client.Get(context.Background(), id)
			if err != nil {
				return err
			}
			fmt.Printf("%d\t%s\t%s\n", id, student.Username, student.Level)
			return nil
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "Student id")
	cobra.CheckErr(cmd.MarkFlagRequired("id"))

	return cmd
}

func makeCreateCommand() *cobra.Command {
	var username, level string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a student",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient()
			if err != nil {
				return err
			}

			created, err := client.Create(context.Background(), &api.Student{Username: username, Level: level})
			if err != nil {
				return err
			}
			fmt.Printf("created student %d\n", *created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().StringVar(&level, "level", api.LevelFreshman, "Level")
	cobra.CheckErr(cmd.MarkFlagRequired("username"))

	return cmd
}

func makeUpdateCommand() *cobra.Command {
	var (
		id              int64
		username, level string
	)
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a student",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient()
			if err != nil {
				return err
			}

			_, err = client.Update(context.Background(), id, &api.Student{ID: &id, Username: username, Level: level})
			if err != nil {
				return err
			}
			fmt.Printf("updated student %d\n", id)
			return nil
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "Student id")
	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().StringVar(&level, "level", api.LevelFreshman, "Level")
	cobra.CheckErr(cmd.MarkFlagRequired("id"))
	cobra.CheckErr(cmd.MarkFlagRequired("username"))

	return cmd
}

func makeDeleteCommand() *cobra.Command {
	var id int64
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a student",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient()
			if err != nil {
				return err
			}

			if err := client.Delete(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("deleted student %d\n", id)
			return nil
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "Student id")
	cobra.CheckErr(cmd.MarkFlagRequired("id"))

	return cmd
}
