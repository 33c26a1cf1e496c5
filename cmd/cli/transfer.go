package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/school-management/sm-console/internal/roster"
)

func makeExportCommand() *cobra.Command {
	var (
		out           string
		search, level string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download the student roster as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient()
			if err != nil {
				return err
			}

			payload, err := client.ExportCSV(context.Background(), search, level)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, payload, 0o644); err != nil {
				return err
			}
			fmt.Printf("wrote %s (%d bytes)\n", out, len(payload))
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "students.csv", "Output file")
	cmd.Flags().StringVar(&search, "search", "", "Free-text username search")
	cmd.Flags().StringVar(&level, "level", "", "Level filter")

	return cmd
}

func makeImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Upload a CSV or XLSX roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient()
			if err != nil {
				return err
			}

			path := args[0]
			file, err := os.Open(path)
			if err != nil {
				return err
			}
			defer file.Close()

			name := filepath.Base(path)
			var status string
			if roster.IsXLSX(name) {
				csv, err := roster.ConvertXLSX(file)
				if err != nil {
					return err
				}
				name = strings.TrimSuffix(name, filepath.Ext(name)) + ".csv"
				status, err = client.ImportCSV(context.Background(), name, bytes.NewReader(csv))
				if err != nil {
					return err
				}
			} else {
				status, err = client.ImportCSV(context.Background(), name, file)
				if err != nil {
					return err
				}
			}

			fmt.Println(status)
			return nil
		},
	}
}
