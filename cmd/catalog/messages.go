package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jsabonet/milagre-car-site-sub000/client"
	"github.com/jsabonet/milagre-car-site-sub000/models"
)

func newMessagesCommand(g *globalOptions) *cobra.Command {
	var (
		email  string
		status string
		page   int
		limit  int
	)
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "List contact messages (requires an admin account)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			password := os.Getenv("MILAGRE_ADMIN_PASSWORD")
			if email == "" || password == "" {
				return errors.New("set --email and MILAGRE_ADMIN_PASSWORD")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), g.timeout)
			defer cancel()

			session := client.NewSession()
			c := g.client(session)
			if _, err := c.Login(ctx, email, password); err != nil {
				return fmt.Errorf("login: %w", err)
			}

			messages, meta, err := c.ListMessages(ctx, status, page, limit)
			if err != nil {
				return fmt.Errorf("list messages: %w", err)
			}
			if g.json {
				return writeJSON(cmd.OutOrStdout(), map[string]any{"messages": messages, "meta": meta})
			}
			return renderMessages(cmd.OutOrStdout(), messages, meta)
		},
	}
	cmd.Flags().StringVar(&email, "email", os.Getenv("MILAGRE_ADMIN_EMAIL"), "Admin email")
	cmd.Flags().StringVar(&status, "status", "", "new, read, replied or archived")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&limit, "limit", 20, "Messages per page")
	return cmd
}

func renderMessages(w io.Writer, messages []models.ContactMessage, meta *models.Pagination) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RECEIVED\tSTATUS\tFROM\tSUBJECT\t")
	for _, m := range messages {
		subject := m.Subject
		if subject == "" {
			subject = truncate(m.Message, 40)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s <%s>\t%s\t\n", m.CreatedAt.Format("2006-01-02 15:04"), m.Status, m.Name, m.Email, subject)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if meta != nil {
		_, err := fmt.Fprintf(w, "\npage %d of %d (%d messages)\n", meta.Page, meta.TotalPages, meta.Total)
		return err
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
