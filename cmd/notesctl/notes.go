package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/notes-keeper/models"
)

const previewWidth = 40

func newListCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			notes, err := c.adapter.ListNotes(cmd.Context())
			if err != nil {
				return fmt.Errorf("list notes: %w", err)
			}

			if c.asJSON {
				return c.printJSON(notes)
			}
			if len(notes) == 0 {
				_, err = fmt.Fprintln(c.out, "no notes")
				return err
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("ID", "TITLE", "CONTENT")
			for _, note := range notes {
				t.Row(note.ID, note.Title, preview(note.Content))
			}
			_, err = fmt.Fprintln(c.out, t.Render())
			return err
		},
	}
}

func newGetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Print a single note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			note, err := c.adapter.GetNote(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("get note %s: %w", args[0], err)
			}

			if c.asJSON {
				return c.printJSON(note)
			}
			_, err = fmt.Fprintf(c.out, "id: %s\ntitle: %s\n\n%s\n", note.ID, note.Title, note.Content)
			return err
		},
	}
}

func newCreateCmd(c *cli) *cobra.Command {
	var input models.NoteInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			note, err := c.adapter.CreateNote(cmd.Context(), input)
			if err != nil {
				return fmt.Errorf("create note: %w", err)
			}
			return c.printResult("created", note)
		},
	}

	cmd.Flags().StringVarP(&input.Title, "title", "t", "", "Note title")
	cmd.Flags().StringVarP(&input.Content, "content", "m", "", "Note content")
	return cmd
}

// newUpdateCmd replaces both fields of the note, like the PUT it maps to.
func newUpdateCmd(c *cli) *cobra.Command {
	var input models.NoteInput

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace the title and content of a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			note, err := c.adapter.UpdateNote(cmd.Context(), args[0], input)
			if err != nil {
				return fmt.Errorf("update note %s: %w", args[0], err)
			}
			return c.printResult("updated", note)
		},
	}

	cmd.Flags().StringVarP(&input.Title, "title", "t", "", "Note title")
	cmd.Flags().StringVarP(&input.Content, "content", "m", "", "Note content")
	return cmd
}

func newDeleteCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a note",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.adapter.DeleteNote(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("delete note %s: %w", args[0], err)
			}
			_, err := fmt.Fprintf(c.out, "deleted %s\n", args[0])
			return err
		},
	}
}

func (c *cli) printResult(verb string, note models.Note) error {
	if c.asJSON {
		return c.printJSON(note)
	}
	_, err := fmt.Fprintf(c.out, "%s %s\n", verb, note.ID)
	return err
}

func (c *cli) printJSON(v any) error {
	encoder := json.NewEncoder(c.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func preview(content string) string {
	line, _, cut := strings.Cut(content, "\n")
	r := []rune(line)
	if len(r) > previewWidth {
		return string(r[:previewWidth-3]) + "..."
	}
	if cut {
		return line + "..."
	}
	return line
}
