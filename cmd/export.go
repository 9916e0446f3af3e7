package cmd

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"

	"github.com/pable/go-map-ranks/internal/snapshot"
)

var (
	exportSnapshot string
	exportOut      string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a cached snapshot back out as JSON",
	Long: `Write a snapshot in the same JSON layout that import reads. Cells keep
their original string, number or null form. An --out path ending in .zst is
zstd-compressed; without --out the JSON goes to stdout.

Example:
  mapranks export --snapshot 3f2a --out may.json.zst`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportSnapshot, "snapshot", "", "snapshot ID prefix (default: latest)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default: stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	snap, err := loadSnapshot(cmd.Context(), exportSnapshot)
	if err != nil {
		return err
	}
	data, err := snapshot.Encode(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if exportOut == "" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	if filepath.Ext(exportOut) == ".zst" {
		var buf bytes.Buffer
		enc, err := zstd.NewWriter(&buf)
		if err != nil {
			return fmt.Errorf("zstd writer: %w", err)
		}
		if _, err := enc.Write(data); err != nil {
			return fmt.Errorf("compress: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("compress: %w", err)
		}
		data = buf.Bytes()
	}
	if err := os.WriteFile(exportOut, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", exportOut, err)
	}
	slog.Info("snapshot exported", "id", snap.ID, "out", exportOut, "records", len(snap.Records))
	return nil
}
