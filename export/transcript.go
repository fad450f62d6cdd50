// Package export renders delivered history into files
// an operator can hand over or archive.
package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jung-kurt/gofpdf"

	"chatter-hub/domain"
)

type TranscriptWriter struct {
	log *slog.Logger
}

func NewTranscriptWriter(log *slog.Logger) *TranscriptWriter {
	return &TranscriptWriter{log: log}
}

// WritePDF renders a chatter's delivered entries, in delivery order, to a
// PDF file at path. Bodies are transliterated to the core font charset, so
// exotic characters degrade but never fail the export.
func (w *TranscriptWriter) WritePDF(path string, chatter domain.Chatter, entries []domain.InboxEntry) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 12, tr(fmt.Sprintf("Delivered messages : %s", chatter.Name)))
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("chatter %s, %d entries, exported %s",
		shortID(string(chatter.ID)), len(entries), time.Now().Format(time.RFC822)))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	if len(entries) == 0 {
		pdf.Cell(0, 6, "Nothing delivered yet")
	}
	for i, entry := range entries {
		line := fmt.Sprintf("%03d  [%s] %s : %s",
			i+1, shortID(string(entry.GroupID)), shortID(string(entry.SenderID)), entry.Body)
		pdf.MultiCell(0, 6, tr(line), "", "", false)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing transcript: %w", err)
	}
	w.log.Info("Transcript written", "path", path, "chatter", chatter.ID, "entries", len(entries))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
