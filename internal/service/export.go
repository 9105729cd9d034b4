package service

import (
	"fmt"
	"time"

	"github.com/beevik/etree"
)

// ExportJournalXML renders all of the user's journal entries as an XML
// document for download.
func (s *Service) ExportJournalXML(userID int64) ([]byte, error) {
	entries, err := s.repo.ListJournalEntries(userID)
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("journal")
	root.CreateAttr("exported_at", time.Now().UTC().Format(time.RFC3339))
	root.CreateAttr("entries", fmt.Sprintf("%d", len(entries)))

	for _, e := range entries {
		el := root.CreateElement("entry")
		el.CreateAttr("id", fmt.Sprintf("%d", e.ID))
		el.CreateAttr("created_at", e.CreatedAt.UTC().Format(time.RFC3339))
		el.CreateElement("title").SetText(e.Title)
		el.CreateElement("content").SetText(e.Content)
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to render journal export: %w", err)
	}
	return out, nil
}
