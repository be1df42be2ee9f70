package cmd

import (
	"fmt"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/logger"
)

// loadDocument reads and validates the content document. A document that
// cannot be parsed is fatal; validation issues are warnings unless strict.
func loadDocument(cfg *config.Config, log *logger.Logger) (*content.Document, error) {
	doc, err := content.Load(cfg.Content)
	if err != nil {
		return nil, err
	}

	issues := content.Validate(doc)
	for _, issue := range issues {
		log.Warn("content issue", map[string]any{"field": issue.Field, "rule": issue.Rule, "message": issue.Message})
	}
	if cfg.Strict {
		if err := issues.Err(); err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.Content, err)
		}
	}
	return doc, nil
}
