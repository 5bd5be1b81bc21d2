// Package packs loads the question pack catalog from a directory tree:
// a packs-config.json manifest at the root plus one packs/<id>.json item
// file per pack. Broken or missing packs are skipped with a warning so one
// bad file never takes the whole catalog down.
package packs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/wildminds/animalquiz/internal/quiz"
)

// ErrNoPacks means the catalog came up completely empty.
var ErrNoPacks = errors.New("no quiz packs could be loaded")

// Meta is one manifest entry; the items live in packs/<ID>.json.
type Meta struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Category    string `json:"category,omitempty"`
	UnlockCost  int    `json:"unlockCost"`
}

type manifest struct {
	Packs []Meta `json:"packs"`
}

// fallbackMetas covers catalogs shipped without a manifest.
var fallbackMetas = []Meta{
	{ID: "mammals", Name: "Mammals"},
	{ID: "birds", Name: "Birds"},
	{ID: "reptiles", Name: "Reptiles"},
	{ID: "fish", Name: "Fish"},
	{ID: "amphibians", Name: "Amphibians"},
	{ID: "insects", Name: "Insects"},
}

// Load reads the catalog out of fsys. Items missing a questionType get
// multiple-choice; items whose answer is not among their options are
// dropped. Returns ErrNoPacks when nothing loads.
func Load(fsys fs.FS, logger *slog.Logger) ([]quiz.Pack, error) {
	metas := readManifest(fsys, logger)

	var catalog []quiz.Pack
	for _, m := range metas {
		pack, err := loadPack(fsys, m)
		if err != nil {
			logger.Warn("skipping pack", slog.String("pack", m.ID), slog.String("error", err.Error()))
			continue
		}
		catalog = append(catalog, pack)
	}
	if len(catalog) == 0 {
		return nil, ErrNoPacks
	}
	return catalog, nil
}

func readManifest(fsys fs.FS, logger *slog.Logger) []Meta {
	raw, err := fs.ReadFile(fsys, "packs-config.json")
	if err != nil {
		logger.Warn("packs-config.json not readable, using fallback list", slog.String("error", err.Error()))
		return fallbackMetas
	}
	var mf manifest
	if err := json.Unmarshal(raw, &mf); err != nil {
		logger.Warn("packs-config.json not parsable, using fallback list", slog.String("error", err.Error()))
		return fallbackMetas
	}
	if len(mf.Packs) == 0 {
		return fallbackMetas
	}
	return mf.Packs
}

func loadPack(fsys fs.FS, m Meta) (quiz.Pack, error) {
	raw, err := fs.ReadFile(fsys, "packs/"+m.ID+".json")
	if err != nil {
		return quiz.Pack{}, err
	}
	var items []quiz.QuizItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return quiz.Pack{}, fmt.Errorf("parsing items: %w", err)
	}

	valid := items[:0]
	for _, item := range items {
		if item.QuestionType == "" {
			item.QuestionType = quiz.MultipleChoice
		}
		if !answerInOptions(item) {
			continue
		}
		valid = append(valid, item)
	}
	if len(valid) == 0 {
		return quiz.Pack{}, errors.New("pack has no valid items")
	}

	return quiz.Pack{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Icon:        m.Icon,
		Category:    m.Category,
		UnlockCost:  m.UnlockCost,
		Items:       valid,
	}, nil
}

func answerInOptions(item quiz.QuizItem) bool {
	for _, o := range item.Options {
		if o == item.Answer {
			return true
		}
	}
	return false
}

// TotalItems sums the question count across the catalog.
func TotalItems(catalog []quiz.Pack) int {
	total := 0
	for _, p := range catalog {
		total += len(p.Items)
	}
	return total
}
