// Package localesync keeps the per-language locale files in step with the
// source language: it bootstraps new languages and backfills missing keys.
package localesync

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/recruitkit/internal/common"
	"github.com/dmitrijs2005/recruitkit/internal/config"
	"github.com/dmitrijs2005/recruitkit/internal/languages"
	"github.com/dmitrijs2005/recruitkit/internal/locales"
	"github.com/dmitrijs2005/recruitkit/internal/logging"
	"github.com/dmitrijs2005/recruitkit/internal/translate"
)

type BootstrapReport struct {
	File            string
	Keys            int
	ManifestUpdated bool
}

type BackfillReport struct {
	Updated  []string
	UpToDate []string
}

type Service struct {
	store        locales.Store
	translator   translate.Translator
	logger       logging.Logger
	source       string
	manifestName string
}

func NewService(store locales.Store, translator translate.Translator, logger logging.Logger, cfg *config.Config) *Service {
	return &Service{
		store:        store,
		translator:   translator,
		logger:       logger,
		source:       cfg.SourceLanguage,
		manifestName: cfg.ManifestName,
	}
}

// Bootstrap creates the locale file for target by translating every value
// of the source locale, then registers target in the manifest.
// Nothing is written unless every translation succeeds.
func (s *Service) Bootstrap(ctx context.Context, target languages.Language) (*BootstrapReport, error) {
	if target.IsZero() {
		return nil, common.ErrInvalidLanguage
	}
	source, err := languages.Parse(s.source)
	if err != nil {
		return nil, fmt.Errorf("source language: %w", err)
	}
	if source == target {
		return nil, fmt.Errorf("target %s is the source language: %w", target, common.ErrInvalidLanguage)
	}

	manifest, err := s.loadManifest(ctx, source)
	if err != nil {
		return nil, err
	}

	src, err := s.load(ctx, locales.FileName(stem(manifest, source)))
	if err != nil {
		return nil, err
	}

	out := locales.NewLocale()
	for _, k := range src.Keys() {
		v, ok := src.Get(k)
		if !ok {
			raw, _ := src.Raw(k)
			out.SetRaw(k, raw)
			s.logger.Warn(ctx, "copied non-text value untranslated", "key", k, "lang", target.Code())
			continue
		}
		tr, err := s.translator.Translate(ctx, v, target)
		if err != nil {
			return nil, fmt.Errorf("translate key %q: %w", k, err)
		}
		out.Set(k, tr)
		s.logger.Debug(ctx, "translated", "key", k, "lang", target.Code())
	}

	file := locales.FileName(stem(manifest, target))
	if err := s.save(ctx, file, out); err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "locale written", "file", file, "keys", out.Len())

	report := &BootstrapReport{File: file, Keys: out.Len()}
	if manifest.Register(target) || manifest.created {
		if err := s.store.Put(ctx, s.manifestName, manifest.Render()); err != nil {
			return report, fmt.Errorf("write manifest: %w", err)
		}
		report.ManifestUpdated = true
		s.logger.Info(ctx, "manifest updated", "file", s.manifestName, "lang", target.Code())
	}

	return report, nil
}

// stem returns the file stem the manifest already uses for l, or its code.
func stem(m *loadedManifest, l languages.Language) string {
	if st, ok := m.Stem(l.Code()); ok {
		return st
	}
	return l.Code()
}

// Backfill adds every name missing from a locale file, translated into that
// file's language. Files whose name is not a supported language code are
// ignored; complete files are left untouched.
func (s *Service) Backfill(ctx context.Context, names []string) (*BackfillReport, error) {
	files, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}

	report := &BackfillReport{}
	for _, file := range files {
		code, ok := locales.CodeFromFileName(file)
		if !ok {
			continue
		}
		lang, err := languages.Parse(code)
		if err != nil {
			s.logger.Debug(ctx, "skipping file", "file", file)
			continue
		}

		loc, err := s.load(ctx, file)
		if err != nil {
			return report, err
		}

		added := 0
		for _, name := range names {
			if loc.Has(name) {
				continue
			}
			tr, err := s.translator.Translate(ctx, name, lang)
			if err != nil {
				return report, fmt.Errorf("%s: translate %q: %w", file, name, err)
			}
			loc.Set(name, tr)
			added++
		}

		if added == 0 {
			report.UpToDate = append(report.UpToDate, file)
			s.logger.Info(ctx, "locale up to date", "file", file)
			continue
		}

		if err := s.save(ctx, file, loc); err != nil {
			return report, err
		}
		report.Updated = append(report.Updated, file)
		s.logger.Info(ctx, "locale updated", "file", file, "added", added)
	}

	return report, nil
}

func (s *Service) load(ctx context.Context, file string) (*locales.Locale, error) {
	data, err := s.store.Get(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}
	loc, err := locales.DecodeLocale(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", file, err)
	}
	return loc, nil
}

func (s *Service) save(ctx context.Context, file string, loc *locales.Locale) error {
	data, err := locales.EncodeLocale(loc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", file, err)
	}
	if err := s.store.Put(ctx, file, data); err != nil {
		return fmt.Errorf("write %s: %w", file, err)
	}
	return nil
}

type loadedManifest struct {
	*locales.Manifest
	created bool
}

// loadManifest reads the manifest, or starts one holding only the source
// language when the store has none yet.
func (s *Service) loadManifest(ctx context.Context, source languages.Language) (*loadedManifest, error) {
	data, err := s.store.Get(ctx, s.manifestName)
	if errors.Is(err, common.ErrorNotFound) {
		m := &locales.Manifest{}
		m.Register(source)
		return &loadedManifest{Manifest: m, created: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	m, err := locales.ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &loadedManifest{Manifest: m}, nil
}
