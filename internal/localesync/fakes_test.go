package localesync

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/dmitrijs2005/recruitkit/internal/common"
	"github.com/dmitrijs2005/recruitkit/internal/languages"
)

type memStore struct {
	files  map[string][]byte
	writes map[string]int
}

func newMemStore(files map[string]string) *memStore {
	s := &memStore{files: map[string][]byte{}, writes: map[string]int{}}
	for k, v := range files {
		s.files[k] = []byte(v)
	}
	return s
}

func (s *memStore) List(context.Context) ([]string, error) {
	names := make([]string, 0, len(s.files))
	for k := range s.files {
		names = append(names, k)
	}
	sort.Strings(names)
	return names, nil
}

func (s *memStore) Get(_ context.Context, name string) ([]byte, error) {
	data, ok := s.files[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, common.ErrorNotFound)
	}
	return data, nil
}

func (s *memStore) Put(_ context.Context, name string, data []byte) error {
	s.files[name] = data
	s.writes[name]++
	return nil
}

// prefixTranslator "translates" by tagging text with the target code.
type prefixTranslator struct {
	calls  int
	failOn string
}

func (p *prefixTranslator) Translate(_ context.Context, text string, target languages.Language) (string, error) {
	p.calls++
	if text == p.failOn {
		return "", errors.New("translation service unavailable")
	}
	return target.Code() + ":" + text, nil
}
