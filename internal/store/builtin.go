package store

import (
	"github.com/amishk599/skillmap/internal/course"
	"github.com/amishk599/skillmap/internal/skill"
)

// CatalogSource supplies the vocabulary and course catalog at start-up.
type CatalogSource interface {
	Load() (skill.Vocabulary, course.Catalog, error)
}

var (
	_ CatalogSource = (*SQLiteCatalog)(nil)
	_ CatalogSource = BuiltinCatalog{}
)

// BuiltinCatalog serves the compiled-in defaults when no catalog file is configured.
type BuiltinCatalog struct{}

func (BuiltinCatalog) Load() (skill.Vocabulary, course.Catalog, error) {
	return skill.DefaultVocabulary(), course.DefaultCatalog(), nil
}
