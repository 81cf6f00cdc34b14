package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"mwaniki-news/pkg/models"
)

var (
	// ErrUnavailable marks reads where neither the writable copy nor the
	// bundled seed could be used.
	ErrUnavailable = errors.New("article store unavailable")

	ErrNotFound = errors.New("article not found")
)

// Store owns the persisted article collection: one writable JSON array,
// seeded from a bundled default on first read. All writes are full
// replacements serialized on the store mutex, so concurrent saves resolve
// to a deterministic last-write-wins instead of interleaving.
type Store struct {
	path     string
	seedPath string
	log      *zap.Logger
	validate *validator.Validate

	mu sync.Mutex
}

func NewStore(path, seedPath string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		path:     path,
		seedPath: seedPath,
		log:      log,
		validate: validator.New(),
	}
}

// LoadAll returns the full current collection, copying the bundled seed
// into place iff no writable copy exists yet. A collection the admin has
// legitimately emptied stays empty; seeding never re-runs. Records that
// fail shape or date checks are skipped with a warning rather than
// failing the whole read.
func (s *Store) LoadAll() ([]models.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *Store) loadLocked() ([]models.Article, error) {
	if err := s.seedLocked(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrUnavailable, s.path, err)
	}

	var raw []models.Article
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: corrupt data file %s: %v", ErrUnavailable, s.path, err)
	}

	articles := make([]models.Article, 0, len(raw))
	for _, a := range raw {
		if err := s.checkShape(a); err != nil {
			s.log.Warn("skipping malformed article",
				zap.Int("id", a.ID),
				zap.String("title", a.Title),
				zap.Error(err))
			continue
		}
		articles = append(articles, a)
	}
	return articles, nil
}

func (s *Store) seedLocked() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("%w: stat %s: %v", ErrUnavailable, s.path, err)
	}

	data, err := os.ReadFile(s.seedPath)
	if err != nil {
		return fmt.Errorf("%w: no writable copy and seed %s unreadable: %v", ErrUnavailable, s.seedPath, err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := s.writeFile(data); err != nil {
		return fmt.Errorf("%w: seeding %s: %v", ErrUnavailable, s.path, err)
	}

	s.log.Info("seeded article store",
		zap.String("path", s.path),
		zap.String("seed", s.seedPath))
	return nil
}

// ReplaceAll overwrites the persisted collection with exactly the given
// articles. The collection is validated first and rejected wholesale with
// a ValidationError on any malformed record, duplicate id or unknown
// category. On an IO error the persisted and in-memory views may
// disagree; the error is always returned so the caller can say so.
func (s *Store) ReplaceAll(articles []models.Article) error {
	if err := s.Validate(articles); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replaceLocked(articles)
}

func (s *Store) replaceLocked(articles []models.Article) error {
	if articles == nil {
		articles = []models.Article{}
	}
	data, err := json.MarshalIndent(articles, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	if err := s.writeFile(data); err != nil {
		return fmt.Errorf("writing article store: %w", err)
	}
	return nil
}

// Get returns the article with the given id.
func (s *Store) Get(id int) (models.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	articles, err := s.loadLocked()
	if err != nil {
		return models.Article{}, err
	}
	for _, a := range articles {
		if a.ID == id {
			return a, nil
		}
	}
	return models.Article{}, ErrNotFound
}

// Upsert replaces the record with a matching id, or appends the article
// when the id is new. The load-modify-replace runs under the store mutex
// so it cannot interleave with a concurrent ReplaceAll.
func (s *Store) Upsert(article models.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	articles, err := s.loadLocked()
	if err != nil {
		return err
	}

	replaced := false
	for i, a := range articles {
		if a.ID == article.ID {
			articles[i] = article
			replaced = true
			break
		}
	}
	if !replaced {
		articles = append(articles, article)
	}

	if err := s.Validate(articles); err != nil {
		return err
	}
	return s.replaceLocked(articles)
}

// Remove deletes the record with the given id; ErrNotFound when absent.
func (s *Store) Remove(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	articles, err := s.loadLocked()
	if err != nil {
		return err
	}

	kept := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(articles) {
		return ErrNotFound
	}
	return s.replaceLocked(kept)
}

// Validate applies the write contract: struct shape, parseable date,
// unique ids and a known category for every record.
func (s *Store) Validate(articles []models.Article) error {
	var verr models.ValidationError
	seen := make(map[int]int, len(articles))

	for i, a := range articles {
		field := func(name string) string {
			return fmt.Sprintf("articles[%d].%s", i, name)
		}

		if err := s.checkShape(a); err != nil {
			var fieldErrs validator.ValidationErrors
			if errors.As(err, &fieldErrs) {
				for _, fe := range fieldErrs {
					verr.Add(field(fe.Field()), "failed '"+fe.Tag()+"' constraint")
				}
			} else {
				verr.Add(field("date"), err.Error())
			}
		}
		if !KnownCategory(a.Category) {
			verr.Add(field("category"), fmt.Sprintf("unknown category %q", a.Category))
		}
		if prev, dup := seen[a.ID]; dup {
			verr.Add(field("id"), fmt.Sprintf("duplicate id %d, first used by articles[%d]", a.ID, prev))
		} else {
			seen[a.ID] = i
		}
	}

	if verr.HasAny() {
		return &verr
	}
	return nil
}

// checkShape is the per-record sanity used on both read and write. It
// deliberately does not check the category vocabulary: an orphaned
// category hides a record from filtered navigation but does not make it
// malformed.
func (s *Store) checkShape(a models.Article) error {
	if err := s.validate.Struct(a); err != nil {
		return err
	}
	if _, ok := a.ParsedDate(); !ok {
		return fmt.Errorf("unparseable date %q", a.Date)
	}
	return nil
}

// writeFile persists via temp-file-then-rename so a failed write can
// never leave the collection half-old/half-new. One retry on error.
func (s *Store) writeFile(data []byte) error {
	var err error
	for attempt := 0; attempt < 2; attempt++ {
		if err = atomicWrite(s.path, data); err == nil {
			return nil
		}
	}
	return err
}

func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".articles-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
