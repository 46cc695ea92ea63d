package usecase

import (
	"context"
	"encoding/json"
	"sync"

	"resume-builder/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SnapshotStore is the single-slot persistence collaborator. Load
// reports found=false when no snapshot exists yet.
type SnapshotStore interface {
	Load(ctx context.Context) (data []byte, found bool, err error)
	Save(ctx context.Context, data []byte) error
}

// Store owns the resume aggregate. Every mutation replaces the whole
// aggregate with a new snapshot and persists it; mutations are total
// and never return an error to the caller.
type Store struct {
	mu      sync.Mutex
	current model.Resume
	repo    SnapshotStore
	log     zerolog.Logger
}

// NewStore loads the persisted snapshot, falling back to the default
// aggregate when the slot is empty or the snapshot does not validate.
func NewStore(ctx context.Context, repo SnapshotStore, log zerolog.Logger) *Store {
	s := &Store{repo: repo, log: log.With().Str("component", "store").Logger()}
	s.current = s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) model.Resume {
	if s.repo == nil {
		return model.DefaultResume()
	}
	data, found, err := s.repo.Load(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("loading snapshot failed, starting from default")
		return model.DefaultResume()
	}
	if !found {
		return model.DefaultResume()
	}
	if err := model.ValidateSnapshot(data); err != nil {
		s.log.Warn().Err(err).Msg("persisted snapshot is corrupt, starting from default")
		return model.DefaultResume()
	}
	var r model.Resume
	if err := json.Unmarshal(data, &r); err != nil {
		s.log.Warn().Err(err).Msg("persisted snapshot unreadable, starting from default")
		return model.DefaultResume()
	}
	return r.Normalize()
}

// Snapshot returns a deep copy of the current aggregate.
func (s *Store) Snapshot() model.Resume {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// commit installs the new snapshot and persists it. Persistence is
// fire-and-forget: a failed save is logged, never surfaced.
func (s *Store) commit(ctx context.Context, next model.Resume) {
	s.current = next
	if s.repo == nil {
		return
	}
	data, err := json.Marshal(next)
	if err != nil {
		s.log.Error().Err(err).Msg("marshaling snapshot")
		return
	}
	if err := s.repo.Save(ctx, data); err != nil {
		s.log.Warn().Err(err).Msg("persisting snapshot failed")
	}
}

// UpdatePersonalInfo shallow-merges the set fields of the patch.
func (s *Store) UpdatePersonalInfo(ctx context.Context, patch model.PersonalInfoPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.current.Clone()
	patch.ApplyTo(&next.PersonalInfo)
	s.commit(ctx, next)
}

// UpdateTemplate replaces the template selector. The value is stored
// verbatim; renderers apply the classic fallback at render time.
func (s *Store) UpdateTemplate(ctx context.Context, t model.Template) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.current.Clone()
	next.Template = t
	s.commit(ctx, next)
}

// Reset replaces the aggregate with the default empty aggregate.
func (s *Store) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commit(ctx, model.DefaultResume())
}

// AddExperience appends the entry with a fresh id and returns the id.
func (s *Store) AddExperience(ctx context.Context, exp model.Experience) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp.ID = uuid.New().String()
	next := s.current.Clone()
	next.Experience = append(next.Experience, exp)
	s.commit(ctx, next)
	return exp.ID
}

// UpdateExperience merges the patch into the matching entry in place.
// A missing id is a silent no-op.
func (s *Store) UpdateExperience(ctx context.Context, id string, patch model.ExperiencePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.current.Clone()
	for i := range next.Experience {
		if next.Experience[i].ID == id {
			patch.ApplyTo(&next.Experience[i])
			s.commit(ctx, next)
			return
		}
	}
}

// RemoveExperience deletes the matching entry; no-op if absent.
func (s *Store) RemoveExperience(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.current.Clone()
	for i := range next.Experience {
		if next.Experience[i].ID == id {
			next.Experience = append(next.Experience[:i], next.Experience[i+1:]...)
			s.commit(ctx, next)
			return
		}
	}
}

func (s *Store) AddEducation(ctx context.Context, edu model.Education) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	edu.ID = uuid.New().String()
	next := s.current.Clone()
	next.Education = append(next.Education, edu)
	s.commit(ctx, next)
	return edu.ID
}

func (s *Store) UpdateEducation(ctx context.Context, id string, patch model.EducationPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.current.Clone()
	for i := range next.Education {
		if next.Education[i].ID == id {
			patch.ApplyTo(&next.Education[i])
			s.commit(ctx, next)
			return
		}
	}
}

func (s *Store) RemoveEducation(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.current.Clone()
	for i := range next.Education {
		if next.Education[i].ID == id {
			next.Education = append(next.Education[:i], next.Education[i+1:]...)
			s.commit(ctx, next)
			return
		}
	}
}

func (s *Store) AddSkill(ctx context.Context, skill model.Skill) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	skill.ID = uuid.New().String()
	skill.Level = model.ClampLevel(skill.Level)
	next := s.current.Clone()
	next.Skills = append(next.Skills, skill)
	s.commit(ctx, next)
	return skill.ID
}

func (s *Store) UpdateSkill(ctx context.Context, id string, patch model.SkillPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.current.Clone()
	for i := range next.Skills {
		if next.Skills[i].ID == id {
			patch.ApplyTo(&next.Skills[i])
			s.commit(ctx, next)
			return
		}
	}
}

func (s *Store) RemoveSkill(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.current.Clone()
	for i := range next.Skills {
		if next.Skills[i].ID == id {
			next.Skills = append(next.Skills[:i], next.Skills[i+1:]...)
			s.commit(ctx, next)
			return
		}
	}
}

func (s *Store) AddLanguage(ctx context.Context, lang model.LanguageSkill) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	lang.ID = uuid.New().String()
	next := s.current.Clone()
	next.Languages = append(next.Languages, lang)
	s.commit(ctx, next)
	return lang.ID
}

func (s *Store) UpdateLanguage(ctx context.Context, id string, patch model.LanguageSkillPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.current.Clone()
	for i := range next.Languages {
		if next.Languages[i].ID == id {
			patch.ApplyTo(&next.Languages[i])
			s.commit(ctx, next)
			return
		}
	}
}

func (s *Store) RemoveLanguage(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.current.Clone()
	for i := range next.Languages {
		if next.Languages[i].ID == id {
			next.Languages = append(next.Languages[:i], next.Languages[i+1:]...)
			s.commit(ctx, next)
			return
		}
	}
}

func (s *Store) AddSocialMedia(ctx context.Context, link model.SocialLink) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	link.ID = uuid.New().String()
	next := s.current.Clone()
	next.SocialMedia = append(next.SocialMedia, link)
	s.commit(ctx, next)
	return link.ID
}

func (s *Store) UpdateSocialMedia(ctx context.Context, id string, patch model.SocialLinkPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.current.Clone()
	for i := range next.SocialMedia {
		if next.SocialMedia[i].ID == id {
			patch.ApplyTo(&next.SocialMedia[i])
			s.commit(ctx, next)
			return
		}
	}
}

func (s *Store) RemoveSocialMedia(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.current.Clone()
	for i := range next.SocialMedia {
		if next.SocialMedia[i].ID == id {
			next.SocialMedia = append(next.SocialMedia[:i], next.SocialMedia[i+1:]...)
			s.commit(ctx, next)
			return
		}
	}
}
