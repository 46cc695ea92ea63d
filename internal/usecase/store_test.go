package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"resume-builder/internal/model"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
)

// memStore is an in-memory SnapshotStore recording saves.
type memStore struct {
	data  []byte
	found bool
	saves int
}

func (m *memStore) Load(ctx context.Context) ([]byte, bool, error) {
	return m.data, m.found, nil
}

func (m *memStore) Save(ctx context.Context, data []byte) error {
	m.data = data
	m.found = true
	m.saves++
	return nil
}

func newTestStore(t *testing.T) (*Store, *memStore) {
	t.Helper()
	repo := &memStore{}
	return NewStore(context.Background(), repo, zerolog.Nop()), repo
}

func strp(s string) *string { return &s }
func boolp(b bool) *bool    { return &b }

func TestAddRemoveExperienceRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	before := store.Snapshot()

	id := store.AddExperience(ctx, model.Experience{
		Company:     "Acme",
		Position:    "Engineer",
		StartDate:   "2020-01",
		EndDate:     "2022-06",
		Description: "Built things",
	})

	snap := store.Snapshot()
	if len(snap.Experience) != 1 {
		t.Fatalf("experience length = %d, want 1", len(snap.Experience))
	}
	if snap.Experience[0].ID != id || snap.Experience[0].Company != "Acme" {
		t.Errorf("unexpected entry: %+v", snap.Experience[0])
	}

	store.RemoveExperience(ctx, id)
	after := store.Snapshot()
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("add+remove did not restore the aggregate:\n%s", diff)
	}
}

func TestUpdateChangesOnlyNamedFields(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	first := store.AddExperience(ctx, model.Experience{Company: "Acme", Position: "Engineer", StartDate: "2020-01", EndDate: "2022-06", Description: "Built things"})
	second := store.AddExperience(ctx, model.Experience{Company: "Globex", Position: "Analyst", StartDate: "2019-01"})
	before := store.Snapshot()

	store.UpdateExperience(ctx, first, model.ExperiencePatch{Position: strp("Staff Engineer"), IsPresent: boolp(true)})

	after := store.Snapshot()
	got := after.Experience[0]
	if got.Position != "Staff Engineer" || !got.IsPresent {
		t.Errorf("patched fields not applied: %+v", got)
	}
	if got.Company != "Acme" || got.StartDate != "2020-01" || got.EndDate != "2022-06" || got.Description != "Built things" || got.ID != first {
		t.Errorf("unpatched fields changed: %+v", got)
	}
	if diff := cmp.Diff(before.Experience[1], after.Experience[1]); diff != "" {
		t.Errorf("other entry changed:\n%s", diff)
	}
	if after.Experience[1].ID != second {
		t.Errorf("entry order changed")
	}
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	store, repo := newTestStore(t)
	store.AddExperience(ctx, model.Experience{Company: "Acme"})
	before := store.Snapshot()
	saves := repo.saves

	store.UpdateExperience(ctx, "no-such-id", model.ExperiencePatch{Company: strp("Changed")})
	store.RemoveExperience(ctx, "no-such-id")
	store.RemoveSkill(ctx, "no-such-id")

	if diff := cmp.Diff(before, store.Snapshot()); diff != "" {
		t.Errorf("aggregate changed on lookup miss:\n%s", diff)
	}
	if repo.saves != saves {
		t.Errorf("lookup miss triggered persistence: %d saves, want %d", repo.saves, saves)
	}
}

func TestUpdatePersonalInfoMergesFields(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	store.UpdatePersonalInfo(ctx, model.PersonalInfoPatch{Name: strp("Jane Doe"), Email: strp("jane@example.com")})
	store.UpdatePersonalInfo(ctx, model.PersonalInfoPatch{JobTitle: strp("Engineer")})

	info := store.Snapshot().PersonalInfo
	if info.Name != "Jane Doe" || info.Email != "jane@example.com" || info.JobTitle != "Engineer" {
		t.Errorf("merge lost fields: %+v", info)
	}
}

func TestEverySectionAddUpdateRemove(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	eduID := store.AddEducation(ctx, model.Education{Institution: "State U", Degree: "BSc", Field: "CS"})
	skillID := store.AddSkill(ctx, model.Skill{Name: "Go", Level: 9})
	langID := store.AddLanguage(ctx, model.LanguageSkill{Name: "English", Proficiency: model.ProficiencyFluent})
	socialID := store.AddSocialMedia(ctx, model.SocialLink{Platform: "GitHub", URL: "https://github.com/janedoe"})

	snap := store.Snapshot()
	if snap.Skills[0].Level != 5 {
		t.Errorf("skill level not clamped: %d", snap.Skills[0].Level)
	}

	store.UpdateEducation(ctx, eduID, model.EducationPatch{Degree: strp("MSc")})
	native := model.ProficiencyNative
	store.UpdateLanguage(ctx, langID, model.LanguageSkillPatch{Proficiency: &native})
	lvl := 4
	store.UpdateSkill(ctx, skillID, model.SkillPatch{Level: &lvl})
	store.UpdateSocialMedia(ctx, socialID, model.SocialLinkPatch{Platform: strp("GitLab")})

	snap = store.Snapshot()
	if snap.Education[0].Degree != "MSc" || snap.Languages[0].Proficiency != model.ProficiencyNative ||
		snap.Skills[0].Level != 4 || snap.SocialMedia[0].Platform != "GitLab" {
		t.Errorf("updates not applied: %+v", snap)
	}

	store.RemoveEducation(ctx, eduID)
	store.RemoveSkill(ctx, skillID)
	store.RemoveLanguage(ctx, langID)
	store.RemoveSocialMedia(ctx, socialID)

	snap = store.Snapshot()
	if len(snap.Education)+len(snap.Skills)+len(snap.Languages)+len(snap.SocialMedia) != 0 {
		t.Errorf("lists not emptied: %+v", snap)
	}
}

func TestResetRestoresDefault(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	store.UpdatePersonalInfo(ctx, model.PersonalInfoPatch{Name: strp("Jane Doe")})
	store.AddSkill(ctx, model.Skill{Name: "Go", Level: 5})

	store.Reset(ctx)

	if diff := cmp.Diff(model.DefaultResume(), store.Snapshot()); diff != "" {
		t.Errorf("reset did not restore default:\n%s", diff)
	}
}

func TestEveryMutationPersists(t *testing.T) {
	ctx := context.Background()
	store, repo := newTestStore(t)

	store.UpdatePersonalInfo(ctx, model.PersonalInfoPatch{Name: strp("Jane")})
	id := store.AddExperience(ctx, model.Experience{Company: "Acme"})
	store.UpdateExperience(ctx, id, model.ExperiencePatch{Position: strp("Engineer")})
	store.UpdateTemplate(ctx, model.TemplateModern)
	store.Reset(ctx)

	if repo.saves != 5 {
		t.Errorf("saves = %d, want 5", repo.saves)
	}
}

func TestLoadFromPersistedSnapshot(t *testing.T) {
	ctx := context.Background()
	store, repo := newTestStore(t)
	store.UpdatePersonalInfo(ctx, model.PersonalInfoPatch{Name: strp("Jane Doe")})
	store.UpdateTemplate(ctx, model.TemplateCreative)
	want := store.Snapshot()

	reloaded := NewStore(ctx, repo, zerolog.Nop())
	if diff := cmp.Diff(want, reloaded.Snapshot()); diff != "" {
		t.Errorf("reloaded snapshot differs:\n%s", diff)
	}
}

func TestCorruptSnapshotFallsBackToDefault(t *testing.T) {
	ctx := context.Background()

	for name, data := range map[string][]byte{
		"not json":     []byte("{nope"),
		"wrong shape":  []byte(`{"personalInfo": "not an object"}`),
		"missing keys": []byte(`{"template": "classic"}`),
	} {
		repo := &memStore{data: data, found: true}
		store := NewStore(ctx, repo, zerolog.Nop())
		if diff := cmp.Diff(model.DefaultResume(), store.Snapshot()); diff != "" {
			t.Errorf("%s: expected default aggregate:\n%s", name, diff)
		}
	}
}

func TestSnapshotDoesNotAliasInternalState(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	store.AddSkill(ctx, model.Skill{Name: "Go", Level: 5})

	snap := store.Snapshot()
	snap.Skills[0].Name = "mutated"
	snap.PersonalInfo.Name = "mutated"

	fresh := store.Snapshot()
	if fresh.Skills[0].Name == "mutated" || fresh.PersonalInfo.Name == "mutated" {
		t.Error("snapshot aliases store state")
	}
}

func TestPersistedSnapshotValidates(t *testing.T) {
	ctx := context.Background()
	store, repo := newTestStore(t)
	store.UpdatePersonalInfo(ctx, model.PersonalInfoPatch{Name: strp("Jane Doe")})
	store.AddExperience(ctx, model.Experience{Company: "Acme", Position: "Engineer"})

	if err := model.ValidateSnapshot(repo.data); err != nil {
		t.Errorf("persisted snapshot fails schema validation: %v", err)
	}
	var round model.Resume
	if err := json.Unmarshal(repo.data, &round); err != nil {
		t.Fatalf("persisted snapshot unreadable: %v", err)
	}
}
