package addresses

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeRepo struct {
	byID map[string]Address
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: map[string]Address{}}
}

func (r *fakeRepo) Create(ctx context.Context, a Address) error {
	r.byID[a.ID] = a
	return nil
}

func (r *fakeRepo) Update(ctx context.Context, a Address) error {
	if _, ok := r.byID[a.ID]; !ok {
		return errors.New("not found")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return errors.New("not found")
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (Address, error) {
	a, ok := r.byID[id]
	if !ok {
		return Address{}, errors.New("not found")
	}
	return a, nil
}

func (r *fakeRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]Address, error) {
	out := make([]Address, 0)
	for _, a := range r.byID {
		if a.OwnerUserID == ownerUserID {
			out = append(out, a)
		}
	}
	return out, nil
}

func testService(repo *fakeRepo) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time { return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func mustSave(t *testing.T, svc *Service, owner string, in SaveInput) Address {
	t.Helper()
	a, err := svc.Save(context.Background(), owner, in)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	return a
}

func primaryCount(t *testing.T, repo *fakeRepo, owner string) int {
	t.Helper()
	n := 0
	for _, a := range repo.byID {
		if a.OwnerUserID == owner && a.IsPrimary {
			n++
		}
	}
	return n
}

func TestSave_NewPrimaryDemotesPrevious(t *testing.T) {
	repo := newFakeRepo()
	svc := testService(repo)

	home := mustSave(t, svc, "owner-1", SaveInput{Label: "Dom", Street: "Lwowska 12", City: "Rzeszów", IsPrimary: true})
	office := mustSave(t, svc, "owner-1", SaveInput{Label: "Biuro", Street: "Rejtana 3", City: "Rzeszów", IsPrimary: true})

	if got := primaryCount(t, repo, "owner-1"); got != 1 {
		t.Fatalf("expected a single primary address, got %d", got)
	}
	if repo.byID[home.ID].IsPrimary {
		t.Fatal("first address should have been demoted")
	}
	if !repo.byID[office.ID].IsPrimary {
		t.Fatal("latest primary should win")
	}
}

func TestSave_WithIDEditsInPlace(t *testing.T) {
	repo := newFakeRepo()
	svc := testService(repo)

	a := mustSave(t, svc, "owner-1", SaveInput{Label: "Dom", Street: "Lwowska 12", City: "Rzeszów"})
	edited := mustSave(t, svc, "owner-1", SaveInput{ID: a.ID, Label: "Dom", Street: "Lwowska 14", City: "Rzeszów", Notes: "kod 2580"})

	if edited.ID != a.ID {
		t.Fatalf("edit created a new address: %s vs %s", edited.ID, a.ID)
	}
	if len(repo.byID) != 1 {
		t.Fatalf("expected one stored address, got %d", len(repo.byID))
	}
	if repo.byID[a.ID].Street != "Lwowska 14" || repo.byID[a.ID].Notes != "kod 2580" {
		t.Fatalf("edit not persisted: %+v", repo.byID[a.ID])
	}
}

func TestSave_Validation(t *testing.T) {
	svc := testService(newFakeRepo())

	cases := []struct {
		name string
		in   SaveInput
	}{
		{"no label", SaveInput{Street: "Lwowska 12", City: "Rzeszów"}},
		{"no street", SaveInput{Label: "Dom", City: "Rzeszów"}},
		{"no city", SaveInput{Label: "Dom", Street: "Lwowska 12"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Save(context.Background(), "owner-1", tc.in); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestSave_RejectsEditingForeignAddress(t *testing.T) {
	repo := newFakeRepo()
	svc := testService(repo)

	a := mustSave(t, svc, "owner-1", SaveInput{Label: "Dom", Street: "Lwowska 12", City: "Rzeszów"})

	_, err := svc.Save(context.Background(), "owner-2", SaveInput{ID: a.ID, Label: "Dom", Street: "Inna 1", City: "Kraków"})
	if !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
}

func TestSetPrimary_MovesTheFlag(t *testing.T) {
	repo := newFakeRepo()
	svc := testService(repo)

	home := mustSave(t, svc, "owner-1", SaveInput{Label: "Dom", Street: "Lwowska 12", City: "Rzeszów", IsPrimary: true})
	office := mustSave(t, svc, "owner-1", SaveInput{Label: "Biuro", Street: "Rejtana 3", City: "Rzeszów"})

	if err := svc.SetPrimary(context.Background(), "owner-1", office.ID); err != nil {
		t.Fatalf("SetPrimary: %v", err)
	}

	if got := primaryCount(t, repo, "owner-1"); got != 1 {
		t.Fatalf("expected a single primary address, got %d", got)
	}
	if repo.byID[home.ID].IsPrimary || !repo.byID[office.ID].IsPrimary {
		t.Fatalf("flag did not move: home=%v office=%v", repo.byID[home.ID].IsPrimary, repo.byID[office.ID].IsPrimary)
	}
}

func TestSetPrimary_RejectsForeignAddress(t *testing.T) {
	repo := newFakeRepo()
	svc := testService(repo)

	a := mustSave(t, svc, "owner-1", SaveInput{Label: "Dom", Street: "Lwowska 12", City: "Rzeszów"})

	if err := svc.SetPrimary(context.Background(), "owner-2", a.ID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
}

func TestDelete_OnlyOwner(t *testing.T) {
	repo := newFakeRepo()
	svc := testService(repo)

	a := mustSave(t, svc, "owner-1", SaveInput{Label: "Dom", Street: "Lwowska 12", City: "Rzeszów"})

	if err := svc.Delete(context.Background(), "owner-2", a.ID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if err := svc.Delete(context.Background(), "owner-1", a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected empty repo, got %d", len(repo.byID))
	}
}
