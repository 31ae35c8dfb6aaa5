package dogs

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeRepo struct {
	byID map[string]Dog
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: map[string]Dog{}}
}

func (r *fakeRepo) Create(ctx context.Context, d Dog) error {
	r.byID[d.ID] = d
	return nil
}

func (r *fakeRepo) Update(ctx context.Context, d Dog) error {
	if _, ok := r.byID[d.ID]; !ok {
		return errors.New("not found")
	}
	r.byID[d.ID] = d
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return errors.New("not found")
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (Dog, error) {
	d, ok := r.byID[id]
	if !ok {
		return Dog{}, errors.New("not found")
	}
	return d, nil
}

func (r *fakeRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]Dog, error) {
	out := make([]Dog, 0)
	for _, d := range r.byID {
		if d.OwnerUserID == ownerUserID {
			out = append(out, d)
		}
	}
	return out, nil
}

type fakeGuard struct {
	inUse bool
	err   error
}

func (g fakeGuard) DogInUse(ctx context.Context, dogID string) (bool, error) {
	return g.inUse, g.err
}

func testService(repo *fakeRepo, guard OrderGuard) *Service {
	svc := NewService(repo, guard)
	svc.now = func() time.Time { return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func mustCreate(t *testing.T, svc *Service, owner string) Dog {
	t.Helper()
	d, err := svc.Create(context.Background(), owner, CreateInput{
		Name:  "Rex",
		Breed: "Labrador",
		Age:   4,
		Image: "data:image/png;base64,iVBORw0KGgo=",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return d
}

func TestCreate_RequiresAllFields(t *testing.T) {
	svc := testService(newFakeRepo(), nil)

	cases := []struct {
		name string
		in   CreateInput
	}{
		{"no name", CreateInput{Breed: "Labrador", Age: 4, Image: "x"}},
		{"no breed", CreateInput{Name: "Rex", Age: 4, Image: "x"}},
		{"negative age", CreateInput{Name: "Rex", Breed: "Labrador", Age: -1, Image: "x"}},
		{"no image", CreateInput{Name: "Rex", Breed: "Labrador", Age: 4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), "owner-1", tc.in); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestCreate_TrimsAndPersists(t *testing.T) {
	repo := newFakeRepo()
	svc := testService(repo, nil)

	d, err := svc.Create(context.Background(), "owner-1", CreateInput{
		Name:  "  Rex ",
		Breed: " Labrador ",
		Age:   4,
		Image: "data:image/png;base64,iVBORw0KGgo=",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if d.Name != "Rex" || d.Breed != "Labrador" {
		t.Fatalf("expected trimmed fields, got %q / %q", d.Name, d.Breed)
	}
	if _, ok := repo.byID[d.ID]; !ok {
		t.Fatal("dog not persisted")
	}
}

func TestUpdate_PatchSemantics(t *testing.T) {
	repo := newFakeRepo()
	svc := testService(repo, nil)
	d := mustCreate(t, svc, "owner-1")

	age := 5
	updated, err := svc.Update(context.Background(), d.ID, "owner-1", UpdateInput{Age: &age})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Age != 5 {
		t.Fatalf("expected age 5, got %d", updated.Age)
	}
	if updated.Name != "Rex" || updated.Breed != "Labrador" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}

	empty := ""
	if _, err := svc.Update(context.Background(), d.ID, "owner-1", UpdateInput{Name: &empty}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput clearing name, got %v", err)
	}
}

func TestUpdate_RejectsForeignDog(t *testing.T) {
	repo := newFakeRepo()
	svc := testService(repo, nil)
	d := mustCreate(t, svc, "owner-1")

	name := "Azor"
	if _, err := svc.Update(context.Background(), d.ID, "owner-2", UpdateInput{Name: &name}); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
}

func TestDelete_BlockedWhileDogHasActiveOrder(t *testing.T) {
	repo := newFakeRepo()
	svc := testService(repo, fakeGuard{inUse: true})
	d := mustCreate(t, svc, "owner-1")

	if err := svc.Delete(context.Background(), d.ID, "owner-1"); !errors.Is(err, ErrDogInUse) {
		t.Fatalf("expected ErrDogInUse, got %v", err)
	}
	if _, ok := repo.byID[d.ID]; !ok {
		t.Fatal("dog should survive a blocked delete")
	}
}

func TestDelete_AllowedWhenGuardClears(t *testing.T) {
	repo := newFakeRepo()
	svc := testService(repo, fakeGuard{inUse: false})
	d := mustCreate(t, svc, "owner-1")

	if err := svc.Delete(context.Background(), d.ID, "owner-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected empty repo, got %d", len(repo.byID))
	}
}

func TestDelete_RejectsForeignDog(t *testing.T) {
	repo := newFakeRepo()
	svc := testService(repo, nil)
	d := mustCreate(t, svc, "owner-1")

	if err := svc.Delete(context.Background(), d.ID, "owner-2"); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
}
