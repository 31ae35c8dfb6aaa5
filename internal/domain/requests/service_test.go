package requests

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"doggo-marketplace/internal/domain/addresses"
	"doggo-marketplace/internal/domain/dogs"
	"doggo-marketplace/internal/domain/orders"
	"doggo-marketplace/internal/domain/walkers"
)

type fakeRepo struct {
	byID map[string]Request
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: map[string]Request{}}
}

func (r *fakeRepo) Create(ctx context.Context, req Request) error {
	r.byID[req.ID] = req
	return nil
}

func (r *fakeRepo) Update(ctx context.Context, req Request) error {
	if _, ok := r.byID[req.ID]; !ok {
		return errors.New("not found")
	}
	r.byID[req.ID] = req
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return errors.New("not found")
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (Request, error) {
	req, ok := r.byID[id]
	if !ok {
		return Request{}, errors.New("not found")
	}
	return req, nil
}

func (r *fakeRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]Request, error) {
	out := make([]Request, 0)
	for _, req := range r.byID {
		if req.OwnerUserID == ownerUserID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListOpen(ctx context.Context) ([]Request, error) {
	out := make([]Request, 0)
	for _, req := range r.byID {
		if req.Status == StatusActive {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type fakeDogFinder struct{ dog dogs.Dog }

func (f fakeDogFinder) GetByID(ctx context.Context, id string) (dogs.Dog, error) {
	if id != f.dog.ID {
		return dogs.Dog{}, errors.New("not found")
	}
	return f.dog, nil
}

type fakeAddressFinder struct{ addr addresses.Address }

func (f fakeAddressFinder) GetByID(ctx context.Context, id string) (addresses.Address, error) {
	if id != f.addr.ID {
		return addresses.Address{}, errors.New("not found")
	}
	return f.addr, nil
}

type fakeOrderCreator struct {
	created []orders.Order
}

func (f *fakeOrderCreator) CreateFromRequest(ctx context.Context, walkerUserID string, in orders.FromRequestInput) (orders.Order, error) {
	o := orders.Order{
		ID:          "order-" + walkerUserID,
		Dog:         in.Dog,
		OwnerUserID: in.OwnerUserID,
		ServiceType: in.ServiceType,
		Status:      orders.StatusPending,
		TotalCost:   in.Price,
	}
	f.created = append(f.created, o)
	return o, nil
}

func testSetup() (*Service, *fakeRepo, *fakeOrderCreator, func() time.Time) {
	repo := newFakeRepo()
	creator := &fakeOrderCreator{}
	dog := dogs.Dog{ID: "d1", OwnerUserID: "owner-1", Name: "Max"}
	addr := addresses.Address{ID: "a1", OwnerUserID: "owner-1", Label: "Dom"}

	svc := NewService(repo, fakeDogFinder{dog: dog}, fakeAddressFinder{addr: addr}, creator)
	base := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	now := func() time.Time { return base }
	svc.now = now
	return svc, repo, creator, now
}

func mustAdd(t *testing.T, svc *Service) Request {
	t.Helper()
	req, err := svc.Add(context.Background(), "owner-1", AddInput{
		DogID:        "d1",
		Date:         "Dzisiaj",
		TimeSlot:     "16:00 - 17:00",
		ServiceTypes: []walkers.ServiceType{walkers.ServiceWalk},
		Price:        45,
		AddressID:    "a1",
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	return req
}

func TestAdd_SnapshotsDogAndAddressLabel(t *testing.T) {
	svc, _, _, _ := testSetup()

	req := mustAdd(t, svc)
	if req.Status != StatusActive {
		t.Fatalf("expected Active, got %s", req.Status)
	}
	if req.Dog.Name != "Max" {
		t.Fatalf("expected dog snapshot, got %+v", req.Dog)
	}
	if req.LocationLabel != "Dom" {
		t.Fatalf("expected address label in request, got %q", req.LocationLabel)
	}
}

func TestAdd_Validation(t *testing.T) {
	svc, _, _, _ := testSetup()

	cases := []struct {
		name string
		in   AddInput
	}{
		{"no services", AddInput{DogID: "d1", Date: "x", TimeSlot: "y", Price: 10, AddressID: "a1"}},
		{"bad service", AddInput{DogID: "d1", Date: "x", TimeSlot: "y", ServiceTypes: []walkers.ServiceType{"grooming"}, Price: 10, AddressID: "a1"}},
		{"no price", AddInput{DogID: "d1", Date: "x", TimeSlot: "y", ServiceTypes: []walkers.ServiceType{walkers.ServiceWalk}, AddressID: "a1"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Add(context.Background(), "owner-1", tc.in); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestAdd_RejectsForeignDog(t *testing.T) {
	svc, _, _, _ := testSetup()

	_, err := svc.Add(context.Background(), "someone-else", AddInput{
		DogID:        "d1",
		Date:         "Dzisiaj",
		TimeSlot:     "16:00 - 17:00",
		ServiceTypes: []walkers.ServiceType{walkers.ServiceWalk},
		Price:        45,
		AddressID:    "a1",
	})
	if !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
}

func TestAccept_CreatesOneOrderAndMarksFilled(t *testing.T) {
	svc, repo, creator, _ := testSetup()
	req := mustAdd(t, svc)

	o, err := svc.Accept(context.Background(), "walker-user-1", req.ID)
	if err != nil {
		t.Fatalf("Accept: %v", err)
	}

	if len(creator.created) != 1 {
		t.Fatalf("expected exactly one order, got %d", len(creator.created))
	}
	if o.TotalCost != 45 || o.Dog.ID != "d1" || o.OwnerUserID != "owner-1" {
		t.Fatalf("order does not mirror the request: %+v", o)
	}

	stored := repo.byID[req.ID]
	if stored.Status != StatusFilled {
		t.Fatalf("expected request Filled, got %s", stored.Status)
	}
}

func TestAccept_RejectsOwnAndNonActive(t *testing.T) {
	svc, _, creator, _ := testSetup()
	req := mustAdd(t, svc)

	if _, err := svc.Accept(context.Background(), "owner-1", req.ID); !errors.Is(err, ErrOwnRequest) {
		t.Fatalf("expected ErrOwnRequest, got %v", err)
	}

	if _, err := svc.Accept(context.Background(), "walker-user-1", req.ID); err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if _, err := svc.Accept(context.Background(), "walker-user-2", req.ID); !errors.Is(err, ErrNotActive) {
		t.Fatalf("expected ErrNotActive on filled request, got %v", err)
	}
	if len(creator.created) != 1 {
		t.Fatalf("expected a single order, got %d", len(creator.created))
	}
}

func TestExpireStale_OnlyOldActiveRequests(t *testing.T) {
	svc, repo, _, _ := testSetup()

	fresh := mustAdd(t, svc)

	old := mustAdd(t, svc)
	stored := repo.byID[old.ID]
	stored.CreatedAt = stored.CreatedAt.Add(-48 * time.Hour)
	repo.byID[old.ID] = stored

	n, err := svc.ExpireStale(context.Background(), 24*time.Hour)
	if err != nil {
		t.Fatalf("ExpireStale: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 expired, got %d", n)
	}
	if repo.byID[old.ID].Status != StatusExpired {
		t.Fatalf("expected old request Expired, got %s", repo.byID[old.ID].Status)
	}
	if repo.byID[fresh.ID].Status != StatusActive {
		t.Fatalf("fresh request should stay Active, got %s", repo.byID[fresh.ID].Status)
	}
}
