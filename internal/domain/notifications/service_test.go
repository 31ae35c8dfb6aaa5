package notifications

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeRepo struct {
	byID map[string]Notification
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: map[string]Notification{}}
}

func (r *fakeRepo) Create(ctx context.Context, n Notification) error {
	r.byID[n.ID] = n
	return nil
}

func (r *fakeRepo) Update(ctx context.Context, n Notification) error {
	if _, ok := r.byID[n.ID]; !ok {
		return errors.New("not found")
	}
	r.byID[n.ID] = n
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (Notification, error) {
	n, ok := r.byID[id]
	if !ok {
		return Notification{}, errors.New("not found")
	}
	return n, nil
}

func (r *fakeRepo) ListByUser(ctx context.Context, userID string) ([]Notification, error) {
	out := make([]Notification, 0)
	for _, n := range r.byID {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func testService(repo *fakeRepo) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time { return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestPush_Validation(t *testing.T) {
	svc := testService(newFakeRepo())

	cases := []struct {
		name string
		in   CreateInput
	}{
		{"bad kind", CreateInput{Kind: "spam", Title: "x"}},
		{"no title", CreateInput{Kind: KindSystem}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Push(context.Background(), "u1", tc.in); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}

	if _, err := svc.Push(context.Background(), "", CreateInput{Kind: KindSystem, Title: "x"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput without user, got %v", err)
	}
}

func TestPush_StartsUnread(t *testing.T) {
	repo := newFakeRepo()
	svc := testService(repo)

	n, err := svc.Push(context.Background(), "u1", CreateInput{
		Kind:         KindDogActivity,
		Title:        "Burek zrobił kupę",
		ActivityKind: ActivityPoop,
	})
	if err != nil {
		t.Fatalf("Push: %v", err)
	}
	if n.IsRead {
		t.Fatal("new notification should be unread")
	}
	if repo.byID[n.ID].ActivityKind != ActivityPoop {
		t.Fatalf("activity kind not persisted: %+v", repo.byID[n.ID])
	}
}

func TestMarkRead_IsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	svc := testService(repo)

	n, err := svc.Push(context.Background(), "u1", CreateInput{Kind: KindWalkStarted, Title: "Spacer rozpoczęty"})
	if err != nil {
		t.Fatalf("Push: %v", err)
	}

	first, err := svc.MarkRead(context.Background(), "u1", n.ID)
	if err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	if !first.IsRead {
		t.Fatal("expected IsRead after MarkRead")
	}

	second, err := svc.MarkRead(context.Background(), "u1", n.ID)
	if err != nil {
		t.Fatalf("second MarkRead: %v", err)
	}
	if !second.IsRead {
		t.Fatal("expected IsRead to stay set")
	}
}

func TestMarkRead_OnlyOwner(t *testing.T) {
	repo := newFakeRepo()
	svc := testService(repo)

	n, err := svc.Push(context.Background(), "u1", CreateInput{Kind: KindSystem, Title: "Witamy"})
	if err != nil {
		t.Fatalf("Push: %v", err)
	}

	if _, err := svc.MarkRead(context.Background(), "u2", n.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if repo.byID[n.ID].IsRead {
		t.Fatal("foreign MarkRead must not mutate")
	}
}
