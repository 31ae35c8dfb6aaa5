package chat

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"
)

type fakeRepo struct {
	msgs []Message
}

func (r *fakeRepo) Create(ctx context.Context, m Message) error {
	r.msgs = append(r.msgs, m)
	return nil
}

func (r *fakeRepo) ListConversation(ctx context.Context, userA, userB string) ([]Message, error) {
	out := make([]Message, 0)
	for _, m := range r.msgs {
		if (m.SenderUserID == userA && m.ReceiverUserID == userB) ||
			(m.SenderUserID == userB && m.ReceiverUserID == userA) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// testService agenda la respuesta de forma síncrona para no dormir en tests.
func testService(repo *fakeRepo) *Service {
	svc := NewService(repo)
	base := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	svc.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	svc.schedule = func(d time.Duration, fn func()) { fn() }
	return svc
}

func TestSend_Validation(t *testing.T) {
	svc := testService(&fakeRepo{})

	cases := []struct {
		name     string
		sender   string
		receiver string
		text     string
	}{
		{"empty text", "u1", "u2", "   "},
		{"no receiver", "u1", "", "cześć"},
		{"self send", "u1", "u1", "cześć"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Send(context.Background(), tc.sender, tc.receiver, tc.text); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestSend_SchedulesCannedReply(t *testing.T) {
	repo := &fakeRepo{}
	svc := testService(repo)

	m, err := svc.Send(context.Background(), "u1", "u2", "Cześć, jak Burek?")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if m.Text != "Cześć, jak Burek?" {
		t.Fatalf("unexpected message: %+v", m)
	}

	conv, err := svc.Conversation(context.Background(), "u1", "u2")
	if err != nil {
		t.Fatalf("Conversation: %v", err)
	}
	if len(conv) != 2 {
		t.Fatalf("expected message plus reply, got %d", len(conv))
	}
	reply := conv[1]
	if reply.SenderUserID != "u2" || reply.ReceiverUserID != "u1" {
		t.Fatalf("reply has wrong direction: %+v", reply)
	}
	if reply.Text != autoReplies[0] {
		t.Fatalf("first reply should be the first canned line, got %q", reply.Text)
	}
}

func TestSend_RepliesRotateByTurn(t *testing.T) {
	repo := &fakeRepo{}
	svc := testService(repo)

	texts := []string{"raz", "dwa", "trzy", "cztery", "pięć"}
	for _, txt := range texts {
		if _, err := svc.Send(context.Background(), "u1", "u2", txt); err != nil {
			t.Fatalf("Send(%q): %v", txt, err)
		}
	}

	conv, err := svc.Conversation(context.Background(), "u1", "u2")
	if err != nil {
		t.Fatalf("Conversation: %v", err)
	}
	if len(conv) != 2*len(texts) {
		t.Fatalf("expected %d messages, got %d", 2*len(texts), len(conv))
	}

	// Las respuestas van en orden fijo y dan la vuelta al agotarse.
	for i := 0; i < len(texts); i++ {
		reply := conv[2*i+1]
		want := autoReplies[i%len(autoReplies)]
		if reply.Text != want {
			t.Fatalf("reply %d = %q, want %q", i, reply.Text, want)
		}
	}
}

func TestConversation_IsolatedPerPair(t *testing.T) {
	repo := &fakeRepo{}
	svc := testService(repo)

	if _, err := svc.Send(context.Background(), "u1", "u2", "dla ciebie"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if _, err := svc.Send(context.Background(), "u1", "u3", "dla kogoś innego"); err != nil {
		t.Fatalf("Send: %v", err)
	}

	conv, err := svc.Conversation(context.Background(), "u1", "u2")
	if err != nil {
		t.Fatalf("Conversation: %v", err)
	}
	for _, m := range conv {
		if m.SenderUserID == "u3" || m.ReceiverUserID == "u3" {
			t.Fatalf("foreign message leaked into conversation: %+v", m)
		}
	}
}
