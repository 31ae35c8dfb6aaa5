package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("invalid input")

const autoReplyDelay = 1500 * time.Millisecond

// autoReplies: respuestas enlatadas del interlocutor mientras no hay
// mensajería real. Se elige por turno, no al azar, para que las
// conversaciones sean reproducibles.
var autoReplies = []string{
	"Jasne, nie ma problemu!",
	"Będę na miejscu o czasie.",
	"Dzięki za wiadomość, odezwę się wkrótce.",
	"Super, do zobaczenia!",
}

type Service struct {
	repo Repository
	now  func() time.Time

	// schedule difiere la respuesta automática. En producción es
	// time.AfterFunc; los tests inyectan una versión síncrona.
	schedule func(d time.Duration, fn func())
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
		schedule: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
	}
}

// Send guarda el mensaje y agenda la respuesta enlatada del interlocutor.
func (s *Service) Send(ctx context.Context, senderUserID, receiverUserID, text string) (Message, error) {
	senderUserID = strings.TrimSpace(senderUserID)
	receiverUserID = strings.TrimSpace(receiverUserID)
	text = strings.TrimSpace(text)

	if senderUserID == "" || receiverUserID == "" || text == "" {
		return Message{}, ErrInvalidInput
	}
	if senderUserID == receiverUserID {
		return Message{}, ErrInvalidInput
	}

	m := Message{
		ID:             uuid.NewString(),
		SenderUserID:   senderUserID,
		ReceiverUserID: receiverUserID,
		Text:           text,
		CreatedAt:      s.now(),
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return Message{}, err
	}

	history, err := s.repo.ListConversation(ctx, senderUserID, receiverUserID)
	if err != nil {
		return Message{}, err
	}
	sent := countFrom(history, senderUserID)
	if sent > 0 {
		sent--
	}
	reply := autoReplies[sent%len(autoReplies)]

	s.schedule(autoReplyDelay, func() {
		// El request original ya terminó cuando esto corre.
		_ = s.repo.Create(context.Background(), Message{
			ID:             uuid.NewString(),
			SenderUserID:   receiverUserID,
			ReceiverUserID: senderUserID,
			Text:           reply,
			CreatedAt:      s.now(),
		})
	})

	return m, nil
}

func (s *Service) Conversation(ctx context.Context, userID, partnerID string) ([]Message, error) {
	userID = strings.TrimSpace(userID)
	partnerID = strings.TrimSpace(partnerID)
	if userID == "" || partnerID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListConversation(ctx, userID, partnerID)
}

func countFrom(history []Message, senderUserID string) int {
	n := 0
	for _, m := range history {
		if m.SenderUserID == senderUserID {
			n++
		}
	}
	return n
}
