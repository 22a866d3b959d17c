package tests

import (
	"context"
	"testing"

	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/dto"
	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnouncementFanOut(t *testing.T) {
	r := newRig(t)
	email := "com-email@example.com"
	withEmail := seedCollaborator(t, r, "11111", "1234", true)
	withEmail.Email = &email
	without := seedCollaborator(t, r, "22222", "1234", true)
	seedCollaborator(t, r, "33333", "1234", false) // inactive, left out

	announcements := &stubAnnouncementRepo{}
	svc := service.NewAnnouncementService(announcements, r.collabs, r.notifs, r.dispatcher)

	resp, err := svc.Publish(context.Background(), uuid.New(), dto.PublishAnnouncementRequest{
		Title: "Inventário anual",
		Body:  "O CD estará fechado no sábado.",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	// Both active collaborators got an in-app notification.
	ns1, _ := r.notifs.ListForCollaborator(context.Background(), withEmail.ID)
	assert.Len(t, ns1, 1)
	ns2, _ := r.notifs.ListForCollaborator(context.Background(), without.ID)
	assert.Len(t, ns2, 1)

	// Only the one with an address got an e-mail job.
	require.Len(t, r.dispatcher.sent, 1)
	assert.Equal(t, email, r.dispatcher.sent[0].ToEmail)

	// The announcement row itself is durable.
	rows, err := announcements.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestAnnouncementListOrder(t *testing.T) {
	r := newRig(t)
	announcements := &stubAnnouncementRepo{}
	svc := service.NewAnnouncementService(announcements, r.collabs, r.notifs, r.dispatcher)

	adminID := uuid.New()
	for _, title := range []string{"Primeiro", "Segundo"} {
		_, err := svc.Publish(context.Background(), adminID, dto.PublishAnnouncementRequest{
			Title: title,
			Body:  "corpo",
		})
		require.NoError(t, err)
	}

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
}
