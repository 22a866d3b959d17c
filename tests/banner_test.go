package tests

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/Gesildosz/Banco-De-horas-Colaborador/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicBannersListActiveOnly(t *testing.T) {
	r := newRig(t)
	require.NoError(t, r.banners.Create(context.Background(), &model.InfoBanner{
		ImageURL: "https://cdn.example.com/aviso.png",
		LinkURL:  "https://example.com/aviso",
		IsActive: true,
	}))
	require.NoError(t, r.banners.Create(context.Background(), &model.InfoBanner{
		ImageURL: "https://cdn.example.com/antigo.png",
		IsActive: false,
	}))

	w := r.do(t, http.MethodGet, "/v1/info-banners", nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	banners, ok := body["banners"].([]any)
	require.True(t, ok)
	require.Len(t, banners, 1)
	first, ok := banners[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "https://cdn.example.com/aviso.png", first["image_url"])
}

func TestPublicBannersRequireNoSession(t *testing.T) {
	r := newRig(t)

	w := r.do(t, http.MethodGet, "/v1/info-banners", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
}

// The login page must render even when the store is down: the endpoint
// degrades to an empty list instead of an error.
func TestPublicBannersFailOpen(t *testing.T) {
	r := newRig(t)
	r.banners.fail = errors.New("connection refused")

	w := r.do(t, http.MethodGet, "/v1/info-banners", nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	banners, ok := body["banners"].([]any)
	require.True(t, ok)
	assert.Empty(t, banners)
}
