package genshinblue

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DylanBreuer/GenshinTools/internal/entities/genshin"
	"github.com/DylanBreuer/GenshinTools/internal/errors"
)

// requestLog records the URIs the test server saw
type requestLog struct {
	mu   sync.Mutex
	uris []string
}

func (l *requestLog) add(uri string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.uris = append(l.uris, uri)
}

func (l *requestLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.uris...)
}

// newTestClient serves canned JSON bodies keyed by request path
func newTestClient(t *testing.T, cfg *Config, routes map[string]string) (Client, *requestLog) {
	t.Helper()

	log := &requestLog{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.add(r.URL.RequestURI())
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	if cfg == nil {
		cfg = &Config{}
	}
	cfg.BaseURL = srv.URL
	client, err := New(cfg)
	require.NoError(t, err)
	return client, log
}

func TestFetchCharacters(t *testing.T) {
	t.Run("slug index fans out to detail fetches", func(t *testing.T) {
		client, log := newTestClient(t, nil, map[string]string{
			"/characters":        `["amber", "hu-tao"]`,
			"/characters/amber":  `{"vision": "Pyro", "weapon": "Bow", "rarity": "4"}`,
			"/characters/hu-tao": `{"name": "Hu Tao", "vision": "Pyro", "weapon": "Polearm", "rarity": 5}`,
		})

		payloads, err := client.FetchCharacters(context.Background())
		require.NoError(t, err)
		require.Len(t, payloads, 2)

		amber := payloads[0].Character
		assert.Equal(t, "Amber", amber.Name)
		assert.Equal(t, "pyro", amber.Element)
		assert.Equal(t, "bow", amber.WeaponType)
		assert.Equal(t, 4, amber.Rarity)
		assert.Equal(t, "Hu Tao", payloads[1].Character.Name)

		assert.Len(t, log.all(), 3)
	})

	t.Run("slug keyed records need no detail fetches", func(t *testing.T) {
		client, log := newTestClient(t, nil, map[string]string{
			"/characters": `{
				"amber": {"name": "Amber", "vision": "Pyro"},
				"lisa": {"vision": "Electro", "weapon": "Catalyst"}
			}`,
		})

		payloads, err := client.FetchCharacters(context.Background())
		require.NoError(t, err)
		require.Len(t, payloads, 2)
		assert.Equal(t, "Amber", payloads[0].Character.Name)
		assert.Equal(t, "Lisa", payloads[1].Character.Name)
		assert.Equal(t, []string{"/characters"}, log.all())
	})

	t.Run("flat record list drops nameless records", func(t *testing.T) {
		client, _ := newTestClient(t, nil, map[string]string{
			"/characters": `[{"name": "Amber", "vision": "Pyro"}, {"rarity": 3}]`,
		})

		payloads, err := client.FetchCharacters(context.Background())
		require.NoError(t, err)
		require.Len(t, payloads, 1)
		assert.Equal(t, "Amber", payloads[0].Character.Name)
	})

	t.Run("detail failure aborts the run", func(t *testing.T) {
		client, _ := newTestClient(t, nil, map[string]string{
			"/characters":       `["amber", "missing"]`,
			"/characters/amber": `{"name": "Amber"}`,
		})

		_, err := client.FetchCharacters(context.Background())
		require.Error(t, err)

		var fetchErr *FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, "/characters/missing", fetchErr.Endpoint)
		assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
	})
}

func TestFetchCharacterPayload(t *testing.T) {
	client, _ := newTestClient(t, nil, map[string]string{
		"/characters/amber": `{
			"name": "Amber",
			"vision": "Pyro",
			"weapon": "Bow",
			"rarity": 4,
			"talents": [
				{"name": "Sharpshooter", "description": "Normal attack"},
				{"name": "Fiery Rain", "description": "Burst"}
			],
			"talent_priority": ["fiery rain", "sharpshooter"],
			"recommended_weapons": ["Amos' Bow", "The Stringless"],
			"recommended_artifacts": ["Crimson Witch of Flames"]
		}`,
	})

	payload, err := client.FetchCharacter(context.Background(), "amber")
	require.NoError(t, err)

	require.Len(t, payload.Talents, 2)
	assert.Equal(t, 2, payload.Talents[0].Priority)
	assert.Equal(t, 1, payload.Talents[1].Priority)

	require.Len(t, payload.WeaponRecommendations, 2)
	assert.Equal(t, "Amos' Bow", payload.WeaponRecommendations[0].Name)
	assert.Equal(t, 1, payload.WeaponRecommendations[0].Ranking)
	assert.Equal(t, 2, payload.WeaponRecommendations[1].Ranking)

	require.Len(t, payload.ArtifactRecommendations, 1)
}

func TestFetchCharacterUnwrapsEnvelope(t *testing.T) {
	client, _ := newTestClient(t, nil, map[string]string{
		"/characters/amber": `{"id": "amber", "payload": {"name": "Amber", "vision": "Pyro"}}`,
	})

	payload, err := client.FetchCharacter(context.Background(), "amber")
	require.NoError(t, err)
	assert.Equal(t, "Amber", payload.Character.Name)
	assert.Equal(t, "pyro", payload.Character.Element)
}

func TestFetchCharacterAddsLanguageParam(t *testing.T) {
	client, log := newTestClient(t, &Config{Language: "fr"}, map[string]string{
		"/characters/amber": `{"name": "Ambre"}`,
	})

	payload, err := client.FetchCharacter(context.Background(), "amber")
	require.NoError(t, err)
	assert.Equal(t, "Ambre", payload.Character.Name)
	assert.Equal(t, []string{"/characters/amber?lang=fr"}, log.all())
}

func TestClientUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client, err := New(&Config{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.FetchCharacters(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsUnavailable(err))
}

func TestFetchMaterials(t *testing.T) {
	t.Run("inline tree types by top level key", func(t *testing.T) {
		client, log := newTestClient(t, nil, map[string]string{
			"/materials": `{
				"boss-material": {
					"dvalins-plume": {"id": 1, "name": "Dvalin's Plume", "rarity": 5}
				},
				"general": {
					"slime-condensate": {"id": 2, "name": "Slime Condensate", "rarity": 1}
				}
			}`,
		})

		materials, err := client.FetchMaterials(context.Background())
		require.NoError(t, err)
		require.Len(t, materials, 2)

		plume := materials[0]
		assert.Equal(t, "Dvalin's Plume", plume.Name)
		assert.Equal(t, "boss-material", plume.Type)
		assert.Equal(t, "Stormterror", plume.Source)
		assert.Equal(t, 5, plume.Rarity)

		assert.Equal(t, "general", materials[1].Type)
		assert.Equal(t, []string{"/materials"}, log.all())
	})

	t.Run("category index walks each category", func(t *testing.T) {
		client, _ := newTestClient(t, nil, map[string]string{
			"/materials":                     `["talent-book", "local-specialties"]`,
			"/materials/talent-book":         `["freedom"]`,
			"/materials/talent-book/freedom": `{"name": "Teachings of Freedom", "rarity": 2, "domain": "Forsaken Rift"}`,
			"/materials/local-specialties": `{
				"mondstadt": {
					"wolfhook": {"id": 3, "name": "Wolfhook"}
				}
			}`,
		})

		materials, err := client.FetchMaterials(context.Background())
		require.NoError(t, err)
		require.Len(t, materials, 2)

		freedom := materials[0]
		assert.Equal(t, "Teachings of Freedom", freedom.Name)
		assert.Equal(t, "talent-book", freedom.Type)
		assert.Equal(t, 2, freedom.Rarity)
		assert.Equal(t, "Forsaken Rift", freedom.Source)

		wolfhook := materials[1]
		assert.Equal(t, "Wolfhook", wolfhook.Name)
		assert.Equal(t, "local-specialties", wolfhook.Type)
		assert.Equal(t, "Mondstadt", wolfhook.Source)
		assert.Equal(t, genshin.DefaultMaterialRarity, wolfhook.Rarity)
	})

	t.Run("category index as mapping of links", func(t *testing.T) {
		client, _ := newTestClient(t, nil, map[string]string{
			"/materials":             `{"talent-book": "https://example.test/materials/talent-book"}`,
			"/materials/talent-book": `{"freedom": {"id": 1, "name": "Teachings of Freedom"}}`,
		})

		materials, err := client.FetchMaterials(context.Background())
		require.NoError(t, err)
		require.Len(t, materials, 1)
		assert.Equal(t, "talent-book", materials[0].Type)
	})

	t.Run("flat list types from item fields", func(t *testing.T) {
		client, _ := newTestClient(t, nil, map[string]string{
			"/materials": `[{"id": 1, "name": "Mora", "type": "Currency"}]`,
		})

		materials, err := client.FetchMaterials(context.Background())
		require.NoError(t, err)
		require.Len(t, materials, 1)
		assert.Equal(t, "currency", materials[0].Type)
	})
}

func TestFetchAllMaterials(t *testing.T) {
	client, log := newTestClient(t, nil, map[string]string{
		"/materials/all": `{
			"dvalins-plume": {"id": 1, "name": "Dvalin's Plume", "type": "boss"},
			"sharp-fang": {"id": 2, "name": "Sharp Fang"}
		}`,
	})

	materials, err := client.FetchAllMaterials(context.Background())
	require.NoError(t, err)
	require.Len(t, materials, 2)

	plume := materials[0]
	assert.Equal(t, "boss", plume.Type)
	assert.Equal(t, genshin.MaterialClassCharacter, plume.Class())
	assert.Equal(t, "Stormterror", plume.Source)

	assert.Equal(t, "general", materials[1].Type)
	assert.Equal(t, []string{"/materials/all"}, log.all())
}

func TestFetchWeapons(t *testing.T) {
	t.Run("slug index fans out to detail fetches", func(t *testing.T) {
		client, _ := newTestClient(t, nil, map[string]string{
			"/weapons":                `["aquila-favonia"]`,
			"/weapons/aquila-favonia": `{"name": "Aquila Favonia", "type": "Sword", "rarity": 5, "location": "gacha"}`,
		})

		weapons, err := client.FetchWeapons(context.Background())
		require.NoError(t, err)
		require.Len(t, weapons, 1)
		assert.Equal(t, "Aquila Favonia", weapons[0].Name)
		assert.Equal(t, "sword", weapons[0].WeaponType)
		assert.Equal(t, 5, weapons[0].Rarity)
		assert.Equal(t, "gacha", weapons[0].Source)
	})

	t.Run("slug keyed records", func(t *testing.T) {
		client, _ := newTestClient(t, nil, map[string]string{
			"/weapons": `{"the-stringless": {"type": "Bow", "rarity": 4}}`,
		})

		weapons, err := client.FetchWeapons(context.Background())
		require.NoError(t, err)
		require.Len(t, weapons, 1)
		assert.Equal(t, "The Stringless", weapons[0].Name)
		assert.Equal(t, "bow", weapons[0].WeaponType)
	})
}

func TestFetchArtifactSets(t *testing.T) {
	client, _ := newTestClient(t, nil, map[string]string{
		"/artifacts": `{
			"crimson-witch-of-flames": {
				"name": "Crimson Witch of Flames",
				"2-piece_bonus": "Pyro DMG Bonus +15%",
				"4-piece_bonus": "Overloaded and Burning DMG +40%"
			}
		}`,
	})

	sets, err := client.FetchArtifactSets(context.Background())
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, "Crimson Witch of Flames", sets[0].Name)
	assert.Equal(t, "Pyro DMG Bonus +15%", sets[0].TwoPieceBonus)
	assert.Equal(t, "Overloaded and Burning DMG +40%", sets[0].FourPieceBonus)
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "https://genshin.jmp.blue", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.NotNil(t, cfg.Vocabulary)

	cfg = &Config{BaseURL: "http://localhost:8080/"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
}

func TestFetchErrorMessage(t *testing.T) {
	err := &FetchError{Endpoint: "/characters", StatusCode: http.StatusBadGateway}
	assert.Equal(t, "fetch /characters: upstream returned status 502", err.Error())
}
