//go:build integration
// +build integration

package genshinblue_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DylanBreuer/GenshinTools/internal/clients/genshinblue"
)

func TestFetchCharacter_Integration(t *testing.T) {
	// Skip if not running integration tests
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	client, err := genshinblue.New(&genshinblue.Config{})
	require.NoError(t, err)

	ctx := context.Background()

	testCases := []struct {
		name       string
		slug       string
		wantName   string
		wantVision string
	}{
		{
			name:       "amber",
			slug:       "amber",
			wantName:   "Amber",
			wantVision: "pyro",
		},
		{
			name:       "hu-tao",
			slug:       "hu-tao",
			wantName:   "Hu Tao",
			wantVision: "pyro",
		},
		{
			name:       "zhongli",
			slug:       "zhongli",
			wantName:   "Zhongli",
			wantVision: "geo",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			payload, err := client.FetchCharacter(ctx, tc.slug)
			require.NoError(t, err)
			require.NotNil(t, payload)

			assert.Equal(t, tc.wantName, payload.Character.Name)
			assert.Equal(t, tc.wantVision, payload.Character.Element)
			assert.NotEmpty(t, payload.Character.WeaponType)
			assert.Positive(t, payload.Character.Rarity)
		})
	}
}

func TestFetchMaterials_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	client, err := genshinblue.New(&genshinblue.Config{})
	require.NoError(t, err)

	materials, err := client.FetchMaterials(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, materials)

	for _, m := range materials {
		assert.NotEmpty(t, m.Name)
		assert.NotEmpty(t, m.Type)
		assert.Positive(t, m.Rarity)
	}
}
