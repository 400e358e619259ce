package assets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrameworksParse(t *testing.T) {
	fws, err := Frameworks()
	require.NoError(t, err)
	require.NotEmpty(t, fws)
	for _, fw := range fws {
		require.NotEmpty(t, fw.Name)
		require.NotEmpty(t, fw.Category, "framework %q missing category", fw.Name)
		require.NotEmpty(t, fw.CoreFunction, "framework %q missing core function", fw.Name)
		require.NotEmpty(t, fw.TypicalUses, "framework %q missing typical uses", fw.Name)
	}
}

func TestFrameworksRelatedNamesResolve(t *testing.T) {
	fws, err := Frameworks()
	require.NoError(t, err)
	byName := make(map[string]bool, len(fws))
	for _, fw := range fws {
		byName[fw.Name] = true
	}
	for _, fw := range fws {
		for _, rel := range fw.Related {
			require.True(t, byName[rel], "framework %q relates to unknown %q", fw.Name, rel)
			require.NotEqual(t, fw.Name, rel, "framework %q relates to itself", fw.Name)
		}
	}
}

func TestIndustriesParse(t *testing.T) {
	inds, err := Industries()
	require.NoError(t, err)
	require.NotEmpty(t, inds)
	for _, ind := range inds {
		require.NotEmpty(t, ind.Name)
		require.NotEmpty(t, ind.Recommended, "industry %q has no recommendations", ind.Name)
	}
}

func TestIndustriesRecommendationsResolve(t *testing.T) {
	fws, err := Frameworks()
	require.NoError(t, err)
	byName := make(map[string]bool, len(fws))
	for _, fw := range fws {
		byName[fw.Name] = true
	}
	inds, err := Industries()
	require.NoError(t, err)
	for _, ind := range inds {
		for _, rec := range ind.Recommended {
			require.True(t, byName[rec], "industry %q recommends unknown %q", ind.Name, rec)
		}
	}
}
