// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-plant-keeper/models"
)

func Test_buildListPlantsQuery_ArchivedFilter(t *testing.T) {
	tests := []struct {
		name     string
		filter   models.ArchivedFilter
		wantArgs []any
		contains string
	}{
		{name: "any", filter: models.ArchivedAny, wantArgs: []any{"u"}},
		{name: "exclude", filter: models.ArchivedExclude, wantArgs: []any{"u", false}, contains: "archived = $2"},
		{name: "only", filter: models.ArchivedOnly, wantArgs: []any{"u", true}, contains: "archived = $2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListPlantsQuery("u", models.PlantFilter{Archived: tt.filter})
			require.NoError(t, err)
			assert.Equal(t, tt.wantArgs, args)
			assert.Contains(t, query, "FROM plants WHERE owner_id = $1")
			assert.True(t, strings.HasSuffix(query, "ORDER BY created_at ASC"))
			if tt.contains != "" {
				assert.Contains(t, query, tt.contains)
			} else {
				assert.NotContains(t, query, "archived =")
			}
		})
	}
}

func Test_buildWaterPlantQuery_ReturnsAllColumns(t *testing.T) {
	at := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := buildWaterPlantQuery("u", "p", at)
	require.NoError(t, err)
	assert.Equal(t, []any{at, at, "p", "u"}, args)
	assert.Contains(t, query, "RETURNING "+strings.Join(plantColumns, ", "))
}

func Test_buildInsertNoteQuery_TipUsesConflictClause(t *testing.T) {
	day := time.Date(2026, 3, 5, 15, 0, 0, 0, time.UTC)

	plain, plainArgs, err := buildInsertNoteQuery(models.Note{ID: "n", PlantID: "p"})
	require.NoError(t, err)
	assert.NotContains(t, plain, "ON CONFLICT")
	assert.Nil(t, plainArgs[4])

	tip, tipArgs, err := buildInsertNoteQuery(models.Note{ID: "n", PlantID: "p", AutoTip: true, TipDay: &day})
	require.NoError(t, err)
	assert.Contains(t, tip, "ON CONFLICT (plant_id, tip_day) DO NOTHING")
	assert.Equal(t, "2026-03-05", tipArgs[4])
}

func Test_buildDeletePhotoQuery_ScopedToOwner(t *testing.T) {
	query, args, err := buildDeletePhotoQuery("u", "p", "ph")
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM plant_photos WHERE id = $1 AND plant_id = $2 AND plant_id IN (SELECT id FROM plants WHERE owner_id = $3)", query)
	assert.Equal(t, []any{"ph", "p", "u"}, args)
}

func Test_buildReplaceSpeciesInfoQuery_Upserts(t *testing.T) {
	query, _, err := buildReplaceSpeciesInfoQuery(models.SpeciesInfo{ID: "s", OwnerID: "u", Species: "Basil", Info: []byte(`{}`)})
	require.NoError(t, err)
	assert.Contains(t, query, "ON CONFLICT (owner_id, species) DO UPDATE SET info = EXCLUDED.info")
	assert.Contains(t, query, "RETURNING id, owner_id, species, info, created_at, updated_at")
}
