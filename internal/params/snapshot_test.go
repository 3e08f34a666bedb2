package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowline-labs/nodekit/internal/core/domain"
)

func TestSnapshotStore_GetParameter(t *testing.T) {
	store := NewSnapshotStore([]map[string]any{
		{"credentialType": "oauth2", "itemNo": int64(0)},
		{"credentialType": "apiKey"},
	})

	val, err := store.GetParameter("credentialType", 0)
	require.NoError(t, err)
	assert.Equal(t, "oauth2", val)

	val, err = store.GetParameter("credentialType", 1)
	require.NoError(t, err)
	assert.Equal(t, "apiKey", val)
}

func TestSnapshotStore_GetParameter_Missing(t *testing.T) {
	store := NewSnapshotStore([]map[string]any{{"present": true}})

	tests := []struct {
		name      string
		param     string
		itemIndex int
	}{
		{name: "absent parameter", param: "absent", itemIndex: 0},
		{name: "item index negative", param: "present", itemIndex: -1},
		{name: "item index out of range", param: "present", itemIndex: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val, err := store.GetParameter(tt.param, tt.itemIndex)

			assert.Nil(t, val)
			assert.ErrorIs(t, err, domain.ErrParameterNotFound)
		})
	}
}

func TestSnapshotStore_Items(t *testing.T) {
	assert.Zero(t, NewSnapshotStore(nil).Items())
	assert.Equal(t, 2, NewSnapshotStore([]map[string]any{{}, {}}).Items())
}
