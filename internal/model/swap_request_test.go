package model

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSwapStatusIsTerminal(t *testing.T) {
	assert.False(t, SwapStatusPending.IsTerminal())
	assert.True(t, SwapStatusAccepted.IsTerminal())
	assert.True(t, SwapStatusRejected.IsTerminal())
	assert.True(t, SwapStatusCancelled.IsTerminal())
}

func TestSwapRequestJSONShape(t *testing.T) {
	swap := SwapRequest{
		ID:          uuid.New(),
		RequesterID: uuid.New(),
		ResponderID: uuid.New(),
		Status:      SwapStatusPending,
		OfferedSkill: Skill{
			ID:   uuid.New(),
			Name: "Guitar",
		},
	}

	data, err := json.Marshal(swap)
	assert.NoError(t, err)

	var decoded map[string]interface{}
	assert.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, swap.ID.String(), decoded["swapId"])
	assert.Equal(t, "pending", decoded["status"])
	assert.Contains(t, decoded, "offeredSkill")
	assert.Contains(t, decoded, "wantedSkill")
	// Internal columns and relation back-references stay off the wire.
	assert.NotContains(t, decoded, "OfferedSkillID")
	assert.NotContains(t, decoded, "Requester")
	assert.NotContains(t, decoded, "DeletedAt")
}
