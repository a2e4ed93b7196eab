package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionTable(t *testing.T) {
	cases := []struct {
		from   CampaignStatus
		action CampaignAction
		want   CampaignStatus
		reason string
	}{
		{StatusPending, ActionApprove, StatusActive, ""},
		{StatusPending, ActionReject, StatusRejected, ""},
		{StatusPending, ActionComplete, "", "Cannot complete a pending campaign"},

		{StatusActive, ActionApprove, "", "Campaign is already active"},
		{StatusActive, ActionReject, "", "Cannot reject an active campaign"},
		{StatusActive, ActionComplete, StatusCompleted, ""},

		{StatusRejected, ActionApprove, StatusActive, ""},
		{StatusRejected, ActionReject, "", "Campaign is already rejected"},
		{StatusRejected, ActionComplete, "", "Cannot complete a rejected campaign"},

		{StatusCompleted, ActionApprove, "", "Cannot approve a completed campaign"},
		{StatusCompleted, ActionReject, "", "Cannot reject a completed campaign"},
		{StatusCompleted, ActionComplete, "", "Campaign is already completed"},
	}

	for _, tc := range cases {
		t.Run(string(tc.from)+"_"+string(tc.action), func(t *testing.T) {
			got, err := Transition(tc.from, tc.action)
			if tc.reason == "" {
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidOperation))
			assert.Equal(t, tc.reason, err.Error())
			assert.Empty(t, got)
		})
	}
}

func TestTransitionUnknownState(t *testing.T) {
	_, err := Transition("closed", ActionApprove)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidOperation))
}

func TestErrorCategories(t *testing.T) {
	err := NotFoundf("Campaign not found")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "Campaign not found", err.Error())

	assert.True(t, errors.Is(Forbiddenf("no"), ErrForbidden))
	assert.True(t, errors.Is(Validationf("no"), ErrValidation))
	assert.NoError(t, StorageError(nil))
	assert.True(t, errors.Is(StorageError(errors.New("boom")), ErrStorage))
}
