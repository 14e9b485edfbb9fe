package waiverpolicies

import (
	"os"
	"path/filepath"
	"testing"

	refSvc "unicalc_backend/internals/features/references/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWaiverPolicySeeds_DataFileMatchesBuiltIn(t *testing.T) {
	seeds, err := LoadWaiverPolicySeeds("../data/waiver_policies.json")
	require.NoError(t, err)

	builtIn := refSvc.DefaultWaiverPolicies()
	require.Len(t, seeds, len(builtIn))
	for i, s := range seeds {
		row, err := s.ToModel(i + 1)
		require.NoError(t, err)
		want := builtIn[i]
		assert.Equal(t, want.WaiverPolicyName, row.WaiverPolicyName)
		assert.Equal(t, want.WaiverPolicyCategory, row.WaiverPolicyCategory)
		assert.Equal(t, want.WaiverPolicyAmount, row.WaiverPolicyAmount)
		assert.Equal(t, want.WaiverPolicyCondition, row.WaiverPolicyCondition)
		assert.Equal(t, want.WaiverPolicySortOrder, row.WaiverPolicySortOrder)
		assert.JSONEq(t, string(want.WaiverPolicyTags), string(row.WaiverPolicyTags))
	}
}

func TestWaiverPolicySeed_NilTagsBecomeEmptyArray(t *testing.T) {
	row, err := WaiverPolicySeed{WaiverPolicyCategory: "scholarship", WaiverPolicyName: "X"}.ToModel(1)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(row.WaiverPolicyTags))
}

func TestLoadWaiverPolicySeeds_UnknownCategory(t *testing.T) {
	p := filepath.Join(t.TempDir(), "w.json")
	require.NoError(t, os.WriteFile(p, []byte(`[{"waiver_policy_category": "loan", "waiver_policy_name": "X"}]`), 0o644))
	_, err := LoadWaiverPolicySeeds(p)
	assert.Error(t, err)
}
