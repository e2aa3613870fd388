package adptarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("it should apply defaults when nothing is set", func(t *testing.T) {
		// GIVEN / WHEN
		conf, err := LoadConfig("ADPTARRAY_TEST_EMPTY")

		// THEN
		require.NoError(t, err)
		assert.Equal(t, "copy", conf.GrowPolicy)
		assert.Equal(t, 0, conf.MaxSlots)
		assert.Equal(t, "warn", conf.LogLevel)
	})

	t.Run("it should read the environment", func(t *testing.T) {
		// GIVEN
		t.Setenv("ARR_GROW_POLICY", "move")
		t.Setenv("ARR_MAX_SLOTS", "8")
		t.Setenv("ARR_LOG_LEVEL", "debug")

		// WHEN
		conf, err := LoadConfig("ARR")

		// THEN
		require.NoError(t, err)
		assert.Equal(t, "move", conf.GrowPolicy)
		assert.Equal(t, 8, conf.MaxSlots)
		assert.Equal(t, "debug", conf.LogLevel)
	})
}

func TestConfig_Options(t *testing.T) {
	t.Run("it should build options honoring the slot limit and policy", func(t *testing.T) {
		// GIVEN
		conf := &Config{GrowPolicy: "move", MaxSlots: 3, LogLevel: "error"}

		// WHEN
		opts, err := conf.Options()
		require.NoError(t, err)
		l := newLedger()
		arr, err := New[*item](l, opts...)
		require.NoError(t, err)

		// THEN
		require.NoError(t, arr.Set(0, &item{}))
		assert.Equal(t, MoveOnGrow, arr.growPolicy)
		assert.ErrorIs(t, arr.Set(5, &item{}), ErrAllocation)
	})

	t.Run("it should reject an unknown grow policy", func(t *testing.T) {
		// GIVEN
		conf := &Config{GrowPolicy: "shuffle", LogLevel: "info"}

		// WHEN
		_, err := conf.Options()

		// THEN
		assert.Error(t, err)
	})

	t.Run("it should reject an unknown log level", func(t *testing.T) {
		// GIVEN
		conf := &Config{GrowPolicy: "copy", LogLevel: "loud"}

		// WHEN
		_, err := conf.Options()

		// THEN
		assert.Error(t, err)
	})

	t.Run("it should reject a negative slot limit", func(t *testing.T) {
		// GIVEN
		conf := &Config{GrowPolicy: "copy", MaxSlots: -1, LogLevel: "info"}

		// WHEN
		_, err := conf.Options()

		// THEN
		assert.Error(t, err)
	})
}

func TestParseGrowPolicy(t *testing.T) {
	t.Run("it should parse known policies", func(t *testing.T) {
		for in, expected := range map[string]GrowPolicy{"copy": CopyOnGrow, "MOVE": MoveOnGrow, "": CopyOnGrow} {
			policy, err := ParseGrowPolicy(in)
			require.NoError(t, err)
			assert.Equal(t, expected, policy)
		}
	})
}
