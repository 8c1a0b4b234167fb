package idgen

import (
	"testing"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	gen, err := New("")
	require.NoError(t, err)
	require.IsType(t, UUID{}, gen)

	gen, err = New(StrategyULID)
	require.NoError(t, err)
	require.IsType(t, ULID{}, gen)

	_, err = New("snowflake")
	require.Error(t, err)
}

func TestGenerators_ProduceUniqueParsableIDs(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 500; i++ {
		u := UUID{}.NewID()
		_, err := uuid.Parse(u)
		require.NoError(t, err)

		l := ULID{}.NewID()
		_, err = ulid.Parse(l)
		require.NoError(t, err)

		for _, id := range []string{u, l} {
			_, dup := seen[id]
			require.False(t, dup, id)
			seen[id] = struct{}{}
		}
	}
}
