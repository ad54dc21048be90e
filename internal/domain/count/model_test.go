package count

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLatest(t *testing.T) {
	require.Nil(t, Latest(nil))

	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	counts := []Count{
		{ID: 1, RepoID: 1, Date: t2, Total: 20},
		{ID: 2, RepoID: 1, Date: t1, Total: 10},
	}
	require.Equal(t, uint64(1), Latest(counts).ID)

	counts = append(counts, Count{ID: 3, RepoID: 1, Date: t2, Total: 30})
	require.Equal(t, uint64(3), Latest(counts).ID)
}
