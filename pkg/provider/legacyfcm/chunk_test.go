package legacyfcm

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChunkRegistrationIDs(t *testing.T) {

	require.Nil(t, ChunkRegistrationIDs(nil))
	require.Nil(t, ChunkRegistrationIDs([]string{}))

	ids := make([]string, 0, MaxRecipients*2+1)
	for i := 0; i < cap(ids); i++ {
		ids = append(ids, "token-"+strconv.Itoa(i))
	}

	for n, count := range map[int]int{
		1:                   1,
		MaxRecipients - 1:   1,
		MaxRecipients:       1,
		MaxRecipients + 1:   2,
		MaxRecipients * 2:   2,
		MaxRecipients*2 + 1: 3,
	} {
		chunks := ChunkRegistrationIDs(ids[:n])
		require.Len(t, chunks, count, n)

		total := 0
		for _, chunk := range chunks {
			require.True(t, len(chunk) <= MaxRecipients)
			require.NotEmpty(t, chunk)
			total += len(chunk)
		}
		require.Equal(t, n, total)
	}

	// order is preserved across chunk boundaries
	chunks := ChunkRegistrationIDs(ids)
	require.Equal(t, "token-0", chunks[0][0])
	require.Equal(t, "token-"+strconv.Itoa(MaxRecipients), chunks[1][0])
	require.Equal(t, "token-"+strconv.Itoa(MaxRecipients*2), chunks[2][0])
}
