package chats

import "slices"

// SortForDisplay returns a sorted copy of chats: pinned before unpinned, then
// newest first. The sort is stable, so chats with equal keys keep their input
// order. The input slice is not modified.
func SortForDisplay(chats []Chat) []Chat {
	out := make([]Chat, len(chats))
	for i, c := range chats {
		out[i] = c.clone()
	}
	slices.SortStableFunc(out, compareForDisplay)
	return out
}

func compareForDisplay(a, b Chat) int {
	if a.Pinned != b.Pinned {
		if a.Pinned {
			return -1
		}
		return 1
	}
	// Newest first
	return b.CreatedAt.Compare(a.CreatedAt)
}
