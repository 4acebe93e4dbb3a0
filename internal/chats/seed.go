package chats

import "time"

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// Seed returns the fixed set of chats the sidebar starts with.
func Seed() []Chat {
	return []Chat{
		{
			ID:          1,
			Title:       "Alpie Launch Checklist",
			Description: "End-to-end steps for web app GA: auth, chat, workspaces, memory review, logging.",
			Tags:        []string{"launch", "product", "memory"},
			Author:      "team@169pi.com",
			CreatedAt:   mustTime("2025-08-20T10:00:00Z"),
		},
		{
			ID:          2,
			Title:       "Vibe Coding – MVP Scope",
			Description: "Run Python snippets safely, view live output, store run history, and allow replay.",
			Tags:        []string{"vibe-coding", "mvp", "python"},
			Author:      "eng@169pi.com",
			CreatedAt:   mustTime("2025-08-21T09:25:00Z"),
			Pinned:      true,
		},
		{
			ID:          3,
			Title:       "Memory Design Notes",
			Description: "Explicit saves, consent UI, project-level memory, and visibility of all recalls.",
			Tags:        []string{"memory", "design", "consent"},
			Author:      "ux@169pi.com",
			CreatedAt:   mustTime("2025-08-22T14:12:00Z"),
		},
		{
			ID:          4,
			Title:       "Education: Reasoning Benchmarks",
			Description: "Focus on math/logic datasets; target latency and accuracy improvements.",
			Tags:        []string{"education", "benchmarks", "reasoning"},
			Author:      "research@169pi.com",
			CreatedAt:   mustTime("2025-08-19T08:02:00Z"),
		},
		{
			ID:          5,
			Title:       "Workspace UX Ideas",
			Description: "Pin messages to memory panel, rename sessions, quick filters by tag.",
			Tags:        []string{"ux", "workspace", "memory"},
			Author:      "design@169pi.com",
			CreatedAt:   mustTime("2025-08-25T17:40:00Z"),
			Pinned:      true,
		},
	}
}
