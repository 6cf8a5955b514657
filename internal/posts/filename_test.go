package posts

import "testing"

func TestExtractDate(t *testing.T) {
	cases := []struct {
		filename string
		want     string
		ok       bool
	}{
		{filename: "2025-10-01-hello.md", want: "2025-10-01", ok: true},
		{filename: "2025-10-01-2024-01-01-nested.md", want: "2025-10-01", ok: true},
		{filename: "1999-99-99-any.md", want: "1999-99-99", ok: true},
		{filename: "hello.md", ok: false},
		{filename: "2025-10-01.md", ok: false},
		{filename: "2025-1-01-short.md", ok: false},
		{filename: "x2025-10-01-late.md", ok: false},
	}

	for _, tc := range cases {
		got, ok := ExtractDate(tc.filename)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ExtractDate(%q) = %q, %v; want %q, %v", tc.filename, got, ok, tc.want, tc.ok)
		}
	}
}

func TestExtractSlug(t *testing.T) {
	cases := map[string]string{
		"2025-10-01-hello.md":           "hello",
		"2025-10-01-hello-world.md":     "hello-world",
		"hello.md":                      "hello",
		"2025-10-01-안녕하세요.md":           "안녕하세요",
		"2025-10-01-2024-01-01-twice.md": "2024-01-01-twice",
		"2025-10-01-notes.md.md":        "notes.md",
		"2025-10-01-draft.txt":          "draft.txt",
	}

	for filename, want := range cases {
		if got := ExtractSlug(filename); got != want {
			t.Fatalf("ExtractSlug(%q) = %q, want %q", filename, got, want)
		}
	}
}

func TestExtractSlugMatchesDatePrefixLength(t *testing.T) {
	filename := "2023-04-05-some-post.md"
	date, ok := ExtractDate(filename)
	if !ok {
		t.Fatalf("expected date prefix")
	}
	if date != filename[:10] {
		t.Fatalf("expected leading 10 characters, got %q", date)
	}
	if got := ExtractSlug(filename); got != filename[11:len(filename)-3] {
		t.Fatalf("unexpected slug %q", got)
	}
}
