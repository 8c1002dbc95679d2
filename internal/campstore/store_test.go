package campstore

import "testing"

func TestRemapCategory(t *testing.T) {
	cases := map[string]string{
		"General":    "Arts",
		"STEAM":      "Science",
		"STEM":       "Science",
		"Support":    "Education",
		"Leadership": "Education",
		"Adventure":  "Adventure",
		"Sports":     "Sports",
		"":           "",
	}
	for input, want := range cases {
		if got := RemapCategory(input); got != want {
			t.Errorf("RemapCategory(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestReplaceSwapsRecordsAndNotifiesSubscribers(t *testing.T) {
	s := NewStore(nil, nil)
	ch := s.Subscribe()

	s.Replace(nil)
	if got := s.Records(); len(got) != 0 {
		t.Fatalf("expected empty store, got %d records", len(got))
	}
	select {
	case records := <-ch:
		if len(records) != 0 {
			t.Fatalf("expected empty push, got %d", len(records))
		}
	default:
		t.Fatal("expected a push on subscribe channel")
	}
}
