package search

import (
	"slices"
	"sync"
	"testing"
)

var docs = []Document{
	{Title: "Getting Started with Go", Description: "Install the toolchain and write your first program."},
	{Title: "Programación en Go", Description: "Una guía práctica."},
	{Title: "Deploying Services on Kubernetes", Description: "Containers and rollouts for Go services."},
	{Title: "Accessible Forms", Description: "Labels and keyboard navigation."},
	{Title: "Kubernetes Operators", Description: "Extending the control plane."},
}

func indexes(hits []Hit) []int {
	out := make([]int, len(hits))
	for i, h := range hits {
		out[i] = h.Index
	}
	return out
}

func TestFold(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "Hello", want: "hello"},
		{input: "Programación", want: "programacion"},
		{input: "ÜBER Café", want: "uber cafe"},
		{input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Fold(tt.input); got != tt.want {
				t.Errorf("Fold(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("  Go, HTMX & Kubernetes: 2026!")
	want := []string{"go", "htmx", "kubernetes", "2026"}
	if !slices.Equal(got, want) {
		t.Errorf("Tokenize() = %q, want %q", got, want)
	}
}

func TestSearch(t *testing.T) {
	ix := New(docs, DefaultThreshold)

	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{name: "exact title word", query: "accessible", want: []int{3}},
		{name: "case insensitive", query: "ACCESSIBLE FORMS", want: []int{3}},
		{name: "word order", query: "forms accessible", want: []int{3}},
		{name: "accent insensitive", query: "programacion", want: []int{1}},
		{name: "accented query", query: "PROGRAMACIÓN", want: []int{1}},
		{name: "prefix", query: "kube", want: []int{2, 4}},
		{name: "typo", query: "kubernetis", want: []int{2, 4}},
		{name: "all terms must match", query: "kubernetes operators", want: []int{4}},
		{name: "no match", query: "zebra", want: nil},
		{name: "punctuation only", query: "!!!", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := indexes(ix.Search(tt.query))
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Search(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

// TestSearch_TitleOutranksDescription verifies that a title match scores
// higher than the same word in a description.
func TestSearch_TitleOutranksDescription(t *testing.T) {
	ix := New([]Document{
		{Title: "Containers", Description: "About services."},
		{Title: "Services", Description: "About containers."},
	}, DefaultThreshold)

	hits := ix.Search("services")
	if len(hits) != 2 {
		t.Fatalf("Search() returned %d hits, want 2", len(hits))
	}
	if hits[0].Index != 1 {
		t.Errorf("first hit = %d, want title match 1", hits[0].Index)
	}
	if hits[0].Score <= hits[1].Score {
		t.Errorf("title score %v should exceed description score %v", hits[0].Score, hits[1].Score)
	}
	for _, h := range hits {
		if h.Score <= 0 || h.Score > 1 {
			t.Errorf("score %v outside (0, 1]", h.Score)
		}
	}
}

func TestSearch_TiesKeepCorpusOrder(t *testing.T) {
	ix := New([]Document{
		{Title: "Go tips"},
		{Title: "Go tricks"},
		{Title: "Go patterns"},
	}, DefaultThreshold)

	got := indexes(ix.Search("go"))
	if !slices.Equal(got, []int{0, 1, 2}) {
		t.Errorf("Search(go) = %v, want [0 1 2]", got)
	}
}

func TestSearch_Threshold(t *testing.T) {
	strict := New(docs, 0)
	if hits := strict.Search("kubernetis"); len(hits) != 0 {
		t.Errorf("threshold 0 matched a typo: %v", hits)
	}

	loose := New(docs, 5)
	if hits := loose.Search("kubernetis"); len(hits) == 0 {
		t.Error("clamped threshold should still match a typo")
	}
}

func TestSearch_Concurrent(t *testing.T) {
	ix := New(docs, DefaultThreshold)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if hits := ix.Search("kubernetes"); len(hits) != 2 {
				t.Errorf("Search() returned %d hits, want 2", len(hits))
			}
		}()
	}
	wg.Wait()
}
