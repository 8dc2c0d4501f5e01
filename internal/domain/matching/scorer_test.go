package matching

import (
	"math/rand"
	"testing"
)

func TestScoreWeightedExample(t *testing.T) {
	userSkills := []string{"React", "Node.js", "AWS"}
	jobSkills := []string{"React", "Node.js", "TypeScript", "AWS", "Docker", "Kubernetes"}
	// Keyword "node.js" (not "nodejs") is deliberate: matching is substring
	// containment, and "nodejs" is not a substring of "node.js".
	jobKeywords := []string{"react", "node.js", "aws"}

	// 3 of 6 skills -> 35, 3 of 3 keywords -> 30.
	got := Score(userSkills, jobSkills, jobKeywords)
	if got != 65 {
		t.Fatalf("expected score 65, got %d", got)
	}
}

func TestScoreNoOverlap(t *testing.T) {
	got := Score([]string{"haskell", "erlang"}, []string{"cobol"}, []string{"fortran"})
	if got != 0 {
		t.Fatalf("expected 0 for disjoint sets, got %d", got)
	}
}

func TestScoreIdenticalSkillSets(t *testing.T) {
	skills := []string{"go", "postgresql", "docker"}
	got := Score(skills, skills, nil)
	if got < 70 {
		t.Fatalf("expected full skill component (>=70), got %d", got)
	}
}

func TestScoreOrderInvariant(t *testing.T) {
	userSkills := []string{"React", "Node.js", "AWS", "Terraform"}
	jobSkills := []string{"React", "TypeScript", "AWS", "Docker"}
	jobKeywords := []string{"react", "docker", "aws"}

	want := Score(userSkills, jobSkills, jobKeywords)

	r := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		us := shuffled(r, userSkills)
		js := shuffled(r, jobSkills)
		kw := shuffled(r, jobKeywords)
		if got := Score(us, js, kw); got != want {
			t.Fatalf("score changed under reordering: want %d, got %d", want, got)
		}
	}
}

func TestScoreEmptyInputs(t *testing.T) {
	cases := []struct {
		name        string
		user, skill []string
		keyword     []string
	}{
		{"all empty", nil, nil, nil},
		{"empty job skills", []string{"go"}, nil, []string{"go"}},
		{"empty keywords", []string{"go"}, []string{"go"}, nil},
		{"empty user", nil, []string{"go"}, []string{"go"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Score(tc.user, tc.skill, tc.keyword)
			if got < 0 || got > 100 {
				t.Fatalf("score out of range: %d", got)
			}
		})
	}
}

func TestScoreCaseInsensitive(t *testing.T) {
	a := Score([]string{"REACT"}, []string{"react"}, nil)
	b := Score([]string{"react"}, []string{"React"}, nil)
	if a != b || a != 70 {
		t.Fatalf("expected case-insensitive full match (70), got %d and %d", a, b)
	}
}

func TestScoreSubstringContainment(t *testing.T) {
	// "node" is a substring of "node.js"; both directions must count.
	if got := Score([]string{"node"}, []string{"node.js"}, nil); got != 70 {
		t.Fatalf("user-in-job containment: expected 70, got %d", got)
	}
	if got := Score([]string{"node.js"}, []string{"node"}, nil); got != 70 {
		t.Fatalf("job-in-user containment: expected 70, got %d", got)
	}
}

func TestSplitSkills(t *testing.T) {
	got := SplitSkills(" Go, PostgreSQL ,go,, Docker ")
	want := []string{"go", "postgresql", "docker"}
	if len(got) != len(want) {
		t.Fatalf("expected %d skills, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %q at %d, got %q", want[i], i, got[i])
		}
	}
}

func shuffled(r *rand.Rand, in []string) []string {
	out := append([]string(nil), in...)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
