package skill

import (
	"sort"
	"strings"

	"github.com/amishk599/skillmap/internal/model"
)

// DefaultTopN is used when Extract is called with n <= 0.
const DefaultTopN = 10

// Vocabulary is the ordered list of lowercase skill keywords.
type Vocabulary []string

// DefaultVocabulary returns a fresh copy of the built-in skill list.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		"python", "java", "sql", "excel", "communication", "teamwork",
		"project management", "data analysis", "machine learning", "aws",
		"javascript", "c++", "linux", "git", "docker",
	}
}

// Contains reports whether skill is part of the vocabulary.
func (v Vocabulary) Contains(skill string) bool {
	for _, s := range v {
		if s == skill {
			return true
		}
	}
	return false
}

// Extractor counts vocabulary skills across job descriptions.
//
// Matching is plain case-insensitive substring containment with no word
// boundaries, so overlapping keywords both count: "javascript" also counts
// as "java" and "digital" counts as "git". A description adds at most 1 to a
// skill no matter how often the skill appears in it.
type Extractor struct {
	vocab Vocabulary
}

// NewExtractor returns an extractor over vocab. Entries are normalized once
// here. Blank entries are dropped since they would match every description,
// and repeats keep their first position.
func NewExtractor(vocab Vocabulary) *Extractor {
	lowered := make(Vocabulary, 0, len(vocab))
	seen := make(map[string]bool, len(vocab))
	for _, s := range vocab {
		s = Normalize(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		lowered = append(lowered, s)
	}
	return &Extractor{vocab: lowered}
}

// Vocabulary returns the skills this extractor matches, in declaration order.
func (e *Extractor) Vocabulary() Vocabulary {
	return e.vocab
}

// Extract returns the n most frequently mentioned skills across descriptions,
// sorted by count descending. Equal counts keep the order in which the scan
// first found each skill: description by description, vocabulary order
// within one description.
func (e *Extractor) Extract(descriptions []string, n int) []model.SkillFrequency {
	if n <= 0 {
		n = DefaultTopN
	}

	counts := make([]int, len(e.vocab))
	var order []int // vocab indices in first-seen order
	for _, desc := range descriptions {
		descLower := strings.ToLower(desc)
		for i, s := range e.vocab {
			if !strings.Contains(descLower, s) {
				continue
			}
			if counts[i] == 0 {
				order = append(order, i)
			}
			counts[i]++
		}
	}

	ranked := make([]model.SkillFrequency, 0, len(order))
	for _, i := range order {
		ranked = append(ranked, model.SkillFrequency{Skill: e.vocab[i], Count: counts[i]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
