// Package assignment implements the reviewer selection policy: uniform
// sampling without replacement over an eligible candidate pool. Candidate
// pools are built by the caller; the picker never touches storage.
package assignment

import (
	"math/rand"
	"sync"
	"time"

	pullrequestmodel "github.com/DragonCaesar2004/Code-review-assigner/internal/pullrequest/model"
	usermodel "github.com/DragonCaesar2004/Code-review-assigner/internal/user/model"
)

// Picker draws reviewers at random. Selections are not reproducible across
// calls and carry no ordering guarantee.
type Picker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPicker builds a picker seeded from the clock.
func NewPicker() *Picker {
	//nolint:gosec // reviewer selection does not need cryptographic randomness
	return &Picker{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// SelectReviewers draws up to max candidates without replacement. An empty
// pool yields an empty selection, never an error: a PR may legitimately have
// zero reviewers.
func (p *Picker) SelectReviewers(candidates []usermodel.User, max int) []string {
	if len(candidates) == 0 || max <= 0 {
		return []string{}
	}

	n := max
	if len(candidates) < n {
		n = len(candidates)
	}

	shuffled := make([]usermodel.User, len(candidates))
	copy(shuffled, candidates)

	p.mu.Lock()
	p.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	p.mu.Unlock()

	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = shuffled[i].UserID
	}
	return ids
}

// PickReplacement draws one candidate from the pool. Unlike initial
// selection, an empty pool here is a failure.
func (p *Picker) PickReplacement(candidates []usermodel.User) (string, error) {
	if len(candidates) == 0 {
		return "", pullrequestmodel.ErrNoCandidate
	}

	p.mu.Lock()
	idx := p.rng.Intn(len(candidates))
	p.mu.Unlock()

	return candidates[idx].UserID, nil
}

// FilterCandidates removes every user whose id appears in exclude.
func FilterCandidates(candidates []usermodel.User, exclude map[string]struct{}) []usermodel.User {
	out := make([]usermodel.User, 0, len(candidates))
	for _, c := range candidates {
		if _, skip := exclude[c.UserID]; !skip {
			out = append(out, c)
		}
	}
	return out
}
