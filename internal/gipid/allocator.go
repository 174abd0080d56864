// Package gipid allocates structured participant IDs of the form
// GIP-<INITIALS>-<YEAR>-<SUFFIX>.
//
// The suffix space per (initials, year) pair is only 100 slots, so the
// allocator draws random two-digit suffixes and retries on collision up to
// a fixed bound rather than pretending uniqueness is guaranteed. When every
// attempt collides the caller gets a GenerationError and must surface it as
// a retryable failure; silently reusing or blanking an ID is never allowed.
//
// The read-existing-IDs-then-pick sequence is not atomic: two concurrent
// callers can both see a suffix as free. The roster is maintained by a
// single clerk per office, so this gap is accepted rather than serialized.
package gipid

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"github.com/pesocar/gip-registry/internal/domain"
	"github.com/pesocar/gip-registry/internal/tenure"
)

const (
	maxInitials = 3
	maxAttempts = 10
	suffixSpace = 100
)

// Allocator draws candidate IDs from an injectable random source so tests
// can pin the sequence of suffixes.
type Allocator struct {
	rng *rand.Rand
}

// New returns an Allocator seeded from the clock.
func New() *Allocator {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand returns an Allocator using the given random source.
func NewWithRand(rng *rand.Rand) *Allocator {
	return &Allocator{rng: rng}
}

// Allocate derives a unique participant ID from the name and hire date,
// checking candidates against existing. The existing set must hold
// uppercased IDs; membership is effectively case-insensitive because every
// candidate is uppercased before the check.
func (a *Allocator) Allocate(name, hireDate string, existing map[string]struct{}) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", &domain.GenerationError{Name: name, Err: domain.ErrNameRequired}
	}

	hired, ok := tenure.ParseDate(hireDate)
	if !ok {
		return "", &domain.GenerationError{Name: name, Err: domain.ErrHireDateInvalid}
	}
	year := hired.Year()

	initials := Initials(name)

	for i := 0; i < maxAttempts; i++ {
		suffix := a.rng.Intn(suffixSpace)
		candidate := strings.ToUpper(fmt.Sprintf("GIP-%s-%04d-%02d", initials, year, suffix))
		if _, taken := existing[candidate]; !taken {
			return candidate, nil
		}
	}

	return "", &domain.GenerationError{Name: name, Err: domain.ErrSuffixesExhausted}
}

// Initials extracts up to three uppercase initials from a full name,
// splitting on any run of whitespace.
func Initials(name string) string {
	var b strings.Builder
	for i, part := range strings.Fields(name) {
		if i == maxInitials {
			break
		}
		b.WriteRune(unicode.ToUpper([]rune(part)[0]))
	}
	return b.String()
}

// ExistingSet builds the uppercased membership set Allocate expects from
// the IDs already present on the roster. Blank IDs are skipped.
func ExistingSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		id = strings.ToUpper(strings.TrimSpace(id))
		if id == "" {
			continue
		}
		set[id] = struct{}{}
	}
	return set
}
