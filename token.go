package session

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// DefaultTokenLabel is the token name recorded on audit entries when the
// embedder does not provide one.
const DefaultTokenLabel = "mock-token"

// MockTokenGenerator mints opaque, unsigned tokens. This is the default:
// the package never validates credentials, so the token only needs to be
// unique and recognizable.
type MockTokenGenerator struct{}

func (MockTokenGenerator) NewToken(email string, role UserRole) string {
	return fmt.Sprintf("%s-%s", DefaultTokenLabel, uuid.NewString())
}

// TimestampIDGenerator derives user ids from the login instant, namespaced
// by role, e.g. "admin-1693412345678".
type TimestampIDGenerator struct{}

func (TimestampIDGenerator) NewID(email string, role UserRole, at time.Time) string {
	return fmt.Sprintf("%s-%d", role, at.UnixMilli())
}

// HashidIDGenerator derives a stable id from the email, so the same
// account keeps the same id across logins.
type HashidIDGenerator struct{}

func (HashidIDGenerator) NewID(email string, role UserRole, at time.Time) string {
	if id, err := hashid.NewUUID(email); err == nil {
		return id.String()
	}
	return TimestampIDGenerator{}.NewID(email, role, at)
}

// MockIPResolver fabricates a private-range address for audit entries.
type MockIPResolver struct{}

func (MockIPResolver) ClientIP() string {
	return fmt.Sprintf("192.168.%d.%d", rand.Intn(256), rand.Intn(256))
}

// StaticIPResolver always reports the same address. Useful in tests and in
// hosts that know their egress IP.
type StaticIPResolver string

func (r StaticIPResolver) ClientIP() string {
	return string(r)
}

// newEntryID combines the entry timestamp with a random suffix so ids stay
// unique under rapid successive calls within the same millisecond.
func newEntryID(at time.Time) string {
	return strconv.FormatInt(at.UnixMilli(), 10) + "-" + uuid.NewString()[:8]
}
