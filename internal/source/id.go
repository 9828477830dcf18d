package source

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewID returns a locally unique record identifier derived from the current
// time plus randomness, e.g. "src-18f3a2b4c10-9c1e47ab".
func NewID(now time.Time) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "src-" + strconv.FormatInt(now.UnixMilli(), 16) + "-" + random[:8]
}
