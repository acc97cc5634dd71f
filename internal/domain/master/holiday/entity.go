package holiday

import (
	"time"

	"github.com/google/uuid"
)

// Holiday is one entry on a branch's calendar; each branch keeps its
// own. Custom holidays are branch management additions on top of the
// imported national calendar. Optional holidays do not suppress
// attendance; working one is rewarded as overtime.
type Holiday struct {
	ID        uuid.UUID
	BranchID  uuid.UUID
	Name      string
	Date      time.Time
	Optional  bool
	Custom    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
