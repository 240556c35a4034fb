package groups

import (
	"errors"

	"github.com/saradorri/economyengine/internal/domain"
)

// IsPermanent reports whether retrying the assignment cannot succeed
func IsPermanent(err error) bool {
	var groupErr *domain.GroupServiceError
	if errors.As(err, &groupErr) {
		return groupErr.Is4xxError()
	}
	return false
}
