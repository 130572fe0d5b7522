package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalSelection = errors.New("illegal selection")

	ErrSelectFromPlayersFirst = fmt.Errorf("%w: source was not picked from the players", ErrIllegalSelection)
	ErrReselectFromPlayer     = fmt.Errorf("%w: destination is not a board cell", ErrIllegalSelection)

	ErrCellNotFound      = errors.New("cell not found")
	ErrTransportFailure  = errors.New("validation request failed")
	ErrMalformedResponse = errors.New("malformed validation response")
	ErrHistoryDisabled   = errors.New("validation history is disabled")
)
