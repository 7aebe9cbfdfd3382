package repair

import "errors"

var ErrNoPending = errors.New("no pending fan-outs")
