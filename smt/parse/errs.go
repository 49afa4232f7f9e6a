package parse

import "errors"

var ErrParse = errors.New("solver output parse error")
