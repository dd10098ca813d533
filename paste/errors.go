package paste

import "errors"

var ErrUnsupported = errors.New("paste: system clipboard unsupported")
