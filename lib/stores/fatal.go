package stores

import "errors"

// Fatal marks an error that must abort the whole batch run rather
// than just the entry currently being processed.
type Fatal struct {
	Err error
}

func (f Fatal) Error() string {
	return f.Err.Error()
}

func (f Fatal) Unwrap() error {
	return f.Err
}

func IsFatal(err error) bool {
	var f Fatal
	return errors.As(err, &f)
}
